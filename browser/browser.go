// Package browser opens URLs with the platform's default handler.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/fwojciec/scaladoc"
)

// Ensure Opener implements scaladoc.Opener at compile time.
var _ scaladoc.Opener = (*Opener)(nil)

// Opener launches the system browser without waiting for it to exit.
type Opener struct {
	// GOOS selects the launch command. Defaults to runtime.GOOS.
	GOOS string

	// Start runs the command without waiting. Defaults to exec.Command(...).Start.
	Start func(name string, args ...string) error
}

// NewOpener returns an Opener for the current platform.
func NewOpener() *Opener {
	return &Opener{
		GOOS:  runtime.GOOS,
		Start: start,
	}
}

// Open opens url in the default browser.
func (o *Opener) Open(url string) error {
	name, args, err := command(o.GOOS, url)
	if err != nil {
		return err
	}
	if err := o.Start(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

func command(goos, url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

func start(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}
