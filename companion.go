package scaladoc

import (
	"io"
	"strings"
)

const (
	pageSuffix   = ".html"
	objectSuffix = "$.html"
)

// IsObjectPage reports whether entry is a companion-object style page (Foo$.html).
func IsObjectPage(entry string) bool {
	return strings.HasSuffix(entry, objectSuffix)
}

// companionClass returns the class page for an object page: Foo$.html → Foo.html.
func companionClass(object string) string {
	return strings.TrimSuffix(object, objectSuffix) + pageSuffix
}

type normalizerState int

const (
	stateIdle normalizerState = iota
	statePendingObject
)

// Normalizer writes link entries as cache lines, collapsing companion pairs.
//
// Scaladoc emits both Foo.html and Foo$.html when a class has a companion
// object. Only the class page is kept. Object pages without a class are kept
// as they are. Entries are processed in a single pass: an object page is
// held back until the next entry shows whether its class follows.
// Entries already written are skipped.
type Normalizer struct {
	w       io.Writer
	state   normalizerState
	pending string
	written map[string]struct{}
	err     error
}

// NewNormalizer returns a Normalizer writing newline-terminated lines to w.
func NewNormalizer(w io.Writer) *Normalizer {
	return &Normalizer{
		w:       w,
		written: make(map[string]struct{}),
	}
}

// Add feeds the next raw entry. After the first write error every call
// returns that error.
func (n *Normalizer) Add(entry string) error {
	if n.err != nil {
		return n.err
	}
	switch n.state {
	case stateIdle:
		n.err = n.addIdle(entry)
	case statePendingObject:
		n.err = n.addPending(entry)
	}
	return n.err
}

// Close writes an object page still held back. It does not close the
// underlying writer.
func (n *Normalizer) Close() error {
	if n.err != nil {
		return n.err
	}
	if n.state == statePendingObject {
		n.err = n.write(n.pending)
		n.reset()
	}
	return n.err
}

func (n *Normalizer) addIdle(entry string) error {
	if IsObjectPage(entry) {
		if !n.seen(entry) && !n.seen(companionClass(entry)) {
			n.state = statePendingObject
			n.pending = entry
		}
		return nil
	}
	return n.write(entry)
}

func (n *Normalizer) addPending(entry string) error {
	if entry == n.pending {
		return nil
	}

	if IsObjectPage(entry) {
		if n.seen(entry) || n.seen(companionClass(entry)) {
			return nil
		}
		// The held object had no class right after it: it is solo.
		if err := n.write(n.pending); err != nil {
			return err
		}
		n.pending = entry
		return nil
	}

	if entry != companionClass(n.pending) {
		if err := n.write(n.pending); err != nil {
			return err
		}
	}
	n.reset()
	return n.write(entry)
}

func (n *Normalizer) reset() {
	n.state = stateIdle
	n.pending = ""
}

func (n *Normalizer) seen(entry string) bool {
	_, ok := n.written[entry]
	return ok
}

func (n *Normalizer) write(entry string) error {
	if n.seen(entry) {
		return nil
	}
	if _, err := io.WriteString(n.w, entry+"\n"); err != nil {
		return err
	}
	n.written[entry] = struct{}{}
	return nil
}

// Normalize runs entries through a Normalizer and returns the resulting lines.
func Normalize(entries []string) []string {
	var b strings.Builder
	n := NewNormalizer(&b)
	for _, e := range entries {
		_ = n.Add(e)
	}
	_ = n.Close()

	out := b.String()
	if out == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}
