package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/scaladoc/mock"
	scaladocslog "github.com/fwojciec/scaladoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_FetchIndex(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with link count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.IndexFetcher{
			FetchIndexFn: func(ctx context.Context, location string) ([]string, error) {
				return []string{"a.html", "b.html"}, nil
			},
		}

		fetcher := scaladocslog.NewLoggingFetcher(inner, logger)
		links, err := fetcher.FetchIndex(context.Background(), "https://example.com/api/index.html")

		require.NoError(t, err)
		assert.Equal(t, []string{"a.html", "b.html"}, links)
		output := buf.String()
		assert.Contains(t, output, "fetch index")
		assert.Contains(t, output, "location=https://example.com/api/index.html")
		assert.Contains(t, output, "links=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.IndexFetcher{
			FetchIndexFn: func(ctx context.Context, location string) ([]string, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := scaladocslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.FetchIndex(context.Background(), "https://example.com/api/index.html")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "links=0")
		assert.Contains(t, output, "err=\"network error\"")
	})
}
