package editsurface

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var (
	// ErrClipboardEmpty is returned when the clipboard holds no text.
	ErrClipboardEmpty = errors.New("clipboard is empty")

	// ErrClipboardUnavailable is returned when no clipboard backend can be used.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// Clipboard abstracts asynchronous read access to the system clipboard.
// Implementations may block; callers run ReadText off the UI goroutine.
//
// For GLFW, see opengl.WindowClipboard, which marshals the read onto the
// main thread.
type Clipboard interface {
	// ReadText returns the current clipboard text.
	// Returns ErrClipboardEmpty if the clipboard is empty or holds non-text data.
	ReadText(ctx context.Context) (string, error)
}

// ClipboardFunc adapts a function to the Clipboard interface.
type ClipboardFunc func(ctx context.Context) (string, error)

// ReadText calls f(ctx).
func (f ClipboardFunc) ReadText(ctx context.Context) (string, error) {
	return f(ctx)
}

// SystemClipboard reads the clipboard through the OS tools
// (pbpaste, xclip/xsel/wl-paste, or the Win32 API).
type SystemClipboard struct{}

// ReadText implements Clipboard.
func (SystemClipboard) ReadText(ctx context.Context) (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnavailable
	}

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := clipboard.ReadAll()
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("read system clipboard: %w", res.err)
		}
		if res.text == "" {
			return "", ErrClipboardEmpty
		}
		return res.text, nil
	}
}

// FirstClipboard returns a Clipboard that tries each provider in order and
// returns the first successful read. If every provider fails, the last
// error is returned.
func FirstClipboard(providers ...Clipboard) Clipboard {
	return ClipboardFunc(func(ctx context.Context) (string, error) {
		err := ErrClipboardUnavailable
		for _, p := range providers {
			if p == nil {
				continue
			}
			var text string
			text, err = p.ReadText(ctx)
			if err == nil {
				return text, nil
			}
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
		}
		return "", err
	})
}
