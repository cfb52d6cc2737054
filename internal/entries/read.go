// Package entries reads the entries to sort and writes the result.
package entries

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vipcxj/natsort/internal/ctxlog"
)

// ErrInputInterrupted is returned by Read when ctx is cancelled before
// standard input has been read to EOF.
var ErrInputInterrupted = errors.New("reading entries was interrupted")

// Read returns the entries to process.
//
// Explicit entries win: they are returned trimmed and stdin is not touched.
// Otherwise stdin is read to EOF in a single blocking call, one trailing
// separator is removed, and the rest is split on NUL (zeroTerminated) or
// newline. Every entry is trimmed of surrounding whitespace.
func Read(ctx context.Context, explicit []string, zeroTerminated bool, stdin io.Reader) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	if len(explicit) > 0 {
		logger.Debug("using entries from arguments", "count", len(explicit))
		return trimAll(explicit), nil
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.Info("reading entries from terminal until EOF")
	}

	raw, err := readAll(ctx, stdin)
	if err != nil {
		return nil, err
	}

	sep := "\n"
	if zeroTerminated {
		sep = "\x00"
	}
	list := strings.Split(strings.TrimSuffix(raw, sep), sep)
	logger.Debug("read entries from stdin", "count", len(list), "bytes", len(raw), "zero_terminated", zeroTerminated)
	return trimAll(list), nil
}

type readResult struct {
	data []byte
	err  error
}

// readAll reads r to EOF on a helper goroutine so a cancelled ctx can end
// the wait. The goroutine is left behind in that case; the process is about
// to exit.
func readAll(ctx context.Context, r io.Reader) (string, error) {
	done := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- readResult{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputInterrupted
	case res := <-done:
		if res.err != nil {
			return "", res.err
		}
		return string(res.data), nil
	}
}

func trimAll(list []string) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = strings.TrimSpace(e)
	}
	return out
}
