// Package output writes the assembled presentation to disk.
package output

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const bufSize = 64 * 1024

// Writer replaces the file at a destination path with new content.
type Writer struct {
	// Atomic writes to a temp file in the destination directory and renames
	// it over dest. Otherwise dest is truncated and written in place, so a
	// concurrent reader can observe a partial file.
	Atomic bool
	Perm   os.FileMode
}

// Write replaces dest with everything read from r.
func (w Writer) Write(ctx context.Context, dest string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	perm := w.Perm
	if perm == 0 {
		perm = 0644
	}

	var err error
	if w.Atomic {
		err = writeAtomic(ctx, dest, r, perm)
	} else {
		err = writeOverwrite(ctx, dest, r, perm)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}

func writeOverwrite(ctx context.Context, dest string, r io.Reader, perm os.FileMode) error {
	f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, bufSize)
	if _, err := io.Copy(bw, readerWithCtx(ctx, r)); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func writeAtomic(ctx context.Context, dest string, r io.Reader, perm os.FileMode) error {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".slidemerge-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, perm)

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	bw := bufio.NewWriterSize(tmp, bufSize)
	if _, err := io.Copy(bw, readerWithCtx(ctx, r)); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// readerWithCtx checks ctx before every Read.
func readerWithCtx(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
