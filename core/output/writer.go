// Package output writes the extracted heading list to a text file.
package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gaurav-prasanna/headscan/core"
	"github.com/gaurav-prasanna/headscan/core/render"
)

// title is the first line of every saved heading file.
const title = "# Heading Analysis"

// Writer writes heading lists to a single file path.
type Writer struct {
	Path string
}

// New creates a Writer targeting path. The parent directory must already exist.
func New(path string) *Writer {
	return &Writer{Path: path}
}

// Save creates or truncates the target file and writes the title line,
// a blank line and the numbered heading list.
func (w *Writer) Save(headings []core.Heading) (err error) {
	f, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w: %w", w.Path, core.ErrFilesystem, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file %s: %w: %w", w.Path, core.ErrFilesystem, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "%s\n\n", title)
	if err := render.Listing(bw, headings); err != nil {
		return fmt.Errorf("writing file %s: %w: %w", w.Path, core.ErrFilesystem, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing file %s: %w: %w", w.Path, core.ErrFilesystem, err)
	}
	return nil
}
