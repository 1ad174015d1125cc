package outlinefile

import (
	"bufio"
	"io/fs"
	"os"

	"honnef.co/go/outline"
)

// Open reads a packed path from the named file, choosing the format by
// the file's extension.
func Open(filename string) (*outline.PackedPath, error) {
	f, err := FormatFromExt(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Decode(bufio.NewReader(fp), f)
}

// OpenFS is like [Open] but reads from fsys, e.g. an embedded file system.
func OpenFS(fsys fs.FS, filename string) (*outline.PackedPath, error) {
	f, err := FormatFromExt(filename)
	if err != nil {
		return nil, err
	}
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Decode(bufio.NewReader(fp), f)
}

// Save writes p to the named file, choosing the format by the file's
// extension.
func Save(filename string, p *outline.PackedPath) error {
	f, err := FormatFromExt(filename)
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fp)
	if err := Encode(w, f, p); err != nil {
		fp.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
