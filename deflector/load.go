package deflector

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ReadGrid reads the whole of r and parses it with Parse.
func ReadGrid(r io.Reader) (*Grid, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("deflector: read grid: %w", err)
	}
	return Parse(string(raw))
}

// LoadFile opens path and parses its contents. Paths ending in ".zst" are
// zstd-decompressed first.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("deflector: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("deflector: %s: %w", filepath.Base(path), err)
		}
		defer dec.Close()
		r = dec
	}

	g, err := ReadGrid(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return g, nil
}
