// internal/panel/loader.go
package panel

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pickprimers-core/oligo"
	"pickprimers-core/primer"
)

// Load reads a primer panel, choosing the parser by file extension:
// .yaml/.yml are YAML documents, anything else is TSV.
func Load(path string) ([]primer.Pair, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	}
	return LoadTSV(path)
}

// LoadTSV reads whitespace-separated "id fwd rev" lines. Blank lines and
// lines starting with '#' are skipped. Sequences are normalized and must
// be plain A/C/G/T; errors carry the file and line.
func LoadTSV(path string) ([]primer.Pair, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []primer.Pair
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 3 {
			return nil, fmt.Errorf("%s:%d: expected 3 columns (id fwd rev), got %d", path, ln, len(f))
		}
		fwd, err := oligo.Validate(f[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: forward: %w", path, ln, err)
		}
		rev, err := oligo.Validate(f[2])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: reverse: %w", path, ln, err)
		}
		list = append(list, primer.Pair{ID: f[0], Forward: fwd, Reverse: rev})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
