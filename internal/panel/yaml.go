package panel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pickprimers-core/oligo"
	"pickprimers-core/primer"
)

// yamlPanel is the on-disk YAML layout:
//
//	pairs:
//	  - id: p1
//	    forward: ACGT...
//	    reverse: TGCA...
type yamlPanel struct {
	Pairs []yamlPair `yaml:"pairs"`
}

type yamlPair struct {
	ID      string `yaml:"id"`
	Forward string `yaml:"forward"`
	Reverse string `yaml:"reverse"`
}

// LoadYAML reads a YAML panel. Pairs without an id are numbered P1, P2, ...
// by position. Sequences are normalized and must be plain A/C/G/T.
func LoadYAML(path string) ([]primer.Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var doc yamlPanel
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	list := make([]primer.Pair, 0, len(doc.Pairs))
	for i, p := range doc.Pairs {
		if p.Forward == "" || p.Reverse == "" {
			return nil, fmt.Errorf("%s: pair %d: forward and reverse are required", path, i+1)
		}
		id := p.ID
		if id == "" {
			id = fmt.Sprintf("P%d", i+1)
		}
		fwd, err := oligo.Validate(p.Forward)
		if err != nil {
			return nil, fmt.Errorf("%s: pair %d (%s): forward: %w", path, i+1, id, err)
		}
		rev, err := oligo.Validate(p.Reverse)
		if err != nil {
			return nil, fmt.Errorf("%s: pair %d (%s): reverse: %w", path, i+1, id, err)
		}
		list = append(list, primer.Pair{ID: id, Forward: fwd, Reverse: rev})
	}
	return list, nil
}
