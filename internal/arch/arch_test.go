// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

const mod = "pickprimers/"

// Layering: report → output → writers → appcore → app → cmd. Nothing may
// import a layer above it; panel and config stay leaf packages.
var bans = map[string][]string{
	mod + "internal/report": {
		mod + "internal/output", mod + "internal/writers", mod + "internal/panel",
		mod + "internal/cli", mod + "internal/config",
		mod + "internal/appcore", mod + "internal/app", mod + "cmd/",
	},
	mod + "internal/output": {
		mod + "internal/writers", mod + "internal/panel", mod + "internal/cli",
		mod + "internal/appcore", mod + "internal/app", mod + "cmd/",
	},
	mod + "internal/writers": {
		mod + "internal/panel", mod + "internal/cli",
		mod + "internal/appcore", mod + "internal/app", mod + "cmd/",
	},
	mod + "internal/panel": {
		mod + "internal/report", mod + "internal/output", mod + "internal/writers",
		mod + "internal/cli", mod + "internal/appcore", mod + "internal/app", mod + "cmd/",
	},
	mod + "internal/config": {
		mod + "internal/cli", mod + "internal/appcore", mod + "internal/app", mod + "cmd/",
	},
	mod + "pkg/api": {
		mod + "internal/",
	},
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, mod) {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			// exact package or a sub-package, so "internal/app" does not
			// match "internal/appcore"
			if imp != prefix && !strings.HasPrefix(imp, prefix+"/") {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, mod) {
					continue
				}
				for _, ban := range forbidden {
					if dep == ban || strings.HasPrefix(dep, strings.TrimSuffix(ban, "/")+"/") {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
