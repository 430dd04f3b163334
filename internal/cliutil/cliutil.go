// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// PositionalsAsFlag rewrites every positional in argv as "--name=arg",
// in place, so positionals and explicit --name values end up in one list
// in command-line order. '-' counts as a positional; everything after
// "--" does too. Flag values (the word after a non-bool flag) are left
// alone.
func PositionalsAsFlag(fs *flag.FlagSet, argv []string, name string) []string {
	boolFlags := BoolFlags(fs)
	asFlag := func(v string) string { return "--" + name + "=" + v }

	out := make([]string, 0, len(argv))
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			for _, rest := range argv[i+1:] {
				out = append(out, asFlag(rest))
			}
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			out = append(out, asFlag(arg))
			continue
		}
		out = append(out, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		if !boolFlags[strings.TrimLeft(arg, "-")] && i+1 < len(argv) {
			out = append(out, argv[i+1])
			i++
		}
	}
	return out
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals and
// drops repeats, so a panel named twice (or matched by two globs) is read
// once. First-seen order is kept; '-' passes through untouched.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{}, len(posArgs))
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if !hasGlobMeta(a) {
			add(filepath.Clean(a))
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no panel matched %q", a)
		}
		for _, p := range m {
			add(filepath.Clean(p))
		}
	}
	return out, nil
}
