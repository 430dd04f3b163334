// core/oligo/validate.go
package oligo

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	ErrEmpty       = errors.New("empty oligo")
	ErrInvalidBase = errors.New("invalid base")
)

// IUPAC ambiguity codes and the bases they stand for. None of them are
// accepted; the table only exists to say why a base was rejected.
var ambiguous = map[rune]string{
	'R': "AG",
	'Y': "CT",
	'S': "CG",
	'W': "AT",
	'K': "GT",
	'M': "AC",
	'B': "CGT",
	'D': "AGT",
	'H': "ACT",
	'V': "ACG",
	'N': "ACGT",
}

// Normalize removes spaces/quotes and uppercases bases.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Validate returns a normalized sequence or an error if it is empty or
// holds anything other than A, C, G, T.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if err := Check(s); err != nil {
		return "", err
	}
	return s, nil
}

// Check is the strict form of Validate: s is taken as-is, so lowercase
// bases are rejected too. Errors wrap ErrEmpty or ErrInvalidBase.
func Check(s string) error {
	if s == "" {
		return ErrEmpty
	}
	for i, r := range s {
		switch r {
		case 'A', 'C', 'G', 'T':
			continue
		}
		if set, ok := ambiguous[unicode.ToUpper(r)]; ok {
			return fmt.Errorf("%w %q at %d: ambiguity code for %s is not supported; allowed: A C G T", ErrInvalidBase, r, i+1, set)
		}
		return fmt.Errorf("%w %q at %d; allowed: A C G T", ErrInvalidBase, r, i+1)
	}
	return nil
}
