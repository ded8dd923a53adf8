package cliparser

import (
	"fmt"
	"unicode"
)

// table is the set of declared parameters of one Parser, indexed by name.
// The declaration sequence is kept because it decides both the order of
// positional matching and the order of the results listing.
type table struct {
	specs map[string]Spec
	seq   []string // names in declaration sequence
}

func newTable() *table {
	return &table{specs: make(map[string]Spec)}
}

// declare registers spec under name. Names are unique across both kinds. A
// nil Converter on an Argument is replaced with StringValue here, so the
// matcher never has to check.
func (t *table) declare(name string, spec Spec) error {
	if _, ok := t.specs[name]; ok {
		return fmt.Errorf(`parameter "%s" %w`, name, ErrDuplicateName)
	}
	if err := validate(name); err != nil {
		return err
	}
	if spec.kind == KindArgument {
		if spec.nargs < 1 {
			return fmt.Errorf(`parameter "%s": %w`, name, ErrInvalidArity)
		}
		if spec.convert == nil {
			spec.convert = StringValue
		}
	} else {
		// a Flag is presence-only
		spec.convert, spec.nargs, spec.isSwitch = nil, 0, false
	}
	t.specs[name] = spec
	t.seq = append(t.seq, name)
	return nil
}

// validate verifies a parameter name: not empty, no leading dash, only
// letters, digits, hyphens and underscores. Dashes belong to tokens on the
// command line, not to names.
func validate(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("the empty string cannot be used as a parameter name")
	}
	if name[0] == '-' {
		return fmt.Errorf(`"%s" cannot be used as a parameter name because it starts with a dash`, name)
	}
	for _, r := range name {
		if !valid(r) {
			return fmt.Errorf(`"%s" cannot be used as a parameter name because it includes the character '%c'`, name, r)
		}
	}
	return nil
}

// valid returns true iff char is valid in a parameter name.
func valid(char rune) bool {
	return unicode.IsLetter(char) || unicode.IsDigit(char) || char == '-' || char == '_'
}
