package cliparser

// Kind tells the two sorts of parameter apart.
type Kind int

const (
	// KindFlag is a boolean, presence-only switch.
	KindFlag Kind = iota
	// KindArgument consumes a fixed number of value tokens.
	KindArgument
)

// Spec is the declaration of a single parameter. A Spec is built with Flag
// or Argument, optionally refined with WithHelp, and registered under a
// name with Parser.Declare or FromMapping. Once registered it is never
// mutated: all per-parse state lives elsewhere.
type Spec struct {
	kind     Kind
	convert  Converter // Argument only
	nargs    int       // value tokens consumed, Argument only
	isSwitch bool      // invoked with a marker token before its values
	help     string
}

// Flag returns the Spec of a presence-only flag.
func Flag(help string) Spec {
	return Spec{kind: KindFlag, help: help}
}

// Argument returns the Spec of an argument taking nargs value tokens, each
// converted with convert. A nil convert leaves values as strings. When
// isSwitch is true the argument is invoked with a marker token (--name)
// before its values instead of being filled positionally.
func Argument(convert Converter, nargs int, isSwitch bool) Spec {
	return Spec{kind: KindArgument, convert: convert, nargs: nargs, isSwitch: isSwitch}
}

// WithHelp returns a copy of the Spec with the given help text.
func (s Spec) WithHelp(help string) Spec {
	s.help = help
	return s
}

// Kind returns the parameter kind.
func (s Spec) Kind() Kind {
	return s.kind
}
