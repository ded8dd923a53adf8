package cliparser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Parser owns the table of declared parameters and the results of the most
// recent parse. Declare parameters first, then call Parse, then read the
// outcome back with Get. A Parser is not safe for concurrent use: Parse
// replaces the whole result set in place.
type Parser struct {
	name     string
	params   *table
	res      *results
	warnings []Warning
	log      *slog.Logger
}

// New returns an empty Parser.
func New() *Parser {
	return Named("")
}

// Named returns an empty Parser whose name appears in the header of the
// results listing.
func Named(name string) *Parser {
	return &Parser{
		name:   name,
		params: newTable(),
		res:    &results{entries: make(map[string]*entry)},
		log:    slog.Default(),
	}
}

// Entry pairs a name with its Spec for FromMapping. A slice stands in for
// the mapping so that declaration order is explicit.
type Entry struct {
	Name string
	Spec Spec
}

// FromMapping builds a named Parser from an ordered mapping of
// declarations. The first failing declaration aborts construction.
func FromMapping(name string, entries []Entry) (*Parser, error) {
	p := Named(name)
	for _, e := range entries {
		if err := p.Declare(e.Name, e.Spec); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// SetLogger directs warning logging somewhere other than slog.Default().
func (p *Parser) SetLogger(l *slog.Logger) {
	p.log = l
}

// Declare registers spec under name. The name must be unique among all
// declared parameters, must not start with a dash, and an Argument spec
// must take at least one value. The error wraps ErrDuplicateName or
// ErrInvalidArity accordingly.
func (p *Parser) Declare(name string, spec Spec) error {
	if err := p.params.declare(name, spec); err != nil {
		return err
	}
	p.res.entries[name] = &entry{}
	return nil
}

// DeclareFlag registers a presence-only flag.
func (p *Parser) DeclareFlag(name, help string) error {
	return p.Declare(name, Flag(help))
}

// DeclareArgument registers an argument taking nargs value tokens.
func (p *Parser) DeclareArgument(name string, convert Converter, nargs int, isSwitch bool) error {
	return p.Declare(name, Argument(convert, nargs, isSwitch))
}

// Parse matches tokens against the declared parameters and rewrites the
// whole result set; nothing of an earlier parse survives. Parse never
// fails: every problem is recorded as a Warning, logged, and returned in
// input order. Supplying the program's command line is the caller's
// business, typically Parse(os.Args[1:]).
func (p *Parser) Parse(tokens []string) []Warning {
	m := newMatcher(p.params)
	m.run(tokens)
	p.res = m.res
	p.warnings = m.warnings
	for _, w := range m.warnings {
		p.logWarning(w)
	}
	return m.warnings
}

// Warnings returns the warnings of the most recent Parse, nil before any.
func (p *Parser) Warnings() []Warning {
	return p.warnings
}

// Get returns the parsed result for name: true or false for a flag, the
// slice of nargs converted values for an argument. It fails with
// ErrUnknownParameter when name was never declared, ErrNotYetParsed when
// no parse has run, and ErrMissingValue when the parsed command line did
// not supply the argument.
func (p *Parser) Get(name string) (interface{}, error) {
	e, ok := p.res.entries[name]
	if !ok {
		return nil, fmt.Errorf(`parameter "%s" %w`, name, ErrUnknownParameter)
	}
	switch e.state {
	case stateNotParsed:
		return nil, fmt.Errorf(`parameter "%s" %w`, name, ErrNotYetParsed)
	case stateFalse:
		return false, nil
	case stateTrue:
		return true, nil
	case stateMissing:
		return nil, fmt.Errorf(`parameter "%s" %w`, name, ErrMissingValue)
	}
	return e.values, nil
}

// GetDefault is Get with a fallback: a declared parameter that is unparsed
// or missing yields def instead of an error. An undeclared name still
// fails, since a default would silently hide the caller's bug.
func (p *Parser) GetDefault(name string, def interface{}) (interface{}, error) {
	v, err := p.Get(name)
	if err != nil {
		if errors.Is(err, ErrUnknownParameter) {
			return nil, err
		}
		return def, nil
	}
	return v, nil
}

// PrintResults writes a human-readable listing of every declared parameter
// and its current result to w, arguments before flags, each group in
// declaration order. Before any parse every parameter reads [not parsed].
func (p *Parser) PrintResults(w io.Writer) {
	if len(p.name) > 0 {
		fmt.Fprintf(w, "Command line parser %s:\n", p.name)
	} else {
		fmt.Fprintln(w, "Command line parser:")
	}

	fmt.Fprintln(w, "\tArguments:")
	count := 0
	for _, n := range p.params.seq {
		sp := p.params.specs[n]
		if sp.kind != KindArgument {
			continue
		}
		count++
		details := fmt.Sprintf("nargs: %d", sp.nargs)
		if sp.isSwitch {
			details += ", switch"
		}
		fmt.Fprintf(w, "\t\t--%s (%s)\t%s\tResults: %s\n", n, details, sp.help, p.render(n))
	}
	if count == 0 {
		fmt.Fprintln(w, "\t\t(None)")
	}

	fmt.Fprintln(w, "\tFlags:")
	count = 0
	for _, n := range p.params.seq {
		sp := p.params.specs[n]
		if sp.kind != KindFlag {
			continue
		}
		count++
		prefix := "--"
		if len(n) == 1 {
			prefix = "-"
		}
		fmt.Fprintf(w, "\t\t%s%s\t%s\tStatus: %s\n", prefix, n, sp.help, p.render(n))
	}
	if count == 0 {
		fmt.Fprintln(w, "\t\t(None)")
	}
}

// String returns the results listing, so a Parser can be printed directly.
func (p *Parser) String() string {
	var b strings.Builder
	p.PrintResults(&b)
	return b.String()
}

// render formats one result for the listing.
func (p *Parser) render(name string) string {
	e := p.res.entries[name]
	switch e.state {
	case stateNotParsed:
		return "[not parsed]"
	case stateFalse:
		return "False"
	case stateTrue:
		return "True"
	case stateMissing:
		return "Missing"
	}
	return fmt.Sprintf("%v", e.values)
}

// logWarning emits one warning through the parser's logger.
func (p *Parser) logWarning(w Warning) {
	args := make([]interface{}, 0, 6)
	if len(w.Name) > 0 {
		args = append(args, "parameter", w.Name)
	}
	if len(w.Token) > 0 {
		args = append(args, "token", w.Token)
	}
	if w.Err != nil {
		args = append(args, "error", w.Err)
	}
	p.log.Warn(w.message(), args...)
}
