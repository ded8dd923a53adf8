package cliparser

import "fmt"

// WarningKind classifies a parse-time problem.
type WarningKind int

const (
	// WarnUnknownToken reports a token matching no declared parameter.
	WarnUnknownToken WarningKind = iota
	// WarnInsufficientValues reports an Argument that claimed fewer
	// tokens than its declared nargs.
	WarnInsufficientValues
	// WarnMissingArgument reports a declared Argument absent from the
	// parsed command line.
	WarnMissingArgument
	// WarnConversion reports a value token rejected by the Converter.
	WarnConversion
)

// Warning records one non-fatal problem found while parsing. Warnings never
// abort the pass; an Argument affected by one is reported missing instead.
type Warning struct {
	Kind  WarningKind
	Name  string // parameter name, when one is involved
	Token string // offending token, when one is involved
	Err   error  // conversion failure, WarnConversion only
}

// message is the constant part of the warning, used as the log line.
func (w Warning) message() string {
	switch w.Kind {
	case WarnUnknownToken:
		return "unrecognised token"
	case WarnInsufficientValues:
		return "argument ended abruptly"
	case WarnMissingArgument:
		return "argument not supplied"
	case WarnConversion:
		return "cannot convert value"
	}
	return "unknown warning"
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnUnknownToken:
		return fmt.Sprintf(`unrecognised token "%s"`, w.Token)
	case WarnInsufficientValues:
		return fmt.Sprintf(`argument "%s" ended abruptly`, w.Name)
	case WarnMissingArgument:
		return fmt.Sprintf(`argument "%s" not supplied`, w.Name)
	case WarnConversion:
		return fmt.Sprintf(`argument "%s": cannot convert value "%s": %v`, w.Name, w.Token, w.Err)
	}
	return "unknown warning"
}
