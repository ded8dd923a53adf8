package cliparser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFlagPresence(t *testing.T) {
	p := quiet(New())
	require.NoError(t, p.DeclareFlag("help", "print a usage summary"))

	p.Parse([]string{"--help"})
	v, err := p.Get("help")
	require.NoError(t, err)
	require.Equal(t, true, v)

	p.Parse([]string{})
	v, err = p.Get("help")
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestSwitchAndPositional(t *testing.T) {
	p := quiet(New())
	require.NoError(t, p.DeclareArgument("n", IntValue, 1, true))
	require.NoError(t, p.DeclareArgument("data", IntValue, 4, false))

	ws := p.Parse([]string{"--n", "50", "1", "2", "3", "4"})
	require.Empty(t, ws)

	n, err := p.Get("n")
	require.NoError(t, err)
	require.Equal(t, []interface{}{50}, n)

	data, err := p.Get("data")
	require.NoError(t, err)
	require.Equal(t, []interface{}{1, 2, 3, 4}, data)
}

func TestInsufficientPositionalValues(t *testing.T) {
	p := quiet(New())
	require.NoError(t, p.DeclareArgument("data", IntValue, 4, false))

	ws := p.Parse([]string{"1", "2"})

	_, err := p.Get("data")
	require.ErrorIs(t, err, ErrMissingValue)
	require.Equal(t, []WarningKind{WarnInsufficientValues}, kinds(ws))
}

func TestUnknownParameter(t *testing.T) {
	p := quiet(New())
	require.NoError(t, p.DeclareFlag("help", ""))

	// before any parse
	_, err := p.Get("nonexistent")
	require.ErrorIs(t, err, ErrUnknownParameter)

	// after a parse
	p.Parse(nil)
	_, err = p.Get("nonexistent")
	require.ErrorIs(t, err, ErrUnknownParameter)

	// a default does not suppress the failure for undeclared names
	_, err = p.GetDefault("nonexistent", 1)
	require.ErrorIs(t, err, ErrUnknownParameter)
	require.EqualError(t, err, `parameter "nonexistent" not defined`)
}

func TestNotYetParsed(t *testing.T) {
	p := New()
	require.NoError(t, p.DeclareArgument("data", IntValue, 4, false))

	_, err := p.Get("data")
	require.ErrorIs(t, err, ErrNotYetParsed)
	require.EqualError(t, err, `parameter "data" not parsed yet`)
	require.Nil(t, p.Warnings())
}

func TestGetDefault(t *testing.T) {
	p := quiet(New())
	require.NoError(t, p.DeclareArgument("data", IntValue, 4, false))
	require.NoError(t, p.DeclareFlag("help", ""))

	// unparsed: default wins
	v, err := p.GetDefault("data", []interface{}{9})
	require.NoError(t, err)
	require.Equal(t, []interface{}{9}, v)

	// missing after a parse: default wins
	p.Parse(nil)
	v, err = p.GetDefault("data", []interface{}{9})
	require.NoError(t, err)
	require.Equal(t, []interface{}{9}, v)

	// present: the parsed value wins
	p.Parse([]string{"1", "2", "3", "4"})
	v, err = p.GetDefault("data", []interface{}{9})
	require.NoError(t, err)
	require.Equal(t, []interface{}{1, 2, 3, 4}, v)

	// a flag set to false is a result, not an absence
	v, err = p.GetDefault("help", true)
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestReparseIndependence(t *testing.T) {
	p := quiet(New())
	require.NoError(t, p.DeclareArgument("n", IntValue, 1, true))
	require.NoError(t, p.DeclareArgument("data", IntValue, 2, false))
	require.NoError(t, p.DeclareFlag("help", ""))

	p.Parse([]string{"--help", "--n", "50", "1", "2"})
	ws := p.Parse([]string{"7", "8"})

	// only the second command line is reflected
	v, err := p.Get("help")
	require.NoError(t, err)
	require.Equal(t, false, v)

	_, err = p.Get("n")
	require.ErrorIs(t, err, ErrMissingValue)

	data, err := p.Get("data")
	require.NoError(t, err)
	require.Equal(t, []interface{}{7, 8}, data)

	require.Equal(t, []WarningKind{WarnMissingArgument}, kinds(ws))
	require.Equal(t, ws, p.Warnings())
}

func TestWarningStrings(t *testing.T) {
	p := quiet(New())
	require.NoError(t, p.DeclareArgument("n", IntValue, 1, true))

	ws := p.Parse([]string{"--n", "fifty", "--oops"})
	require.Len(t, ws, 2)
	require.Contains(t, ws[0].String(), `argument "n": cannot convert value "fifty"`)
	require.Equal(t, `unrecognised token "--oops"`, ws[1].String())

	ws = p.Parse(nil)
	require.Equal(t, `argument "n" not supplied`, ws[0].String())

	ws = p.Parse([]string{"--n"})
	require.Equal(t, `argument "n" ended abruptly`, ws[0].String())
}

func TestPrintResults(t *testing.T) {
	p, err := FromMapping("Demo", []Entry{
		{Name: "help", Spec: Flag("Prints help message as to how to use the program.")},
		{Name: "n", Spec: Argument(IntValue, 1, true)},
		{Name: "data", Spec: Argument(IntValue, 4, false)},
		{Name: "l", Spec: Flag("Flag l.")},
	})
	require.NoError(t, err)
	quiet(p)

	before := "Command line parser Demo:\n" +
		"\tArguments:\n" +
		"\t\t--n (nargs: 1, switch)\t\tResults: [not parsed]\n" +
		"\t\t--data (nargs: 4)\t\tResults: [not parsed]\n" +
		"\tFlags:\n" +
		"\t\t--help\tPrints help message as to how to use the program.\tStatus: [not parsed]\n" +
		"\t\t-l\tFlag l.\tStatus: [not parsed]\n"
	if diff := cmp.Diff(before, p.String()); diff != "" {
		t.Errorf("listing before parse (-want +got):\n%s", diff)
	}

	p.Parse([]string{"--n", "50", "1", "2", "3", "4", "-l"})
	after := "Command line parser Demo:\n" +
		"\tArguments:\n" +
		"\t\t--n (nargs: 1, switch)\t\tResults: [50]\n" +
		"\t\t--data (nargs: 4)\t\tResults: [1 2 3 4]\n" +
		"\tFlags:\n" +
		"\t\t--help\tPrints help message as to how to use the program.\tStatus: False\n" +
		"\t\t-l\tFlag l.\tStatus: True\n"
	if diff := cmp.Diff(after, p.String()); diff != "" {
		t.Errorf("listing after parse (-want +got):\n%s", diff)
	}

	p.Parse(nil)
	missing := "Command line parser Demo:\n" +
		"\tArguments:\n" +
		"\t\t--n (nargs: 1, switch)\t\tResults: Missing\n" +
		"\t\t--data (nargs: 4)\t\tResults: Missing\n" +
		"\tFlags:\n" +
		"\t\t--help\tPrints help message as to how to use the program.\tStatus: False\n" +
		"\t\t-l\tFlag l.\tStatus: False\n"
	if diff := cmp.Diff(missing, p.String()); diff != "" {
		t.Errorf("listing with missing arguments (-want +got):\n%s", diff)
	}
}

func TestPrintResultsEmptyGroups(t *testing.T) {
	p := New()
	require.NoError(t, p.DeclareFlag("help", "h"))

	want := "Command line parser:\n" +
		"\tArguments:\n" +
		"\t\t(None)\n" +
		"\tFlags:\n" +
		"\t\t--help\th\tStatus: [not parsed]\n"
	if diff := cmp.Diff(want, p.String()); diff != "" {
		t.Errorf("listing (-want +got):\n%s", diff)
	}
}
