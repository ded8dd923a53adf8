/*

Package cliparser matches a command line against a set of declared
parameters. There are two kinds of parameter: a Flag is a presence-only
boolean switch, and an Argument consumes a fixed number of value tokens,
each converted to a typed value. Arguments are either invoked with a marker
token before their values (--name value...) or filled positionally, in
declaration order, from the plain tokens left over once all flag and marker
tokens are resolved.

A parser is used in three phases: declare, parse, access.

	p := cliparser.New()
	p.DeclareFlag("help", "print a usage summary")
	p.DeclareArgument("n", cliparser.IntValue, 1, true)
	p.DeclareArgument("data", cliparser.IntValue, 4, false)

	warnings := p.Parse(os.Args[1:])

	help, err := p.Get("help") // bool
	data, err := p.Get("data") // []interface{} holding 4 ints

Parsing never fails: unknown tokens, arguments with too few values, absent
arguments and values rejected by a Converter are recorded as Warnings,
logged through log/slog, and returned by Parse, while the pass carries on.
The access surface is strict instead: Get fails with a distinct error for
an undeclared name, for a parser that has not parsed yet, and for an
argument missing from the command line. GetDefault trades the last two
failures for a caller-supplied fallback.

Every call to Parse rewrites the whole result set, so a parser can be
reused on several command lines with no residue between them. A Parser is
not safe for concurrent use.

Parsers can also be built in one go from an ordered mapping of
declarations with FromMapping, and PrintResults writes a human-readable
listing of every declared parameter and its current result.

*/
package cliparser
