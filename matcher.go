package cliparser

import "strings"

// matcher runs one left-to-right pass over a token sequence. Flag and
// marker tokens are resolved against the table as the cursor meets them;
// plain tokens left over feed the non-switch arguments positionally, in
// declaration order. The matcher owns all per-pass counters so that specs
// stay immutable and every parse starts clean.
type matcher struct {
	table    *table
	res      *results
	claims   map[string]*claim
	warnings []Warning
}

// claim tracks what an Argument has gathered so far during the pass.
type claim struct {
	values []interface{}
	failed bool // a value was rejected by the converter, or the values ran out
	done   bool // all nargs values stored
}

func newMatcher(t *table) *matcher {
	m := &matcher{table: t, res: newResults(t), claims: make(map[string]*claim)}
	for _, n := range t.seq {
		if t.specs[n].kind == KindArgument {
			m.claims[n] = &claim{}
		}
	}
	return m
}

// run executes the matching pass of one parse.
func (m *matcher) run(tokens []string) {
	m.res.begin(m.table)
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		name, dashed := stripDashes(tok)
		if !dashed {
			m.positional(tok)
			i++
			continue
		}
		if sp, ok := m.table.specs[name]; ok {
			if sp.kind == KindFlag {
				m.res.setTrue(name)
				i++
				continue
			}
			i = m.consumeValues(name, sp, tokens, i+1)
			continue
		}
		if strings.HasPrefix(tok, "-") && !strings.HasPrefix(tok, "--") && m.bundle(name) {
			i++
			continue
		}
		m.warn(Warning{Kind: WarnUnknownToken, Token: tok})
		i++
	}
	m.finish()
}

// consumeValues claims the nargs tokens following a marker token. Gathering
// stops early at the end of the input or at the next flag-style token, and
// an argument cut short is reported missing. Conversion failures do not
// stop the cursor: the argument still consumes its tokens, but ends up
// missing. It returns the new cursor position.
func (m *matcher) consumeValues(name string, sp Spec, tokens []string, i int) int {
	c := m.claims[name]
	c.values, c.failed, c.done = nil, false, false
	for n := 0; n < sp.nargs; n++ {
		if i >= len(tokens) || m.flagStyle(tokens[i]) {
			m.warn(Warning{Kind: WarnInsufficientValues, Name: name})
			c.failed = true
			m.res.setMissing(name)
			return i
		}
		v, err := sp.convert(tokens[i])
		if err != nil {
			m.warn(Warning{Kind: WarnConversion, Name: name, Token: tokens[i], Err: err})
			c.failed = true
		} else {
			c.values = append(c.values, v)
		}
		i++
	}
	if c.failed {
		m.res.setMissing(name)
		return i
	}
	c.done = true
	m.res.setValues(name, c.values)
	return i
}

// positional assigns a plain token to the first non-switch Argument, in
// declaration order, that is still gathering values. A token no argument
// can take is reported unknown and skipped.
func (m *matcher) positional(tok string) {
	for _, n := range m.table.seq {
		sp := m.table.specs[n]
		if sp.kind != KindArgument || sp.isSwitch {
			continue
		}
		c := m.claims[n]
		if c.done || c.failed {
			continue
		}
		v, err := sp.convert(tok)
		if err != nil {
			m.warn(Warning{Kind: WarnConversion, Name: n, Token: tok, Err: err})
			c.failed = true
			m.res.setMissing(n)
			return
		}
		c.values = append(c.values, v)
		if len(c.values) == sp.nargs {
			c.done = true
			m.res.setValues(n, c.values)
		}
		return
	}
	m.warn(Warning{Kind: WarnUnknownToken, Token: tok})
}

// bundle handles single-dash runs of single-character flags, e.g. -lisa.
// It reports false when no rune names a declared flag, leaving the whole
// token to be reported as unknown by the caller.
func (m *matcher) bundle(name string) bool {
	known := false
	for _, r := range name {
		if sp, ok := m.table.specs[string(r)]; ok && sp.kind == KindFlag {
			known = true
			break
		}
	}
	if !known {
		return false
	}
	for _, r := range name {
		n := string(r)
		if sp, ok := m.table.specs[n]; ok && sp.kind == KindFlag {
			m.res.setTrue(n)
		} else {
			m.warn(Warning{Kind: WarnUnknownToken, Token: "-" + n})
		}
	}
	return true
}

// finish emits the post-pass warnings for arguments that never completed:
// partially filled ones ended abruptly, untouched ones were not supplied.
// Flags need nothing, absence just leaves them false.
func (m *matcher) finish() {
	for _, n := range m.table.seq {
		if m.table.specs[n].kind != KindArgument {
			continue
		}
		c := m.claims[n]
		switch {
		case c.done || c.failed:
			// settled during the pass
		case len(c.values) > 0:
			m.warn(Warning{Kind: WarnInsufficientValues, Name: n})
		default:
			m.warn(Warning{Kind: WarnMissingArgument, Name: n})
		}
	}
}

// flagStyle reports whether tok names any declared parameter with a dash
// prefix. Such a token ends the values of the argument being gathered.
func (m *matcher) flagStyle(tok string) bool {
	name, dashed := stripDashes(tok)
	if !dashed {
		return false
	}
	_, ok := m.table.specs[name]
	return ok
}

func (m *matcher) warn(w Warning) {
	m.warnings = append(m.warnings, w)
}

// stripDashes removes one or two leading dashes. dashed is false when the
// token has no dash prefix and is therefore a plain value token.
func stripDashes(token string) (name string, dashed bool) {
	if strings.HasPrefix(token, "--") {
		return token[2:], true
	}
	if strings.HasPrefix(token, "-") {
		return token[1:], true
	}
	return token, false
}
