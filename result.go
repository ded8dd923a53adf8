package cliparser

// resultState tags one results entry. Flags move between stateFalse and
// stateTrue, Arguments between stateMissing and stateValues.
// stateNotParsed means no parse has run since the parameter was declared.
type resultState int

const (
	stateNotParsed resultState = iota
	stateFalse
	stateTrue
	stateMissing
	stateValues
)

// entry is the parse outcome of a single parameter.
type entry struct {
	state  resultState
	values []interface{} // converted values, stateValues only
}

// results holds the outcome of one parse for every declared parameter. A
// parse builds a fresh results and the Parser swaps it in whole; nothing
// mutates a results once the pass is over.
type results struct {
	entries map[string]*entry
}

// newResults returns a results with every parameter of t unparsed.
func newResults(t *table) *results {
	r := &results{entries: make(map[string]*entry, len(t.seq))}
	for _, n := range t.seq {
		r.entries[n] = &entry{}
	}
	return r
}

// begin marks the start of a parse: flags default to false, arguments to
// missing, until the matching pass says otherwise.
func (r *results) begin(t *table) {
	for n, sp := range t.specs {
		if sp.kind == KindFlag {
			r.entries[n].state = stateFalse
		} else {
			r.entries[n].state = stateMissing
		}
	}
}

func (r *results) setTrue(name string) {
	r.entries[name].state = stateTrue
}

func (r *results) setMissing(name string) {
	e := r.entries[name]
	e.state, e.values = stateMissing, nil
}

func (r *results) setValues(name string, values []interface{}) {
	e := r.entries[name]
	e.state, e.values = stateValues, values
}
