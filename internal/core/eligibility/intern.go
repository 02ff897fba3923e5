package eligibility

// interner maps course codes to dense integer handles so the resolver's
// bookkeeping does not rehash strings on every step.
type interner struct {
	ids   map[string]int
	codes []string
}

func newInterner(capacity int) *interner {
	return &interner{
		ids:   make(map[string]int, capacity),
		codes: make([]string, 0, capacity),
	}
}

func (in *interner) id(code string) int {
	if h, ok := in.ids[code]; ok {
		return h
	}
	h := len(in.codes)
	in.ids[code] = h
	in.codes = append(in.codes, code)
	return h
}

func (in *interner) code(h int) string {
	return in.codes[h]
}

func (in *interner) len() int {
	return len(in.codes)
}
