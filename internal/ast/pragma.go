package ast

// PragmaTokens is the closed set of pragma directive shapes. Exactly one
// shape is ever populated; the parser selects it by precedence (version,
// then custom, then verbatim).
type PragmaTokens interface {
	Node
	isPragmaTokens()

	// AsNameAndValue returns the name and optional value of a custom
	// pragma. It reports false for both the version and verbatim shapes,
	// including the version pragma's own name; callers that want the
	// version requirement must match *PragmaVersion explicitly.
	AsNameAndValue() (name IdentOrStrLit, value IdentOrStrLit, ok bool)
}

func (*PragmaVersion) isPragmaTokens() {}

func (*PragmaCustom) isPragmaTokens() {}

func (*PragmaVerbatim) isPragmaTokens() {}

func (*PragmaVersion) AsNameAndValue() (IdentOrStrLit, IdentOrStrLit, bool) {
	return nil, nil, false
}

func (p *PragmaCustom) AsNameAndValue() (IdentOrStrLit, IdentOrStrLit, bool) {
	return p.Name, p.Value, true
}

func (*PragmaVerbatim) AsNameAndValue() (IdentOrStrLit, IdentOrStrLit, bool) {
	return nil, nil, false
}

// IdentOrStrLit models the grammar's acceptance of identifiers and string
// literals interchangeably in pragma name and value position: `pragma foo;`
// and `pragma "foo";` carry the same text.
type IdentOrStrLit interface {
	Node
	isIdentOrStrLit()

	// Text returns the content regardless of variant: the identifier's
	// spelling, or the string literal's decoded value.
	Text() string
}

func (*Ident) isIdentOrStrLit() {}

func (*StrLit) isIdentOrStrLit() {}

func (i *Ident) Text() string { return i.Value }

func (s *StrLit) Text() string { return s.Value }
