// Package fixture provides types for analyze contract tests.
package fixture

// Good satisfies the export contract.
type Good struct {
	N int
}

func (g Good) Clone() Good { return g }

// Alias is not a struct.
type Alias string

// NoClone is a struct without any Clone method.
type NoClone struct {
	N int
}

// PtrClone declares Clone on the pointer receiver only.
type PtrClone struct {
	N int
}

func (p *PtrClone) Clone() PtrClone { return *p }

// WrongClone has a Clone with the wrong signature.
type WrongClone struct {
	N int
}

func (w WrongClone) Clone(deep bool) WrongClone { return w }
