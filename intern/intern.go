// Package intern deduplicates strings into dense, stable symbol ids, so
// repeated identifiers in a script share storage and compare by id.
package intern

import "fmt"

// Symbol is a dense, non-zero identifier for an interned string. It is
// stable for the lifetime of the Interner that produced it.
type Symbol uint32

// Nil is never returned by Intern and never resolves to a string.
const Nil Symbol = 0

// Interner deduplicates strings into Symbols. The zero value is not usable;
// construct one with New.
//
// Go strings are immutable, non-relocating values, so there is no need for
// an append-only byte arena to keep views valid: each interned string is
// kept as an independent Go string, and every view handed back stays valid
// for the lifetime of the Interner for free.
type Interner struct {
	bySymbol []string
	byString map[string]Symbol
}

// New returns an empty Interner.
func New() *Interner {
	return &Interner{
		bySymbol: make([]string, 0, 64),
		byString: make(map[string]Symbol, 64),
	}
}

// Intern returns the Symbol for s, assigning a fresh one if s was not seen
// before by this Interner. Byte-equal inputs always produce the same Symbol.
func (in *Interner) Intern(s string) Symbol {
	if sym, ok := in.byString[s]; ok {
		return sym
	}
	if len(in.bySymbol) >= (1<<32)-1 {
		panic("intern: too many symbols interned")
	}
	in.bySymbol = append(in.bySymbol, s)
	sym := Symbol(len(in.bySymbol))
	in.byString[s] = sym
	return sym
}

// Resolve returns the string sym was interned from, and true, or ("", false)
// if sym was never issued by this Interner.
func (in *Interner) Resolve(sym Symbol) (string, bool) {
	if sym == Nil || int(sym) > len(in.bySymbol) {
		return "", false
	}
	return in.bySymbol[sym-1], true
}

// MustResolve is Resolve but panics on an unknown symbol; useful in contexts
// (CST formatting, tests) where the symbol is known to originate from this
// Interner.
func (in *Interner) MustResolve(sym Symbol) string {
	s, ok := in.Resolve(sym)
	if !ok {
		panic(fmt.Sprintf("intern: unknown symbol %v", sym))
	}
	return s
}
