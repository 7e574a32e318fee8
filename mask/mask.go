// Package mask translates canonical wordlist mask notation into the
// placeholder alphabets of individual generation tools. The canonical
// form uses hashcat-style two-character tokens: ?d for digits, ?u for
// upper-case letters, ?l for lower-case letters.
package mask

import "strings"

// Canonical placeholder tokens.
const (
	Digit = "?d"
	Upper = "?u"
	Lower = "?l"
)

// Substitution rewrites one placeholder token into another.
type Substitution struct {
	From string
	To   string
}

// Table is an ordered sequence of substitutions. Order matters: each
// substitution acts on the output of the previous one, so target tokens
// must not collide with tokens still waiting to be substituted.
type Table []Substitution

// Translate rewrites a canonical mask into the table's target alphabet.
// Tokens the table does not recognize pass through unchanged; malformed
// masks are not detected here.
func (t Table) Translate(mask string) string {
	for _, s := range t {
		mask = strings.ReplaceAll(mask, s.From, s.To)
	}

	return mask
}

// Inverse returns the table mapping back from the target alphabet to
// the canonical one. Substitutions are reversed in both direction and
// order, so Inverse().Translate undoes Translate for any mask built
// from recognized tokens.
func (t Table) Inverse() Table {
	inv := make(Table, len(t))
	for i, s := range t {
		inv[len(t)-1-i] = Substitution{From: s.To, To: s.From}
	}

	return inv
}

// CrunchTable maps canonical tokens to crunch's -t pattern alphabet.
var CrunchTable = Table{
	{From: Digit, To: "%"},
	{From: Upper, To: ","},
	{From: Lower, To: "@"},
}
