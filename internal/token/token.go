package token

import "fmt"

// Token is a lexeme together with the position it was read from.
// Declarations loaded from YAML carry the position of their YAML node.
type Token struct {
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	if t.Line == 0 {
		return t.Lexeme
	}
	return fmt.Sprintf("%s (%d:%d)", t.Lexeme, t.Line, t.Column)
}

// Position returns "line:col", or "" for synthesized tokens.
func (t Token) Position() string {
	if t.Line == 0 {
		return ""
	}
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}
