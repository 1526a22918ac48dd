package style

import (
	"strings"

	"github.com/arthur-debert/pihello/pkg/color"
)

const (
	// Reset clears every SGR attribute.
	Reset = "\x1b[0m"

	backgroundPrefix = ":"
	underlinePrefix  = "_"
)

// TokenKind classifies a token of a tag body.
type TokenKind int

const (
	TokenAttribute TokenKind = iota
	TokenForeground
	TokenBackground
	TokenUnderline
)

// Token is one directive of a tag body: either an attribute or a color bound
// to a slot.
type Token struct {
	Kind      TokenKind
	Attribute Attribute
	Color     color.Color
}

// Codes returns the SGR parameters for t.
func (t Token) Codes() []string {
	switch t.Kind {
	case TokenAttribute:
		return []string{t.Attribute.Code()}
	case TokenBackground:
		return t.Color.Codes(color.Background)
	case TokenUnderline:
		return t.Color.Codes(color.Underline)
	default:
		return t.Color.Codes(color.Foreground)
	}
}

// Spec is the ordered list of tokens parsed from one tag body. The order is
// the order of the emitted parameters, so a later token of the same class
// wins on the terminal.
type Spec []Token

// Codes returns the concatenated SGR parameters of every token.
func (s Spec) Codes() []string {
	var codes []string
	for _, t := range s {
		codes = append(codes, t.Codes()...)
	}
	return codes
}

// Render returns the escape sequence for s. It always starts with a full
// reset, so a tag replaces the current style rather than adding to it.
func (s Spec) Render() string {
	codes := s.Codes()
	if len(codes) == 0 {
		return Reset
	}
	return Reset + "\x1b[" + strings.Join(codes, ";") + "m"
}

// Parse parses a tag body without alias expansion.
func Parse(body string) (Spec, error) {
	return defaultResolver.Parse(body)
}

// Render parses body and returns its escape sequence.
func Render(body string) (string, error) {
	spec, err := Parse(body)
	if err != nil {
		return "", err
	}
	return spec.Render(), nil
}

func parseToken(tok string) (Token, error) {
	if a, ok := LookupAttribute(tok); ok {
		return Token{Kind: TokenAttribute, Attribute: a}, nil
	}

	kind := TokenForeground
	spec := tok
	switch {
	case strings.HasPrefix(tok, backgroundPrefix):
		kind, spec = TokenBackground, tok[len(backgroundPrefix):]
	case strings.HasPrefix(tok, underlinePrefix):
		kind, spec = TokenUnderline, tok[len(underlinePrefix):]
	}

	c, err := color.Parse(spec)
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: kind, Color: c}, nil
}
