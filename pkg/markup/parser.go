package markup

import (
	"strings"

	"github.com/arthur-debert/pihello/pkg/logging"
	"github.com/arthur-debert/pihello/pkg/style"
	"github.com/arthur-debert/pihello/pkg/variables"
)

// Lookup resolves placeholder keys. variables.Store implements it.
type Lookup interface {
	Lookup(key string) (variables.Value, bool)
}

// Parser renders templates. It holds no per-call state and is safe for
// concurrent use.
type Parser struct {
	styles *style.Resolver
}

// NewParser returns a Parser resolving tag bodies with styles. A nil
// Resolver means plain tags with no aliases.
func NewParser(styles *style.Resolver) *Parser {
	if styles == nil {
		styles = &style.Resolver{}
	}
	return &Parser{styles: styles}
}

// Render scans template once, left to right, and returns it with every tag
// and placeholder substituted. vars may be nil when the template has no
// placeholders.
func (p *Parser) Render(template string, vars Lookup) (string, error) {
	s := &scanner{
		src:    template,
		styles: p.styles,
		vars:   vars,
	}
	s.out.Grow(len(template) + len(style.Reset))

	if err := s.run(); err != nil {
		logger := logging.GetLogger("markup")
		logger.Trace().Err(err).Int("length", len(template)).Msg("render failed")
		return "", err
	}
	s.out.WriteString(style.Reset)
	return s.out.String(), nil
}

var defaultParser = NewParser(nil)

// Render renders template with the default Parser.
func Render(template string, vars Lookup) (string, error) {
	return defaultParser.Render(template, vars)
}

// escapable lists the openers. Closers outside a span are already literal.
const escapable = `[{`

// Escape returns s with every opening bracket and brace escaped, so that
// rendering the result reproduces s literally.
func Escape(s string) string {
	if !strings.ContainsAny(s, escapable) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(escapable, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
