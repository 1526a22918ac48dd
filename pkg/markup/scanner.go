package markup

import (
	"strings"

	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/arthur-debert/pihello/pkg/style"
	"github.com/arthur-debert/pihello/pkg/variables"
)

type mode int

const (
	modeLiteral mode = iota
	modeEscape
	modeTag
	modePlaceholder
)

const (
	escapeChar       = '\\'
	esc              = '\x1b'
	tagOpen          = '['
	tagClose         = ']'
	placeholderOpen  = '{'
	placeholderClose = '}'
)

// scanner is the state of one Render call. pos is the cursor into src and
// start is the offset of the opener of the span being scanned.
type scanner struct {
	src    string
	pos    int
	start  int
	mode   mode
	out    strings.Builder
	styles *style.Resolver
	vars   Lookup
}

func (s *scanner) run() error {
	for s.pos < len(s.src) {
		var err error
		switch s.mode {
		case modeLiteral:
			s.literal()
		case modeEscape:
			s.escape()
		case modeTag:
			err = s.tag()
		case modePlaceholder:
			err = s.placeholder()
		}
		if err != nil {
			return err
		}
	}

	// a backslash at the very end has nothing to escape
	if s.mode == modeEscape {
		s.out.WriteByte(escapeChar)
	}
	return nil
}

// literal copies text up to the next special character, or switches mode
// when the cursor is on one.
func (s *scanner) literal() {
	switch s.src[s.pos] {
	case escapeChar:
		s.mode = modeEscape
		s.pos++
		return
	case tagOpen:
		s.mode, s.start = modeTag, s.pos
		s.pos++
		return
	case placeholderOpen:
		s.mode, s.start = modePlaceholder, s.pos
		s.pos++
		return
	case esc:
		// an escape sequence already in the input passes through, so
		// rendered output can be rendered again
		n := 1
		if s.pos+1 < len(s.src) && s.src[s.pos+1] == tagOpen {
			n = 2
		}
		s.out.WriteString(s.src[s.pos : s.pos+n])
		s.pos += n
		return
	}

	n := strings.IndexAny(s.src[s.pos:], "\\[{\x1b")
	if n < 0 {
		n = len(s.src) - s.pos
	}
	s.out.WriteString(s.src[s.pos : s.pos+n])
	s.pos += n
}

// escape runs with the cursor just past a backslash. Only [ and { are
// escapable; any other character leaves the backslash in place and is
// scanned again as a literal.
func (s *scanner) escape() {
	c := s.src[s.pos]
	if strings.IndexByte(escapable, c) >= 0 {
		s.out.WriteByte(c)
		s.pos++
	} else {
		s.out.WriteByte(escapeChar)
	}
	s.mode = modeLiteral
}

func (s *scanner) tag() error {
	body, err := s.span(tagClose, "tag")
	if err != nil {
		return err
	}

	seq, err := s.styles.Render(body)
	if err != nil {
		if coded, ok := err.(*errors.Error); ok {
			coded.WithDetail("offset", s.start)
		}
		return err
	}
	s.out.WriteString(seq)
	return nil
}

func (s *scanner) placeholder() error {
	body, err := s.span(placeholderClose, "placeholder")
	if err != nil {
		return err
	}

	key := strings.Trim(body, " \t\r\n{}")
	var (
		v  variables.Value
		ok bool
	)
	if s.vars != nil {
		v, ok = s.vars.Lookup(key)
	}
	if !ok {
		return errors.Newf(errors.ErrTagParse, "no variable %q", key).
			WithDetail("key", key).
			WithDetail("offset", s.start)
	}
	s.out.WriteString(v.String())
	return nil
}

// span consumes the body of the span opened at s.start up to and including
// the first closer, and returns the body. The search never goes past the
// end of src.
func (s *scanner) span(closer byte, what string) (string, error) {
	end := strings.IndexByte(s.src[s.pos:], closer)
	if end < 0 {
		return "", errors.Newf(errors.ErrTagParse, "matching %q not found for %s at offset %d", closer, what, s.start).
			WithDetail("offset", s.start)
	}

	body := s.src[s.pos : s.pos+end]
	if i := strings.IndexAny(body, `[{`); i >= 0 {
		return "", errors.Newf(errors.ErrTagParse, "%q inside %s at offset %d; tags and placeholders do not nest", body[i], what, s.start).
			WithDetail("offset", s.pos+i)
	}

	s.pos += end + 1
	s.mode = modeLiteral
	return body, nil
}
