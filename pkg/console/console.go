// Package console prints rendered templates to a terminal of a given size.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/pihello/pkg/logging"
	"github.com/arthur-debert/pihello/pkg/markup"
	"github.com/arthur-debert/pihello/pkg/style"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/ncruces/go-strftime"
	"github.com/rs/zerolog"
)

// DefaultTimestampFormat is used when a timestamp line is requested without
// a format.
const DefaultTimestampFormat = "%Y-%m-%d %H:%M:%S"

// Options describes the console. Zero Width or Height means no limit.
type Options struct {
	Width   int
	Height  int
	TabSize int
	// Clip drops what does not fit in Width instead of wrapping it
	Clip  bool
	Sep   string
	End   string
	Color ColorMode
	Out   io.Writer
	// Styles resolves tag bodies; nil means no aliases
	Styles *style.Resolver
	Vars   markup.Lookup
}

// DefaultOptions returns an 80x25 console writing to stdout.
func DefaultOptions() Options {
	return Options{
		Width:   80,
		Height:  25,
		TabSize: 4,
		Sep:     " ",
		End:     "\n",
		Out:     os.Stdout,
	}
}

// Console renders templates and lays them out for a terminal.
type Console struct {
	opts   Options
	parser *markup.Parser
	color  bool
	logger zerolog.Logger
}

// New returns a Console for opts.
func New(opts Options) *Console {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.TabSize < 0 {
		opts.TabSize = 0
	}
	c := &Console{
		opts:   opts,
		parser: markup.NewParser(opts.Styles),
		color:  opts.Color.Enabled(opts.Out),
		logger: logging.GetLogger("console"),
	}
	c.logger.Debug().
		Int("width", opts.Width).
		Int("height", opts.Height).
		Bool("clip", opts.Clip).
		Bool("color", c.color).
		Msg("console ready")
	return c
}

// Size returns the console width and height.
func (c *Console) Size() (int, int) {
	return c.opts.Width, c.opts.Height
}

// ColorEnabled reports whether output keeps its escape sequences.
func (c *Console) ColorEnabled() bool {
	return c.color
}

// Sprint renders each object and joins them with the separator. Strings are
// templates; anything else is formatted with fmt.Sprint.
func (c *Console) Sprint(objects ...interface{}) (string, error) {
	s, err := c.join(objects)
	if err != nil {
		return "", err
	}
	return c.layout(s), nil
}

// SprintStamped renders objects like Sprint below a timestamp line. The
// timestamp line is laid out with the rest and counts against Height.
func (c *Console) SprintStamped(t time.Time, format string, objects ...interface{}) (string, error) {
	stamp, err := c.render(timestamp(t, format))
	if err != nil {
		return "", err
	}
	body, err := c.join(objects)
	if err != nil {
		return "", err
	}
	return c.layout(stamp + "\n" + body), nil
}

// Print renders objects like Sprint and writes them followed by End. Nothing
// is written when rendering fails.
func (c *Console) Print(objects ...interface{}) error {
	s, err := c.Sprint(objects...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.opts.Out, s+c.opts.End)
	return err
}

// PrintTimestamp prints t formatted with the strftime format. The result is
// printed literally even when it contains brackets or braces.
func (c *Console) PrintTimestamp(t time.Time, format string) error {
	return c.Print(timestamp(t, format))
}

// timestamp formats t as a template that renders to the literal text.
func timestamp(t time.Time, format string) string {
	if format == "" {
		format = DefaultTimestampFormat
	}
	return markup.Escape(strftime.Format(format, t))
}

func (c *Console) join(objects []interface{}) (string, error) {
	parts := make([]string, 0, len(objects))
	for _, obj := range objects {
		s, err := c.render(obj)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, c.opts.Sep), nil
}

func (c *Console) render(obj interface{}) (string, error) {
	if s, ok := obj.(string); ok {
		return c.parser.Render(s, c.opts.Vars)
	}
	return fmt.Sprint(obj), nil
}

func (c *Console) layout(s string) string {
	if strings.Contains(s, "\t") {
		s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", c.opts.TabSize))
	}

	laidOut := s
	if c.opts.Width > 0 {
		lines := strings.Split(laidOut, "\n")
		for i, line := range lines {
			lines[i] = c.fit(line)
		}
		laidOut = strings.Join(lines, "\n")
	}
	if c.opts.Height > 0 {
		lines := strings.SplitN(laidOut, "\n", c.opts.Height+1)
		if len(lines) > c.opts.Height {
			laidOut = strings.Join(lines[:c.opts.Height], "\n")
		}
	}

	if !c.color {
		return ansi.Strip(laidOut)
	}
	if laidOut != s && !strings.HasSuffix(laidOut, style.Reset) {
		laidOut += style.Reset
	}
	return laidOut
}

// fit makes one line at most Width cells wide, by clipping or by wrapping
// at word boundaries first and mid-word only when a word is too long.
func (c *Console) fit(line string) string {
	width := c.opts.Width
	if ansi.StringWidth(line) <= width {
		return line
	}
	if c.opts.Clip {
		return truncate.String(line, uint(width))
	}
	return wrap.String(wordwrap.String(line, width), width)
}
