package pihello

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/pihello/pkg/config"
	"github.com/arthur-debert/pihello/pkg/console"
	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/arthur-debert/pihello/pkg/logging"
	"github.com/arthur-debert/pihello/pkg/style"
	"github.com/arthur-debert/pihello/pkg/templates"
	"github.com/arthur-debert/pihello/pkg/variables"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is where templates, variable files and themes are read from.
var appFs = afero.NewOsFs()

// now is replaced in tests.
var now = time.Now

// renderFlags are shared by every command that loads a template.
type renderFlags struct {
	configFile string
	template   string
	vars       []string
	set        []string
	sample     bool
	theme      string
	width      int
	height     int
	indent     int
	clip       bool
	timestamp  string
	color      string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configFile, "config", "", MsgFlagConfig)
	pf.StringVarP(&f.template, "template", "t", "", MsgFlagTemplate)
	pf.StringArrayVarP(&f.vars, "vars", "f", nil, MsgFlagVars)
	pf.StringArrayVar(&f.set, "set", nil, MsgFlagSet)
	pf.BoolVar(&f.sample, "sample", false, MsgFlagSample)
	pf.StringVar(&f.theme, "theme", "", MsgFlagTheme)
	pf.IntVarP(&f.width, "width", "W", 0, MsgFlagWidth)
	pf.IntVarP(&f.height, "height", "H", 0, MsgFlagHeight)
	pf.IntVarP(&f.indent, "indent", "i", 0, MsgFlagIndent)
	pf.BoolVarP(&f.clip, "clip", "c", false, MsgFlagClip)
	pf.StringVarP(&f.timestamp, "timestamp", "T", "", MsgFlagTimestamp)
	pf.Lookup("timestamp").NoOptDefVal = console.DefaultTimestampFormat
	pf.StringVar(&f.color, "color", "", MsgFlagColor)

	_ = cmd.RegisterFlagCompletionFunc("color", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkPersistentFlagFilename("vars", "toml", "yaml", "yml")
	_ = cmd.MarkPersistentFlagFilename("theme", "yaml", "yml")
}

// overrides maps the flags given on the command line to config keys, so
// they win over every other layer. Flags left alone do not override.
func (f *renderFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	changed := cmd.Flags().Changed
	o := make(map[string]interface{})

	if changed("template") {
		o["template"] = f.template
	}
	if changed("vars") {
		o["variables"] = f.vars
	}
	if changed("theme") {
		o["theme"] = f.theme
	}
	if changed("width") {
		o["console.width"] = f.width
	}
	if changed("height") {
		o["console.height"] = f.height
	}
	if changed("indent") {
		o["console.tabsize"] = f.indent
	}
	if changed("clip") {
		o["console.clip"] = f.clip
	}
	if changed("color") {
		o["output.color"] = f.color
	}
	if changed("timestamp") {
		o["timestamp.enabled"] = true
		if f.timestamp != "" {
			o["timestamp.format"] = f.timestamp
		}
	}
	return o
}

// session is everything a render needs, loaded once per command.
type session struct {
	cfg      *config.Config
	template string
	source   string
	vars     variables.Store
	styles   *style.Resolver
}

func loadSession(cmd *cobra.Command, flags *renderFlags) (*session, error) {
	logger := logging.GetLogger("cmd.session")

	cfg, err := config.Load(config.Options{
		ConfigFile: flags.configFile,
		Overrides:  flags.overrides(cmd),
	})
	if err != nil {
		return nil, err
	}

	styles, err := loadStyles(cfg.Theme)
	if err != nil {
		return nil, err
	}

	vars, err := loadVariables(cfg.Variables, flags)
	if err != nil {
		return nil, err
	}

	tmpl, source, err := loadTemplate(cmd.InOrStdin(), cfg.Template)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("template", source).
		Int("variables", len(vars)).
		Strs("aliases", styles.Aliases()).
		Msg("session loaded")

	return &session{cfg: cfg, template: tmpl, source: source, vars: vars, styles: styles}, nil
}

func loadStyles(themePath string) (*style.Resolver, error) {
	theme := style.DefaultTheme()
	if themePath != "" {
		user, err := style.LoadThemeFile(appFs, themePath)
		if err != nil {
			return nil, err
		}
		theme = theme.Merge(user)
	}
	return theme.Resolver()
}

func loadVariables(files []string, flags *renderFlags) (variables.Store, error) {
	store := variables.Store{}
	if flags.sample {
		sample, err := templates.SampleVariables()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, MsgErrLoadVariables)
		}
		store = sample
	}

	fromFiles, err := variables.NewLoader(appFs).Load(files...)
	if err != nil {
		return nil, err
	}

	fromFlags, err := variables.ParseAssignments(flags.set)
	if err != nil {
		return nil, err
	}
	return store.Merge(fromFiles).Merge(fromFlags), nil
}

// loadTemplate returns the template text and a name for it. One trailing
// newline is dropped since printing adds the configured line end.
func loadTemplate(stdin io.Reader, name string) (string, string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", errors.Wrap(err, errors.ErrFileAccess, MsgErrReadStdin)
		}
		return strings.TrimSuffix(string(data), "\n"), "stdin", nil
	}

	tmpl, err := templates.Load(appFs, name)
	if err != nil {
		return "", "", err
	}
	if name == "" {
		name = templates.DefaultName
	}
	return strings.TrimSuffix(tmpl, "\n"), name, nil
}

func (s *session) console(out io.Writer) *console.Console {
	opts := s.cfg.ConsoleOptions()
	opts.Out = out
	opts.Styles = s.styles
	opts.Vars = s.vars
	return console.New(opts)
}

func runRender(cmd *cobra.Command, flags *renderFlags) error {
	logger := logging.GetLogger("cmd.render")
	done := logging.LogOperationStart(logger, "render")
	defer done()

	s, err := loadSession(cmd, flags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	c := s.console(out)

	// Render before printing anything so a broken template prints nothing
	var body string
	if s.cfg.Timestamp.Enabled {
		body, err = c.SprintStamped(now(), s.cfg.Timestamp.Format, s.template)
	} else {
		body, err = c.Sprint(s.template)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, body+s.cfg.Console.End)
	return err
}

func newRenderCmd(flags *renderFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "render",
		Short:   MsgRenderShort,
		Long:    MsgRootLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags)
		},
	}
}
