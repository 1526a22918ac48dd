package pihello

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render a terminal dashboard from a styled template"
	MsgRenderShort     = "Render a template (the default command)"
	MsgCheckShort      = "Check that a template renders"
	MsgColorsShort     = "List the named colors"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Config prints the configuration after every layer (defaults, user file, environment and flags) has been applied, as TOML."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgCheckOK       = "✓ %s renders: %d lines, %d variables available\n"
	MsgVersionFormat = "pihello version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "Man pages written to %s\n"
	MsgNoColors      = "No colors match %q.\n"
	MsgConfigSources = "# sources: %s\n"

	// Error messages
	MsgErrLoadConfig    = "failed to load configuration"
	MsgErrReadStdin     = "failed to read template from stdin"
	MsgErrLoadVariables = "failed to load variables"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/pihello/config.toml)"
	MsgFlagTemplate  = `Template file, "-" for stdin, or "default" (default "default")`
	MsgFlagVars      = "Variable file (TOML or YAML); repeat to merge several"
	MsgFlagSet       = "Set a variable, key=value; repeatable"
	MsgFlagSample    = "Start from the example values of the built-in template"
	MsgFlagTheme     = "Theme file with style aliases"
	MsgFlagWidth     = "Screen width, 0 = no limit (default 80)"
	MsgFlagHeight    = "Screen height, 0 = no limit (default 25)"
	MsgFlagIndent    = "Number of spaces a tab expands to (default 4)"
	MsgFlagClip      = "Discard text past the screen width instead of wrapping it"
	MsgFlagTimestamp = "Print a timestamp first; optional strftime format"
	MsgFlagColor     = "Color output: auto, always or never (default auto)"
	MsgFlagDefaults  = "Print the built-in defaults instead"
	MsgFlagManDir    = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/colors-long.txt
	msgColorsLongRaw string
	MsgColorsLong    = strings.TrimSpace(msgColorsLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
