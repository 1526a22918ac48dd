package pihello

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/pihello/internal/version"
	"github.com/arthur-debert/pihello/pkg/color"
	"github.com/arthur-debert/pihello/pkg/config"
	"github.com/arthur-debert/pihello/pkg/console"
	"github.com/arthur-debert/pihello/pkg/logging"
	"github.com/arthur-debert/pihello/pkg/markup"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newCheckCmd(flags *renderFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.check")

			s, err := loadSession(cmd, flags)
			if err != nil {
				return err
			}
			if _, err := markup.NewParser(s.styles).Render(s.template, s.vars); err != nil {
				logger.Info().Err(err).Str("template", s.source).Msg("template does not render")
				return err
			}

			lines := strings.Count(s.template, "\n") + 1
			fmt.Fprintf(cmd.OutOrStdout(), MsgCheckOK, s.source, lines, len(s.vars))
			return nil
		},
	}
}

func newColorsCmd(flags *renderFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "colors [filter]",
		Short:   MsgColorsShort,
		Long:    MsgColorsLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := console.ParseColorMode(flags.color)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colored := mode.Enabled(out)

			var filter string
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}

			rows, err := colorRows(filter, colored)
			if err != nil {
				return err
			}
			if len(rows) == 1 {
				fmt.Fprintf(out, MsgNoColors, filter)
				return nil
			}

			if colored {
				pterm.EnableStyling()
			} else {
				pterm.DisableStyling()
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, table)
			return nil
		},
	}
}

// colorRows builds the colors table, header first. Swatches are rendered by
// the markup engine so they show exactly what a tag produces.
func colorRows(filter string, swatches bool) ([][]string, error) {
	header := []string{"Index", "Tag", "Xterm name", "Hex"}
	if swatches {
		header = append(header, "Swatch")
	}
	rows := [][]string{header}

	for i := 0; i < color.PaletteSize; i++ {
		n := uint8(i)
		tag, name := color.TagName(n), color.NameOf(n)
		if filter != "" && !strings.Contains(tag, filter) && !strings.Contains(name, filter) {
			continue
		}

		row := []string{fmt.Sprint(i), tag, name, color.PaletteRGB(n).Hex()}
		if swatches {
			swatch, err := markup.Render(fmt.Sprintf("[:color(%d)]        ", i), nil)
			if err != nil {
				return nil, err
			}
			row = append(row, swatch)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func newConfigCmd(flags *renderFlags) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				fmt.Fprint(out, config.DefaultsTOML())
				return nil
			}

			cfg, err := config.Load(config.Options{
				ConfigFile: flags.configFile,
				Overrides:  flags.overrides(cmd),
			})
			if err != nil {
				return err
			}
			text, err := cfg.TOML()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, MsgConfigSources, strings.Join(cfg.Sources, ", "))
			fmt.Fprint(out, text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(out)
			case "fish":
				err = cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [dir]",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			header := &doc.GenManHeader{
				Title:   "PIHELLO",
				Section: "1",
				Source:  "pihello " + version.Version,
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}
}
