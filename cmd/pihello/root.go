package pihello

import (
	"os"

	"github.com/arthur-debert/pihello/internal/version"
	"github.com/arthur-debert/pihello/pkg/cobrax/topics"
	"github.com/arthur-debert/pihello/pkg/console"
	"github.com/arthur-debert/pihello/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command. Run without a subcommand
// it renders the configured template.
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int
	flags := &renderFlags{}

	rootCmd := &cobra.Command{
		Use:     "pihello",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRenderExample,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Options{
				Verbosity: verbosity,
				NoColor:   !console.DetectColor(os.Stderr),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	flags.register(rootCmd)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(flags))
	rootCmd.AddCommand(newCheckCmd(flags))
	rootCmd.AddCommand(newColorsCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic-based help; topics are embedded in the binary
	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(!console.DetectColor(os.Stdout), 80),
	}
	if _, err := topics.Initialize(rootCmd, helpTopics(), opts); err != nil {
		log.Warn().Err(err).Msg("help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetCompletionCommandGroupID("misc")

	return rootCmd
}
