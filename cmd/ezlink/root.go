package ezlink

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/ezlink/internal/version"
	"github.com/arthur-debert/ezlink/pkg/config"
	"github.com/arthur-debert/ezlink/pkg/logging"
	"github.com/arthur-debert/ezlink/pkg/opener"
	"github.com/arthur-debert/ezlink/pkg/types"
	"github.com/arthur-debert/ezlink/pkg/ui"
	"github.com/arthur-debert/ezlink/pkg/ui/topics"
)

// ErrReported is returned by commands whose failure was already rendered
// to the user; main only sets the exit status for it.
var ErrReported = stderrors.New("error already reported")

// flagKeys maps command line flags onto configuration keys
var flagKeys = map[string]string{
	"output": "output.format",
	"type":   "link.default_type",
	"yes":    "merge.assume_yes",
}

// deps are the collaborators a command tree is built with. Zero values
// mean the real filesystem and process runner.
type deps struct {
	fs     types.FS
	runner opener.Runner
	goos   string
}

// app carries the global flags and the configuration loaded for the
// running command
type app struct {
	deps

	verbosity  int
	output     string
	configFile string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(deps{})
}

func newRootCmd(d deps) *cobra.Command {
	initTemplateFormatting()

	a := &app{deps: d}

	rootCmd := &cobra.Command{
		Use:     "ezlink [path]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				// a path handed over by a file manager "open with"; kept for later use
				log.Info().Str("path", args[0]).Msg(MsgOpeningFile)
				return cmd.Help()
			}
			_ = cmd.Help()
			return stderrors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "auto", MsgFlagOutput)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newLinkCmd(a))
	rootCmd.AddCommand(newSessionCmd(a))
	rootCmd.AddCommand(newOpenCmd(a))
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newAboutCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())

	if manager, err := loadTopics(topics.NewGlamourRenderer()); err == nil {
		manager.Install(rootCmd)
		rootCmd.SetHelpCommandGroupID("misc")
	} else {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// setup loads the configuration, with changed flags as the top layer, and
// configures logging from it
func (a *app) setup(cmd *cobra.Command) error {
	overrides := make(map[string]interface{})
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity:  a.verbosity,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Console:    cmd.ErrOrStderr(),
	})
	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

// renderer builds the renderer for output.format writing to the command's
// standard output
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrOutput, err)
	}
	r, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, fmt.Errorf(MsgErrRenderer, err)
	}
	return r, nil
}

func (a *app) opener() *opener.Opener {
	return opener.New(opener.Options{
		Command: a.cfg.Opener.Command,
		Runner:  a.runner,
		FS:      a.fs,
		GOOS:    a.goos,
	})
}

// loadTopics reads the embedded help topics
func loadTopics(renderer topics.Renderer) (*topics.Manager, error) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil, err
	}
	return topics.Load(sub, topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   renderer,
	})
}
