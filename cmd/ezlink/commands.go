package ezlink

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/ezlink/internal/version"
	"github.com/arthur-debert/ezlink/pkg/config"
	"github.com/arthur-debert/ezlink/pkg/engine"
	"github.com/arthur-debert/ezlink/pkg/logging"
	"github.com/arthur-debert/ezlink/pkg/opener"
	"github.com/arthur-debert/ezlink/pkg/types"
	"github.com/arthur-debert/ezlink/pkg/ui/confirmations"
	"github.com/arthur-debert/ezlink/pkg/ui/topics"
)

func newLinkCmd(a *app) *cobra.Command {
	var (
		linkType string
		yes      bool
		no       bool
	)

	cmd := &cobra.Command{
		Use:     "link <source> <destination>",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.link")
			done := logging.LogOperationStart(logger, "link")
			defer done()

			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			eng := engine.New(engine.Options{FS: a.fs})
			out := eng.RequestLink(args[0], args[1], a.cfg.Link.DefaultType)

			if out.NeedsConfirmation() {
				approved, err := a.prompter(cmd, no).Confirm(out.Message)
				if err != nil {
					return fmt.Errorf(MsgErrConfirm, err)
				}
				logger.Debug().Bool("approved", approved).Msg("Merge confirmation answered")
				out = eng.ConfirmMerge(approved)
			}

			if err := renderer.RenderResult(out); err != nil {
				return err
			}
			if out.IsError() {
				logger.Error().Str("code", string(out.Code)).Msgf(MsgErrLinkFailed, out.Message)
				return ErrReported
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&linkType, "type", "t", "auto", MsgFlagType)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().BoolVarP(&no, "no", "n", false, MsgFlagNo)
	cmd.MarkFlagsMutuallyExclusive("yes", "no")
	_ = cmd.RegisterFlagCompletionFunc("type", linkTypeCompletion)

	return cmd
}

// prompter picks who answers a merge confirmation: --no, then
// merge.assume_yes (set by --yes too), then the console
func (a *app) prompter(cmd *cobra.Command, no bool) confirmations.Prompter {
	switch {
	case no:
		return confirmations.FixedAnswer(false)
	case a.cfg.Merge.AssumeYes:
		return confirmations.FixedAnswer(true)
	default:
		return confirmations.NewConsoleDialog(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
}

func linkTypeCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"auto", "file", "dir"}, cobra.ShellCompDirectiveNoFileComp
}

func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "session",
		Short:   MsgSessionShort,
		Long:    MsgSessionLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			s := newSession(sessionOptions{
				engine:   engine.New(engine.Options{FS: a.fs}),
				opener:   a.opener(),
				renderer: renderer,
				kind:     a.cfg.Link.DefaultType,
				prompts:  cmd.ErrOrStderr(),
			})
			return s.run(cmd.InOrStdin())
		},
	}
}

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "open <path>",
		Short:   MsgOpenShort,
		Long:    MsgOpenLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			if err := a.opener().Open(args[0]); err != nil {
				out := types.Failure(opener.Message(err), types.LinkRequest{}, err)
				if rerr := renderer.RenderResult(out); rerr != nil {
					return rerr
				}
				return ErrReported
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgOpened, args[0]))
		},
	}
}

func newGenconfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenconfigShort,
		Long:    MsgGenconfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return fmt.Errorf(MsgErrGenconfig, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func newAboutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "about",
		Short:   MsgAboutShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := loadTopics(topics.NewGlamourRenderer())
			if err != nil {
				return err
			}
			rendered, ok := manager.Render("limitations")
			if !ok {
				return fmt.Errorf(MsgErrNoTopic, "limitations")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
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

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			header := &doc.GenManHeader{
				Title:   "EZLINK",
				Section: "1",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}
			log.Info().Str("dir", dir).Msg("Man pages generated")
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "man", MsgFlagManDir)
	return cmd
}
