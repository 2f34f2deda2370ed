package pathte

import (
	"fmt"

	"github.com/arthur-debert/pathte/internal/version"
	"github.com/arthur-debert/pathte/pkg/cobrax/topics"
	"github.com/arthur-debert/pathte/pkg/config"
	"github.com/arthur-debert/pathte/pkg/errors"
	"github.com/arthur-debert/pathte/pkg/logging"
	"github.com/arthur-debert/pathte/pkg/paths"
	"github.com/arthur-debert/pathte/pkg/selection"
	"github.com/arthur-debert/pathte/pkg/ui"
	"github.com/arthur-debert/pathte/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	verbosity  int
	configPath string
	output     string

	cfg    *config.Config
	format ui.Format
}

// renderer returns a renderer for the resolved output format.
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	r, err := ui.NewRenderer(a.format, cmd.OutOrStdout())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, MsgErrRenderer)
	}
	return r, nil
}

func (a *app) render(cmd *cobra.Command, result interface{}) error {
	r, err := a.renderer(cmd)
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

// setup runs before every command: logging, then config, then the output
// format. The flag wins over output.format.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "watch" {
		// the overlay owns the terminal
		logging.SetupFileLogger(a.verbosity)
	} else {
		logging.SetupLogger(a.verbosity)
	}
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	name := cfg.Output.Format
	if cmd.Flags().Changed("output") {
		name = a.output
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return err
	}
	a.format = format
	return nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "pathte",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "auto", MsgFlagOutput)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "paths",
		Title: "PATHS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "gesture",
		Title: "GESTURE:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newClassifyCmd(a))
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newVariantsCmd(a))
	rootCmd.AddCommand(newCycleCmd(a))
	rootCmd.AddCommand(newReplayCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help, always rendered with glamour
	opts := topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	tm, err := topics.InitializeWithOptions(rootCmd, topicsFS(), opts)
	if err != nil {
		log.Warn().Err(err).Msg("help topics unavailable")
	} else {
		rootCmd.AddCommand(newFormatsCmd(tm))
	}

	return rootCmd
}

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "classify <text>...",
		Short:   MsgClassifyShort,
		GroupID: "paths",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := &display.ClassifyResult{}
			for _, text := range args {
				format, ok := paths.Classify(text)
				result.Results = append(result.Results, display.Classification{
					Input:  text,
					IsPath: ok,
					Format: format,
				})
			}
			return a.render(cmd, result)
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:     "convert <text> --to <format>",
		Short:   MsgConvertShort,
		Example: MsgConvertExample,
		GroupID: "paths",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := paths.ParseFormat(to)
			if err != nil {
				return err
			}
			source, err := parsePath(args[0])
			if err != nil {
				return err
			}
			converted, err := paths.Convert(source, target)
			if err != nil {
				return err
			}

			log.Info().
				Str("from", source.Format().String()).
				Str("to", target.String()).
				Msg("Converted path")

			return a.render(cmd, &display.ConvertResult{
				Input:  source.Text(),
				From:   source.Format(),
				To:     target,
				Output: converted.Text(),
			})
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", MsgFlagTo)
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.RegisterFlagCompletionFunc("to", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(paths.Formats))
		for _, f := range paths.Formats {
			names = append(names, f.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newVariantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "variants <text>",
		Short:   MsgVariantsShort,
		GroupID: "paths",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := parsePath(args[0])
			if err != nil {
				return err
			}

			result := &display.VariantsResult{Input: source.Text(), Original: source.Format()}
			for _, format := range paths.Formats {
				converted, err := paths.Convert(source, format)
				if err != nil {
					log.Debug().Err(err).Str("format", format.String()).Msg("Variant unavailable")
					continue
				}
				result.Variants = append(result.Variants, selection.Option{
					Label:  format.Label(),
					Text:   converted.Text(),
					Format: format,
				})
			}
			return a.render(cmd, result)
		},
	}
}

func newCycleCmd(a *app) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:     "cycle <text>",
		Short:   MsgCycleShort,
		Example: MsgCycleExample,
		GroupID: "gesture",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, ok := selection.New(args[0])
			if !ok {
				return errors.Newf(errors.ErrNoSelection, MsgErrNoSelection, args[0]).
					WithDetail("input", args[0])
			}
			// the selection is cyclic, so only the remainder moves it
			n := sel.Len()
			for i := 0; i < (steps%n+n)%n; i++ {
				sel.Advance()
			}
			return a.render(cmd, &display.CycleResult{Steps: steps, Snapshot: sel.Snapshot()})
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 0, MsgFlagSteps)

	return cmd
}

func newGenConfigCmd(a *app) *cobra.Command {
	var effective bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !effective {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}
			content, err := config.Generate(a.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)

	return cmd
}

func newFormatsCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "formats",
		Short:   MsgFormatsShort,
		GroupID: "paths",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tm.WriteTopic(cmd.OutOrStdout(), "formats")
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
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd != cmd.Root() {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return errors.New(errors.ErrInternal, MsgErrTopicsNotFound)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
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

// parsePath classifies text or fails with NOT_A_PATH.
func parsePath(text string) (paths.TypedPath, error) {
	p, ok := paths.Parse(text)
	if !ok {
		return paths.TypedPath{}, errors.Newf(errors.ErrNotAPath, MsgErrNotAPath, text).
			WithDetail("input", text)
	}
	return p, nil
}
