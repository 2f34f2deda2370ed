package pathte

import (
	"context"
	stderrors "errors"

	"github.com/arthur-debert/pathte/pkg/clipboard"
	"github.com/arthur-debert/pathte/pkg/errors"
	"github.com/arthur-debert/pathte/pkg/feed"
	"github.com/arthur-debert/pathte/pkg/hotkey"
	"github.com/arthur-debert/pathte/pkg/keyboard"
	"github.com/arthur-debert/pathte/pkg/logging"
	"github.com/arthur-debert/pathte/pkg/ui/overlay"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		GroupID: "gesture",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.watch")

			clip := clipboard.NewSystem()
			if clip.Unsupported() {
				return errors.New(errors.ErrClipboardRead, MsgErrSystemClip)
			}

			opts, err := a.cfg.HotkeyOptions()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			// Writing the choice to the clipboard is the paste here; the
			// user pastes it into the other window themselves.
			paster := clipboard.NewPaster(clip, clipboard.InjectorFunc(func() error { return nil }),
				clipboard.PasterOptions{Restore: false})
			defer paster.Close()

			input := keyboard.NewChannelSource(64)
			defer input.Close()

			queue := feed.NewQueue[feed.Event]()
			defer queue.Close()

			ctl := hotkey.New(clip, paster, queue, opts)
			model := overlay.New(input, overlay.Options{
				SelectedMarker: a.cfg.Display.SelectedMarker,
				ShowLabels:     a.cfg.Display.ShowLabels,
				AccentColor:    a.cfg.Display.AccentColor,
				Gesture:        opts,
			})

			program := tea.NewProgram(model,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)

			done := logging.LogOperationStart(logger, "watch")
			defer done()

			go func() {
				if err := ctl.Run(ctx, input); err != nil && ctx.Err() == nil {
					logger.Error().Err(err).Msg("controller stopped")
				}
			}()
			go overlay.Forward(ctx, queue.Out(), program)

			if _, err := program.Run(); err != nil && !stderrors.Is(err, tea.ErrProgramKilled) {
				return errors.Wrap(err, errors.ErrInternal, "overlay failed")
			}
			return nil
		},
	}
}
