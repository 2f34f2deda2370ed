package pathte

import (
	"io"
	"os"
	"sync"

	"github.com/arthur-debert/pathte/pkg/clipboard"
	"github.com/arthur-debert/pathte/pkg/errors"
	"github.com/arthur-debert/pathte/pkg/feed"
	"github.com/arthur-debert/pathte/pkg/hotkey"
	"github.com/arthur-debert/pathte/pkg/keyboard"
	"github.com/arthur-debert/pathte/pkg/logging"
	"github.com/arthur-debert/pathte/pkg/ui/display"
	"github.com/spf13/cobra"
)

// pasteRecorder stands in for the paste keystroke and remembers what the
// clipboard held each time it was sent.
type pasteRecorder struct {
	clip clipboard.Clipboard

	mu     sync.Mutex
	pasted []string
}

func (r *pasteRecorder) InjectPaste() error {
	text, err := r.clip.ReadText()
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pasted = append(r.pasted, text)
	return nil
}

func (r *pasteRecorder) Pasted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.pasted...)
}

func newReplayCmd(a *app) *cobra.Command {
	var clipText string

	cmd := &cobra.Command{
		Use:     "replay <script|->",
		Short:   MsgReplayShort,
		Long:    MsgReplayLong,
		GroupID: "gesture",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.replay")

			events, err := readScript(cmd, args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("clipboard") {
				text, err := clipboard.NewSystem().ReadText()
				if err != nil {
					return errors.Wrap(err, errors.ErrClipboardRead, MsgErrReadClipboard)
				}
				clipText = text
			}

			opts, err := a.cfg.HotkeyOptions()
			if err != nil {
				return err
			}

			result, err := replay(cmd, events, clipText, opts, a.cfg.PasterOptions())
			if err != nil {
				return err
			}

			logger.Info().
				Int("keys", len(events)).
				Int("events", len(result.Events)).
				Int("pastes", len(result.Pasted)).
				Msg("Replay finished")

			return a.render(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&clipText, "clipboard", "c", "", MsgFlagClipboard)

	return cmd
}

func readScript(cmd *cobra.Command, name string) ([]keyboard.Event, error) {
	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrReadScript).WithDetail("path", name)
		}
		defer f.Close()
		r = f
	}
	return keyboard.ParseScript(r)
}

// replay drives a controller over an in-memory clipboard and collects
// everything it published. A restore still pending at the end is applied
// so the final clipboard is what the user would see once it settles.
func replay(cmd *cobra.Command, events []keyboard.Event, clipText string, opts hotkey.Options, pasterOpts clipboard.PasterOptions) (*display.ReplayResult, error) {
	mem := clipboard.NewMemory(clipText)
	recorder := &pasteRecorder{clip: mem}
	paster := clipboard.NewPaster(mem, recorder, pasterOpts)
	defer paster.Close()

	queue := feed.NewQueue[feed.Event]()
	ctl := hotkey.New(mem, paster, queue, opts)

	if err := ctl.Run(cmd.Context(), keyboard.NewScriptSource(events)); err != nil {
		queue.Close()
		return nil, err
	}
	queue.Close()

	if err := paster.Flush(); err != nil {
		return nil, err
	}

	result := &display.ReplayResult{Pasted: recorder.Pasted()}
	for ev := range queue.Out() {
		result.Events = append(result.Events, display.RecordEvent(ev))
	}
	result.Clipboard, _ = mem.ReadText()
	return result, nil
}
