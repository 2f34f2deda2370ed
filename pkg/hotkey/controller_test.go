// TEST TYPE: Unit Test
// DEPENDENCIES: Memory clipboard, mock clipboard and paster, feed queue
// PURPOSE: Verify the paste gesture protocol drives the selection and feed

package hotkey

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/pathte/pkg/clipboard"
	"github.com/arthur-debert/pathte/pkg/errors"
	"github.com/arthur-debert/pathte/pkg/feed"
	"github.com/arthur-debert/pathte/pkg/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const winPath = `C:\Users\test\file.txt`

type mockPaster struct {
	mock.Mock
}

func (m *mockPaster) Paste(text string) error {
	return m.Called(text).Error(0)
}

type mockClipboard struct {
	mock.Mock
}

func (m *mockClipboard) ReadText() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockClipboard) WriteText(text string) error {
	return m.Called(text).Error(0)
}

func newController(t *testing.T, clip clipboard.Clipboard, paster Paster) (*Controller, *feed.Queue[feed.Event]) {
	t.Helper()
	q := feed.NewQueue[feed.Event]()
	return New(clip, paster, q, DefaultOptions()), q
}

func collect(t *testing.T, q *feed.Queue[feed.Event]) []feed.Event {
	t.Helper()
	q.Close()
	var out []feed.Event
	for ev := range q.Out() {
		out = append(out, ev)
	}
	return out
}

func types(events []feed.Event) []feed.EventType {
	out := make([]feed.EventType, len(events))
	for i, ev := range events {
		out[i] = ev.Type()
	}
	return out
}

func TestController_FullGesture(t *testing.T) {
	paster := new(mockPaster)
	paster.On("Paste", "C:/Users/test/file.txt").Return(nil).Once()
	c, q := newController(t, clipboard.NewMemory(winPath), paster)

	ctrl := keyboard.ModCtrl
	assert.False(t, c.HandleEvent(keyboard.Down(keyboard.KeyLControl, ctrl)))
	assert.True(t, c.HandleEvent(keyboard.Down(keyboard.KeyV, ctrl)))
	assert.True(t, c.Tracker().Active())
	assert.False(t, c.HandleEvent(keyboard.Up(keyboard.KeyV, ctrl)))
	assert.True(t, c.HandleEvent(keyboard.Down(keyboard.KeyV, ctrl)))
	assert.True(t, c.HandleEvent(keyboard.Up(keyboard.KeyLControl, keyboard.ModNone)))
	assert.False(t, c.Tracker().Active())

	events := collect(t, q)
	require.Equal(t, []feed.EventType{
		feed.EventSelectionShown,
		feed.EventSelectionChanged,
		feed.EventSelectionClosed,
		feed.EventPasteCompleted,
	}, types(events))

	shown := events[0].(feed.SelectionShownEvent).Snapshot
	assert.Equal(t, 0, shown.Selected)
	require.Len(t, shown.Options, 3)
	assert.Equal(t, []string{winPath, "C:/Users/test/file.txt", "/mnt/c/Users/test/file.txt"},
		[]string{shown.Options[0].Text, shown.Options[1].Text, shown.Options[2].Text})

	changed := events[1].(feed.SelectionChangedEvent).Snapshot
	assert.Equal(t, 1, changed.Selected)
	assert.Equal(t, shown.ID, changed.ID)

	closed := events[2].(feed.SelectionClosedEvent)
	assert.Equal(t, shown.ID, closed.ID)
	assert.Equal(t, "C:/Users/test/file.txt", closed.Text)
	assert.False(t, closed.Cancelled)

	assert.Equal(t, "C:/Users/test/file.txt", events[3].(feed.PasteCompletedEvent).Text)
	paster.AssertExpectations(t)
}

func TestController_ReverseModifierRetreats(t *testing.T) {
	paster := new(mockPaster)
	paster.On("Paste", "/mnt/c/Users/test/file.txt").Return(nil)
	c, q := newController(t, clipboard.NewMemory(winPath), paster)

	c.HandleEvent(keyboard.Down(keyboard.KeyV, keyboard.ModCtrl))
	assert.True(t, c.HandleEvent(keyboard.Down(keyboard.KeyV, keyboard.ModCtrl|keyboard.ModShift)))
	assert.True(t, c.HandleEvent(keyboard.Up(keyboard.KeyRControl, keyboard.ModShift)))

	events := collect(t, q)
	require.Len(t, events, 4)
	assert.Equal(t, 2, events[1].(feed.SelectionChangedEvent).Snapshot.Selected)
	paster.AssertExpectations(t)
}

func TestController_PassThrough(t *testing.T) {
	tests := []struct {
		name      string
		clipboard string
		event     keyboard.Event
	}{
		{"paste without trigger", winPath, keyboard.Down(keyboard.KeyV, keyboard.ModNone)},
		{"paste with wrong modifier", winPath, keyboard.Down(keyboard.KeyV, keyboard.ModAlt)},
		{"other key with trigger", winPath, keyboard.Down(keyboard.KeyA, keyboard.ModCtrl)},
		{"not a path", "hello world", keyboard.Down(keyboard.KeyV, keyboard.ModCtrl)},
		{"url", "https://example.com/a/b", keyboard.Down(keyboard.KeyV, keyboard.ModCtrl)},
		{"no other variant", "/srv/report?.txt", keyboard.Down(keyboard.KeyV, keyboard.ModCtrl)},
		{"release while empty", winPath, keyboard.Up(keyboard.KeyLControl, keyboard.ModNone)},
		{"escape while empty", winPath, keyboard.Down(keyboard.KeyEscape, keyboard.ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paster := new(mockPaster)
			c, q := newController(t, clipboard.NewMemory(tt.clipboard), paster)

			assert.False(t, c.HandleEvent(tt.event))
			assert.False(t, c.Tracker().Active())
			assert.Empty(t, collect(t, q))
			paster.AssertNotCalled(t, "Paste", mock.Anything)
		})
	}
}

func TestController_ClipboardReadFailurePublishesNotice(t *testing.T) {
	clip := new(mockClipboard)
	clip.On("ReadText").Return("", errors.New(errors.ErrClipboardRead, "no display"))
	c, q := newController(t, clip, new(mockPaster))

	assert.False(t, c.HandleEvent(keyboard.Down(keyboard.KeyV, keyboard.ModCtrl)))

	events := collect(t, q)
	require.Len(t, events, 1)
	notice := events[0].(feed.NoticeEvent)
	assert.Equal(t, feed.LevelWarn, notice.Level)
	assert.True(t, errors.IsErrorCode(notice.Err, errors.ErrClipboardRead))
}

func TestController_PasteFailurePublishesNotice(t *testing.T) {
	boom := errors.Wrap(stderrors.New("denied"), errors.ErrPasteInject, "failed to send paste keystroke")
	paster := new(mockPaster)
	paster.On("Paste", winPath).Return(boom)
	c, q := newController(t, clipboard.NewMemory(winPath), paster)

	c.HandleEvent(keyboard.Down(keyboard.KeyV, keyboard.ModCtrl))
	assert.True(t, c.HandleEvent(keyboard.Up(keyboard.KeyControl, keyboard.ModNone)))
	assert.False(t, c.Tracker().Active())

	events := collect(t, q)
	assert.Equal(t, []feed.EventType{feed.EventSelectionShown, feed.EventSelectionClosed, feed.EventNotice}, types(events))
	assert.True(t, errors.IsErrorCode(events[2].(feed.NoticeEvent).Err, errors.ErrPasteInject))
}

func TestController_Cancel(t *testing.T) {
	paster := new(mockPaster)
	c, q := newController(t, clipboard.NewMemory(winPath), paster)

	assert.False(t, c.Cancel())

	c.HandleEvent(keyboard.Down(keyboard.KeyV, keyboard.ModCtrl))
	assert.True(t, c.HandleEvent(keyboard.Down(keyboard.KeyEscape, keyboard.ModCtrl)))
	assert.False(t, c.Tracker().Active())

	// Releasing Ctrl afterwards must not paste.
	assert.False(t, c.HandleEvent(keyboard.Up(keyboard.KeyLControl, keyboard.ModNone)))

	events := collect(t, q)
	require.Len(t, events, 2)
	closed := events[1].(feed.SelectionClosedEvent)
	assert.True(t, closed.Cancelled)
	assert.Empty(t, closed.Text)
	paster.AssertNotCalled(t, "Paste", mock.Anything)
}

func TestController_CustomKeys(t *testing.T) {
	paster := new(mockPaster)
	paster.On("Paste", "C:/Users/test/file.txt").Return(nil)
	q := feed.NewQueue[feed.Event]()
	c := New(clipboard.NewMemory(winPath), paster, q, Options{
		PasteKey: keyboard.KeySpace,
		Trigger:  keyboard.ModAlt,
		Reverse:  keyboard.ModShift,
	})

	assert.False(t, c.HandleEvent(keyboard.Down(keyboard.KeyV, keyboard.ModCtrl)))
	assert.True(t, c.HandleEvent(keyboard.Down(keyboard.KeySpace, keyboard.ModAlt)))
	assert.True(t, c.HandleEvent(keyboard.Down(keyboard.KeySpace, keyboard.ModAlt)))
	assert.False(t, c.HandleEvent(keyboard.Up(keyboard.KeyLControl, keyboard.ModAlt)))
	assert.True(t, c.HandleEvent(keyboard.Up(keyboard.KeyLAlt, keyboard.ModNone)))
	q.Close()
	paster.AssertExpectations(t)
}

func TestController_RunScript(t *testing.T) {
	script := `
down ctrl
press v
press v
press v
press v
up ctrl
`
	events, err := keyboard.ParseScript(strings.NewReader(script))
	require.NoError(t, err)

	mem := clipboard.NewMemory(winPath)
	pasted := 0
	paster := clipboard.NewPaster(mem, clipboard.InjectorFunc(func() error { pasted++; return nil }), clipboard.PasterOptions{})
	c, q := newController(t, mem, paster)

	require.NoError(t, c.Run(context.Background(), keyboard.NewScriptSource(events)))

	got := collect(t, q)
	assert.Equal(t, []feed.EventType{
		feed.EventSelectionShown,
		feed.EventSelectionChanged,
		feed.EventSelectionChanged,
		feed.EventSelectionChanged,
		feed.EventSelectionClosed,
		feed.EventPasteCompleted,
	}, types(got))

	// Three steps on three options wrap back to the original.
	assert.Equal(t, winPath, got[4].(feed.SelectionClosedEvent).Text)
	assert.Equal(t, 1, pasted)
	text, _ := mem.ReadText()
	assert.Equal(t, winPath, text)
}

func TestController_RunStopsOnCancel(t *testing.T) {
	c, q := newController(t, clipboard.NewMemory(winPath), new(mockPaster))
	src := keyboard.NewChannelSource(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, src) }()

	src.Send(keyboard.Down(keyboard.KeyV, keyboard.ModCtrl))
	assert.Eventually(t, c.Tracker().Active, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}
	src.Close()
	q.Close()
}
