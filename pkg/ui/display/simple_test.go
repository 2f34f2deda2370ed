package display

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/pathte/pkg/errors"
	"github.com/arthur-debert/pathte/pkg/feed"
	"github.com/arthur-debert/pathte/pkg/paths"
	"github.com/arthur-debert/pathte/pkg/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, result interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	ok, err := NewTextRenderer(&buf).Render(result)
	require.NoError(t, err)
	require.True(t, ok)
	return buf.String()
}

func TestTextRenderer_Classify(t *testing.T) {
	single := &ClassifyResult{Results: []Classification{{Input: "/home/a", IsPath: true, Format: paths.Unix}}}
	assert.Equal(t, "unix\n", render(t, single))

	multi := &ClassifyResult{Results: []Classification{
		{Input: `C:\x`, IsPath: true, Format: paths.Windows},
		{Input: "hello", IsPath: false},
	}}
	assert.Equal(t, "C:\\x\twindows\nhello\tnot a path\n", render(t, multi))
}

func TestTextRenderer_Convert(t *testing.T) {
	res := &ConvertResult{Input: `C:\x`, From: paths.Windows, To: paths.WSL, Output: "/mnt/c/x"}
	assert.Equal(t, "/mnt/c/x\n", render(t, res))
}

func TestTextRenderer_VariantsAndCycle(t *testing.T) {
	sel, ok := selection.New(`C:\Users\test\file.txt`)
	require.True(t, ok)
	snap := sel.Snapshot()

	variants := &VariantsResult{Input: `C:\Users\test\file.txt`, Original: paths.Windows, Variants: snap.Options}
	assert.Equal(t,
		"* Win   C:\\Users\\test\\file.txt\n"+
			"  Unix  C:/Users/test/file.txt\n"+
			"  WSL   /mnt/c/Users/test/file.txt\n",
		render(t, variants))

	sel.Advance()
	cycle := &CycleResult{Steps: 1, Snapshot: sel.Snapshot()}
	assert.Equal(t,
		"  Win   C:\\Users\\test\\file.txt\n"+
			"> Unix  C:/Users/test/file.txt\n"+
			"  WSL   /mnt/c/Users/test/file.txt\n",
		render(t, cycle))
}

func TestTextRenderer_UnknownType(t *testing.T) {
	ok, err := NewTextRenderer(&bytes.Buffer{}).Render(42)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRecordEvent(t *testing.T) {
	sel, ok := selection.New("/mnt/d/data")
	require.True(t, ok)

	shown := RecordEvent(feed.SelectionShownEvent{Snapshot: sel.Snapshot()})
	assert.Equal(t, feed.EventSelectionShown, shown.Type)
	require.NotNil(t, shown.Selected)
	assert.Equal(t, sel.Index(), *shown.Selected)
	assert.Equal(t, "/mnt/d/data", shown.Text)
	assert.Equal(t, sel.ID(), shown.ID)

	cancelled := RecordEvent(feed.SelectionClosedEvent{ID: "x", Cancelled: true})
	assert.Equal(t, "SelectionClosed cancelled", FormatEvent(cancelled))

	notice := RecordEvent(feed.NoticeEvent{Level: feed.LevelWarn, Message: "Could not read the clipboard",
		Err: errors.New(errors.ErrClipboardRead, "busy")})
	assert.Equal(t, "Notice (warn) Could not read the clipboard: [CLIPBOARD_READ] busy", FormatEvent(notice))

	pasted := RecordEvent(feed.PasteCompletedEvent{ID: "x", Text: `D:\data`})
	assert.Equal(t, `PasteCompleted D:\data`, FormatEvent(pasted))
}
