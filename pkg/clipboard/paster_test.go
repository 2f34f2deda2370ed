// TEST TYPE: Unit Test
// DEPENDENCIES: Mock clipboard and injector, Memory clipboard
// PURPOSE: Verify the save, write, inject, restore sequence and its failures

package clipboard

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/arthur-debert/pathte/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaster_PasteWithoutRestore(t *testing.T) {
	clip := new(mockClipboard)
	inj := new(mockInjector)
	clip.On("ReadText").Return("original", nil).Once()
	clip.On("WriteText", "/mnt/c/x").Return(nil).Once()
	inj.On("InjectPaste").Return(nil).Once()

	p := NewPaster(clip, inj, PasterOptions{})
	require.NoError(t, p.Paste("/mnt/c/x"))
	assert.False(t, p.Pending())

	clip.AssertExpectations(t)
	inj.AssertExpectations(t)
}

func TestPaster_Failures(t *testing.T) {
	boom := stderrors.New("boom")

	tests := []struct {
		name     string
		setup    func(*mockClipboard, *mockInjector)
		wantCode errors.ErrorCode
	}{
		{
			name: "read fails aborts before writing",
			setup: func(c *mockClipboard, i *mockInjector) {
				c.On("ReadText").Return("", boom)
			},
			wantCode: errors.ErrClipboardRead,
		},
		{
			name: "write fails",
			setup: func(c *mockClipboard, i *mockInjector) {
				c.On("ReadText").Return("orig", nil)
				c.On("WriteText", "C:\\x").Return(boom)
				c.On("WriteText", "orig").Return(nil)
			},
			wantCode: errors.ErrClipboardWrite,
		},
		{
			name: "inject fails",
			setup: func(c *mockClipboard, i *mockInjector) {
				c.On("ReadText").Return("orig", nil)
				c.On("WriteText", "C:\\x").Return(nil)
				c.On("WriteText", "orig").Return(nil)
				i.On("InjectPaste").Return(boom)
			},
			wantCode: errors.ErrPasteInject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := new(mockClipboard)
			inj := new(mockInjector)
			tt.setup(clip, inj)

			p := NewPaster(clip, inj, PasterOptions{Restore: true})
			err := p.Paste(`C:\x`)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode))
			assert.ErrorIs(t, err, boom)
			assert.False(t, p.Pending())

			clip.AssertExpectations(t)
			inj.AssertExpectations(t)
		})
	}
}

func TestPaster_FailedPasteLeavesClipboardUnchanged(t *testing.T) {
	boom := stderrors.New("boom")

	t.Run("inject fails", func(t *testing.T) {
		mem := NewMemory("original")
		p := NewPaster(mem, InjectorFunc(func() error { return boom }), PasterOptions{Restore: true})

		err := p.Paste("/mnt/c/x")
		assert.True(t, errors.IsErrorCode(err, errors.ErrPasteInject))
		assert.False(t, p.Pending())

		text, _ := mem.ReadText()
		assert.Equal(t, "original", text)
		assert.Equal(t, []string{"/mnt/c/x", "original"}, mem.Writes())
	})

	t.Run("inject fails while a restore is pending", func(t *testing.T) {
		mem := NewMemory("original")
		fail := false
		p := NewPaster(mem, InjectorFunc(func() error {
			if fail {
				return boom
			}
			return nil
		}), PasterOptions{Restore: true, RestoreDelay: time.Hour})

		require.NoError(t, p.Paste("first"))
		require.True(t, p.Pending())

		fail = true
		err := p.Paste("second")
		assert.True(t, errors.IsErrorCode(err, errors.ErrPasteInject))
		assert.False(t, p.Pending())
		require.NoError(t, p.Flush())

		text, _ := mem.ReadText()
		assert.Equal(t, "original", text)
	})

	t.Run("write fails while a restore is pending", func(t *testing.T) {
		clip := new(mockClipboard)
		clip.On("ReadText").Return("original", nil).Once()
		clip.On("WriteText", "first").Return(nil).Once()
		clip.On("WriteText", "second").Return(boom).Once()
		clip.On("WriteText", "original").Return(nil).Once()
		p := NewPaster(clip, InjectorFunc(func() error { return nil }),
			PasterOptions{Restore: true, RestoreDelay: time.Hour})

		require.NoError(t, p.Paste("first"))
		err := p.Paste("second")
		assert.True(t, errors.IsErrorCode(err, errors.ErrClipboardWrite))
		assert.False(t, p.Pending())

		clip.AssertExpectations(t)
	})
}

func TestPaster_RestoresAfterDelay(t *testing.T) {
	mem := NewMemory("original")
	pasted := 0
	p := NewPaster(mem, InjectorFunc(func() error { pasted++; return nil }),
		PasterOptions{Restore: true, RestoreDelay: 10 * time.Millisecond})

	require.NoError(t, p.Paste("/mnt/c/x"))
	assert.Equal(t, 1, pasted)
	assert.True(t, p.Pending())

	assert.Eventually(t, func() bool {
		text, _ := mem.ReadText()
		return text == "original"
	}, time.Second, 5*time.Millisecond)
	assert.False(t, p.Pending())
	assert.Equal(t, []string{"/mnt/c/x", "original"}, mem.Writes())
}

func TestPaster_NewerPasteKeepsFirstOriginal(t *testing.T) {
	mem := NewMemory("original")
	p := NewPaster(mem, InjectorFunc(func() error { return nil }),
		PasterOptions{Restore: true, RestoreDelay: 20 * time.Millisecond})

	require.NoError(t, p.Paste("first"))
	require.NoError(t, p.Paste("second"))

	assert.Eventually(t, func() bool {
		text, _ := mem.ReadText()
		return text == "original" && !p.Pending()
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"first", "second", "original"}, mem.Writes())
}

func TestPaster_CloseCancelsRestore(t *testing.T) {
	mem := NewMemory("original")
	p := NewPaster(mem, InjectorFunc(func() error { return nil }),
		PasterOptions{Restore: true, RestoreDelay: 20 * time.Millisecond})

	require.NoError(t, p.Paste("chosen"))
	p.Close()
	assert.False(t, p.Pending())

	time.Sleep(50 * time.Millisecond)
	text, _ := mem.ReadText()
	assert.Equal(t, "chosen", text)

	err := p.Paste("again")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPasteInject))
}

func TestPaster_FlushRestoresNow(t *testing.T) {
	mem := NewMemory("original")
	p := NewPaster(mem, InjectorFunc(func() error { return nil }),
		PasterOptions{Restore: true, RestoreDelay: time.Hour})

	require.NoError(t, p.Flush())
	require.NoError(t, p.Paste("chosen"))
	require.True(t, p.Pending())

	require.NoError(t, p.Flush())
	assert.False(t, p.Pending())
	text, _ := mem.ReadText()
	assert.Equal(t, "original", text)
	assert.Equal(t, []string{"chosen", "original"}, mem.Writes())
}

func TestMemory(t *testing.T) {
	var m Memory
	text, err := m.ReadText()
	require.NoError(t, err)
	assert.Empty(t, text)

	require.NoError(t, m.WriteText("a"))
	require.NoError(t, m.WriteText("b"))
	text, _ = m.ReadText()
	assert.Equal(t, "b", text)

	writes := m.Writes()
	writes[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, m.Writes())
}
