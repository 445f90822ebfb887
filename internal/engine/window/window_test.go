package window

import (
	"testing"
	"time"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowEvents(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	w, err := Wrap(Config{}, scr)
	require.NoError(t, err)

	scr.SetSize(40, 12)
	width, height := w.GetSize()
	assert.Equal(t, 40, width)
	assert.Equal(t, 12, height)

	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	for {
		select {
		case ev := <-w.Events():
			if k, ok := ev.(*tcell.EventKey); ok {
				assert.Equal(t, tcell.KeyEscape, k.Key())
				w.Close()
				_, open := <-w.Events()
				assert.False(t, open)
				return
			}
		case <-time.After(5 * time.Second):
			t.Fatal("no key event")
		}
	}
}
