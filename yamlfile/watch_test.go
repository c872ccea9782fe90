package yamlfile

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	loader := testLoader(t)
	f := New(loader, "", "config")
	require.NoError(t, f.SaveDefaults())

	changed := make(chan struct{}, 4)
	stop, err := f.Watch(func() { changed <- struct{}{} })
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(f.Path(), []byte("a:\n  b: 2\n"), 0644))
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	// Writes to sibling files are filtered out.
	sibling := f.Path() + ".bak"
	require.NoError(t, os.WriteFile(sibling, []byte("x"), 0644))
	select {
	case <-changed:
		t.Fatal("notified for a sibling file")
	case <-time.After(200 * time.Millisecond):
	}
}
