package host

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/rotary"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestConfigWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keyboard.toml")
	writeFile(t, path, "letters = [\"a\", \"b\"]\n")

	w, err := WatchConfig(t.Context(), path)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, path, "letters = [\"c\", \"a\", \"t\"]\nrepeat_policy = \"collapse\"\n")

	select {
	case cfg := <-w.Updates():
		assert.Equal(t, []string{"c", "a", "t"}, cfg.Letters)
		assert.Equal(t, rotary.RepeatCollapse, cfg.RepeatPolicy)
	case err := <-w.Errors():
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no config update received")
	}
}

func TestConfigWatcherInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keyboard.yaml")
	writeFile(t, path, "letters: [a]\n")

	w, err := WatchConfig(t.Context(), path)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, path, "letters: [a]\nhit_radius: -1\n")

	select {
	case err := <-w.Errors():
		assert.ErrorContains(t, err, "reload config")
	case cfg := <-w.Updates():
		t.Fatalf("invalid config delivered: %+v", cfg)
	case <-time.After(5 * time.Second):
		t.Fatal("no error received")
	}
}

func TestConfigWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keyboard.json")
	writeFile(t, path, `{"letters":["a"]}`)

	w, err := WatchConfig(t.Context(), path)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, filepath.Join(dir, "other.json"), `{"letters":["z"]}`)

	select {
	case cfg := <-w.Updates():
		t.Fatalf("update for unrelated file: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	_, err := WatchConfig(t.Context(), filepath.Join(t.TempDir(), "nope", "keyboard.toml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "watch directory")
}

func TestGameAppliesReloadedConfig(t *testing.T) {
	kb, _ := newTestKeyboard(t)
	g, err := newGame(kb, DefaultRunConfig())
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "keyboard.toml")
	writeFile(t, path, "letters = [\"a\"]\n")
	g.watcher, err = WatchConfig(t.Context(), path)
	require.NoError(t, err)
	defer g.close()

	writeFile(t, path, "letters = [\"x\", \"y\"]\nhit_radius = 42.0\n")

	require.Eventually(t, func() bool {
		g.applyPending()
		return kb.HitRadius() == 42
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, []string{"x", "y"}, kb.Letters())
}
