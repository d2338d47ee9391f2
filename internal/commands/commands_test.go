package commands

import (
	"errors"
	"flag"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cactus-gen/internal/config"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line   string
		args   []string
		wantOK bool
	}{
		{"cmd grid --show", []string{"grid", "--show"}, true},
		{"cmd   body  --ribs 6 ", []string{"body", "--ribs", "6"}, true},
		{"cmd ", nil, true},
		{"grid --show", nil, false},
		{"Cmd grid", nil, false},
		{`cmd save --path "my shapes/tall.yaml"`, []string{"save", "--path", "my shapes/tall.yaml"}, true},
	}
	for _, tt := range tests {
		args, ok, err := Parse(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.wantOK, ok, tt.line)
		assert.Equal(t, tt.args, args, tt.line)
	}
}

func TestParseUnbalancedQuote(t *testing.T) {
	_, ok, err := Parse(`cmd load --path "broken`)
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	r.Register("noop", "noop", func(*flag.FlagSet) func() error {
		return func() error { return nil }
	})

	assert.ErrorIs(t, r.Execute(nil), ErrNoCommand)
	assert.ErrorContains(t, r.Execute([]string{"nope"}), "unknown command")
	assert.ErrorContains(t, r.Execute([]string{"noop", "--bogus"}), "usage: cmd noop")
	assert.ErrorContains(t, r.Execute([]string{"noop", "extra"}), "unexpected argument")
	assert.NoError(t, r.Execute([]string{"noop"}))
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	r := NewRegistry()
	var seen []int
	r.Register("n", "n [--v N]", func(fs *flag.FlagSet) func() error {
		v := fs.Int("v", -1, "value")
		return func() error {
			seen = append(seen, *v)
			return nil
		}
	})
	require.NoError(t, r.Execute([]string{"n", "--v", "3"}))
	require.NoError(t, r.Execute([]string{"n"}))
	assert.Equal(t, []int{3, -1}, seen)
}

func TestToggle(t *testing.T) {
	r := NewRegistry()
	var state []bool
	r.RegisterToggle("grid", "show", "hide", func(on bool) error {
		state = append(state, on)
		return nil
	})

	require.NoError(t, r.Execute([]string{"grid", "--hide"}))
	require.NoError(t, r.Execute([]string{"grid", "--show"}))
	assert.Equal(t, []bool{false, true}, state)

	assert.Error(t, r.Execute([]string{"grid"}))
	assert.Error(t, r.Execute([]string{"grid", "--show", "--hide"}))
	assert.Len(t, state, 2)

	boom := errors.New("boom")
	r.RegisterToggle("fail", "on", "off", func(bool) error { return boom })
	assert.ErrorIs(t, r.Execute([]string{"fail", "--on"}), boom)
}

func newCactusRegistry(t *testing.T) (*Registry, *config.Store, *[]string) {
	t.Helper()
	var lines []string
	store := config.NewStore(config.Default())
	r := NewRegistry()
	RegisterCactus(r, Env{
		Store:      store,
		ConfigPath: filepath.Join(t.TempDir(), "cactus.yaml"),
		Log:        func(s string) { lines = append(lines, s) },
		Stats:      func() string { return "3 meshes" },
	})
	return r, store, &lines
}

func run(t *testing.T, r *Registry, line string) error {
	t.Helper()
	args, ok, err := Parse(line)
	require.NoError(t, err, line)
	require.True(t, ok, line)
	return r.Execute(args)
}

func TestBodyCommandChangesOnlyGivenFlags(t *testing.T) {
	r, store, _ := newCactusRegistry(t)
	before, rev := store.Snapshot()

	require.NoError(t, run(t, r, "cmd body --ribs 12"))
	after, next := store.Snapshot()
	assert.Equal(t, rev+1, next)
	assert.Equal(t, 12, after.Body.Ribs)
	assert.Equal(t, before.Body.Height, after.Body.Height)
	assert.Equal(t, before.Body.Segmentation, after.Body.Segmentation)

	require.NoError(t, run(t, r, "cmd body --height 120 --width 30"))
	after, _ = store.Snapshot()
	assert.Equal(t, 12, after.Body.Ribs)
	assert.Equal(t, 120.0, after.Body.Height)
	assert.Equal(t, 30.0, after.Body.Width)
}

func TestCommandValidation(t *testing.T) {
	r, store, _ := newCactusRegistry(t)
	_, rev := store.Snapshot()

	err := run(t, r, "cmd spines --density 150")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spines.density")
	assert.Equal(t, rev, store.Revision())

	assert.Error(t, run(t, r, "cmd arms --count 20"))
	assert.Error(t, run(t, r, "cmd body --ribs many"))
	assert.Equal(t, rev, store.Revision())
}

func TestFlowerArmAndPotCommands(t *testing.T) {
	r, store, _ := newCactusRegistry(t)

	require.NoError(t, run(t, r, "cmd pot --size 90"))
	require.NoError(t, run(t, r, "cmd flowers --count 5 --seed 42"))
	require.NoError(t, run(t, r, "cmd arms --count 2 --seed 7 --length 80"))

	c, _ := store.Snapshot()
	assert.Equal(t, 90.0, c.Addons.PotSize)
	assert.Equal(t, 5, c.Addons.Flowers)
	assert.Equal(t, int32(42), c.Addons.Seed)
	assert.Equal(t, 2, c.Arms.Count)
	assert.Equal(t, int32(7), c.Arms.PlacementSeed)
	assert.Equal(t, 80.0, c.Arms.Length)
}

func TestSaveLoadReset(t *testing.T) {
	r, store, lines := newCactusRegistry(t)

	require.NoError(t, run(t, r, "cmd body --ribs 5"))
	require.NoError(t, run(t, r, "cmd save"))
	require.NoError(t, run(t, r, "cmd reset"))
	c, _ := store.Snapshot()
	assert.Equal(t, config.Default(), c)

	require.NoError(t, run(t, r, "cmd load"))
	c, _ = store.Snapshot()
	assert.Equal(t, 5, c.Body.Ribs)

	require.Len(t, *lines, 3)
	assert.Contains(t, (*lines)[0], "saved")
	assert.Equal(t, "reset to defaults", (*lines)[1])
	assert.Contains(t, (*lines)[2], "loaded")
}

func TestSaveLoadExplicitPath(t *testing.T) {
	r, store, lines := newCactusRegistry(t)
	path := filepath.Join(t.TempDir(), "my shapes", "tall.toml")

	require.NoError(t, run(t, r, "cmd arms --count 2"))
	require.NoError(t, run(t, r, `cmd save --path "`+path+`"`))
	require.NoError(t, run(t, r, "cmd reset"))
	require.NoError(t, run(t, r, `cmd load --path "`+path+`"`))

	c, _ := store.Snapshot()
	assert.Equal(t, 2, c.Arms.Count)
	assert.Equal(t, "saved "+path, (*lines)[0])
	assert.Equal(t, "loaded "+path, (*lines)[2])
}

func TestStatsAndHelp(t *testing.T) {
	r, _, lines := newCactusRegistry(t)

	require.NoError(t, run(t, r, "cmd stats"))
	assert.Equal(t, []string{"3 meshes"}, *lines)

	*lines = nil
	require.NoError(t, run(t, r, "cmd help"))
	assert.Len(t, *lines, len(r.Names()))
	assert.Contains(t, *lines, "cmd pot [--size N]")
}
