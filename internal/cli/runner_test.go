package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t       *testing.T
	workDir string
	env     map[string]string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	root := t.TempDir()
	return &harness{
		t:       t,
		workDir: filepath.Join(root, "work"),
		env:     map[string]string{"TODOLIST_THEME": "mono"},
	}
}

func (h *harness) run(args ...string) (code int, stdout, stderr string) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	code = Run(context.Background(), args, Options{
		Stdout:     &out,
		Stderr:     &errOut,
		WorkDir:    h.workDir,
		UserConfig: filepath.Join(h.workDir, "no-user-config.toml"),
		LookupEnv: func(k string) (string, bool) {
			v, ok := h.env[k]
			return v, ok
		},
	})
	return code, out.String(), errOut.String()
}

func (h *harness) plain() string {
	h.t.Helper()
	code, out, errOut := h.run("ls", "--plain")
	require.Equal(h.t, 0, code, errOut)
	return out
}

func TestAddListRemove(t *testing.T) {
	h := newHarness(t)

	code, out, _ := h.run("add", "buy", "milk")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "added id-0")

	code, _, _ = h.run("add", "  call mom ")
	require.Equal(t, 0, code)

	assert.Equal(t, "id-0\tbuy milk\nid-1\tcall mom\n", h.plain())

	code, out, _ = h.run("ls")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "1. buy milk")
	assert.Contains(t, out, "2. call mom")

	code, out, _ = h.run("rm", "id-0")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "removed id-0")

	code, out, _ = h.run("rm", "id-0")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "no item with id id-0")

	// Ids keep climbing after a removal.
	code, out, _ = h.run("add", "water plants")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "added id-2")

	b, err := os.ReadFile(filepath.Join(h.workDir, "quotes.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"id-1","content":"call mom"},{"id":"id-2","content":"water plants"}]`, string(b))
}

func TestMoveAndEdit(t *testing.T) {
	h := newHarness(t)
	for _, s := range []string{"a", "b", "c"} {
		code, _, _ := h.run("add", s)
		require.Equal(t, 0, code)
	}

	code, out, _ := h.run("mv", "1", "3")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "moved 1 → 3")
	assert.Equal(t, "id-1\tb\nid-2\tc\nid-0\ta\n", h.plain())

	code, _, _ = h.run("edit", "id-2", "see", "you")
	require.Equal(t, 0, code)
	assert.Equal(t, "id-1\tb\nid-2\tsee you\nid-0\ta\n", h.plain())

	code, _, errOut := h.run("edit", "id-9", "x")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no item with id id-9")
}

func TestUsageErrors(t *testing.T) {
	h := newHarness(t)
	_, _, _ = h.run("add", "only")

	tests := [][]string{
		{"add"},
		{"add", "   "},
		{"rm"},
		{"mv", "1"},
		{"mv", "x", "1"},
		{"mv", "1", "5"},
		{"edit", "id-0"},
		{"edit", "id-0", " "},
		{"frobnicate"},
		{"ls", "--nope"},
		{"--backend", "postgres", "ls"},
	}
	for _, args := range tests {
		code, _, errOut := h.run(args...)
		assert.Equal(t, 2, code, "args %v: %s", args, errOut)
	}
	assert.Equal(t, "id-0\tonly\n", h.plain())
}

func TestCorruptStorageRecovers(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.MkdirAll(h.workDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(h.workDir, "quotes.json"), []byte("not json{"), 0o644))

	code, out, errOut := h.run("ls", "--plain")
	require.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "invalid list data")

	b, err := os.ReadFile(filepath.Join(h.workDir, "quotes.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestSeedAndSQLiteBackend(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.MkdirAll(h.workDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(h.workDir, "todolist.toml"), []byte(`
backend = "sqlite"
seed = ["Quote 0", "Quote 1"]
`), 0o644))

	assert.Equal(t, "id-0\tQuote 0\nid-1\tQuote 1\n", h.plain())
	_, err := os.Stat(filepath.Join(h.workDir, "todolist.db"))
	assert.NoError(t, err)

	code, _, _ := h.run("rm", "id-0")
	require.Equal(t, 0, code)
	assert.Equal(t, "id-1\tQuote 1\n", h.plain(), "seed only applies to an empty slot")
}

func TestKeyFlag(t *testing.T) {
	h := newHarness(t)
	code, _, _ := h.run("--key", "groceries", "add", "eggs")
	require.Equal(t, 0, code)
	_, err := os.Stat(filepath.Join(h.workDir, "groceries.json"))
	assert.NoError(t, err)
	assert.Empty(t, h.plain())
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	code, out, _ := h.run("version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "todolist "))
}
