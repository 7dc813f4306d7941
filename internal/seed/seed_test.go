package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pharmacie-tassigny/site/backend/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedContent(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "site", "content")

	for _, name := range []string{content.PharmacyFile, content.ServicesFile, content.FaqFile} {
		require.NoError(t, os.WriteFile(filepath.Join(src, name), []byte(`{"from": "`+name+`"}`), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.txt"), []byte("ignored"), 0o644))

	result, err := SeedContent(src, dst)
	require.NoError(t, err)
	assert.Equal(t, []string{content.PharmacyFile, content.ServicesFile, content.FaqFile}, result.Copied)
	assert.Equal(t, []string{content.TeamFile, content.LegalFile, content.LocalBusinessFile}, result.Skipped)

	data, err := os.ReadFile(filepath.Join(dst, content.ServicesFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{"from": "services.json"}`, string(data))

	entries, err := os.ReadDir(dst)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "no temporary files or unrelated files left behind")
}

func TestSeedContent_Overwrites(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, content.TeamFile), []byte(`{"v": 2}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dst, content.TeamFile), []byte(`{"v": 1}`), 0o644))

	_, err := SeedContent(src, dst)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dst, content.TeamFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{"v": 2}`, string(data))
}

func TestSeedContent_MissingSource(t *testing.T) {
	_, err := SeedContent(filepath.Join(t.TempDir(), "init"), t.TempDir())
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

// The fixtures used by the loader tests are a complete, valid source.
func TestSeedContent_ProducesLoadableContent(t *testing.T) {
	dst := t.TempDir()
	result, err := SeedContent(filepath.Join("..", "content", "testdata"), dst)
	require.NoError(t, err)
	assert.Len(t, result.Copied, len(content.Files))
	assert.Empty(t, result.Skipped)

	loader, err := content.NewLoader(dst, "fr")
	require.NoError(t, err)
	assert.NoError(t, loader.CheckAll())
}
