package cli

import (
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/Tomas-vilte/MateNotes/internal/config"
	domainErrors "github.com/Tomas-vilte/MateNotes/internal/errors"
	"github.com/Tomas-vilte/MateNotes/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "../../locales")
	require.NoError(t, err)
	return trans
}

func TestReadChangeset(t *testing.T) {
	t.Run("should read the changeset from a file", func(t *testing.T) {
		trans := testTranslations(t)
		path := filepath.Join(t.TempDir(), "changeset.md")
		require.NoError(t, os.WriteFile(path, []byte("abc1234: fix crash\n"), 0644))

		changeset, err := readChangeset(path, trans)

		require.NoError(t, err)
		assert.Equal(t, "abc1234: fix crash\n", changeset)
	})

	t.Run("should fail with an input error for a missing file", func(t *testing.T) {
		trans := testTranslations(t)

		_, err := readChangeset(filepath.Join(t.TempDir(), "nope.md"), trans)

		require.Error(t, err)
		var appErr *domainErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainErrors.TypeInput, appErr.Type)
	})

	t.Run("should reject a blank changeset", func(t *testing.T) {
		trans := testTranslations(t)
		path := filepath.Join(t.TempDir(), "empty.md")
		require.NoError(t, os.WriteFile(path, []byte("  \n\t\n"), 0644))

		_, err := readChangeset(path, trans)

		assert.ErrorIs(t, err, domainErrors.ErrEmptyChangeset)
	})
}

func TestWriteNotes(t *testing.T) {
	t.Run("should write the notes to the output file", func(t *testing.T) {
		trans := testTranslations(t)
		path := filepath.Join(t.TempDir(), "RELEASE_NOTES.md")

		err := writeNotes(path, "Commit abc1234 (PR #42):\n", trans)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Commit abc1234 (PR #42):\n", string(data))
	})

	t.Run("should fail with an output error for an unwritable path", func(t *testing.T) {
		trans := testTranslations(t)
		path := filepath.Join(t.TempDir(), "missing-dir", "notes.md")

		err := writeNotes(path, "notes", trans)

		require.Error(t, err)
		var appErr *domainErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainErrors.TypeOutput, appErr.Type)
	})
}

func TestNewApp(t *testing.T) {
	t.Run("should expose the expected flags without subcommands", func(t *testing.T) {
		trans := testTranslations(t)
		config := &cfg.Config{
			Language:          "en",
			DefaultRepository: "saleor/saleor-dashboard",
		}

		app := NewApp(config, trans)

		assert.Equal(t, "mate-notes", app.Name)
		assert.Empty(t, app.Commands)

		names := make(map[string]bool)
		for _, flag := range app.Flags {
			for _, name := range flag.Names() {
				names[name] = true
			}
		}
		for _, expected := range []string{"input", "i", "output", "o", "repo", "r", "lang", "verbose", "debug"} {
			assert.True(t, names[expected], "missing flag %q", expected)
		}
	})
}
