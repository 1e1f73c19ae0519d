package provider_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/adapters/provider"
	"go.trai.ch/glance/internal/core/domain"
)

func TestModelStore_ListModels(t *testing.T) {
	t.Run("missing directory lists the pivot only", func(t *testing.T) {
		store := provider.NewModelStore(filepath.Join(t.TempDir(), "models"), "", nil)

		langs, err := store.ListModels(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []string{"en"}, langs)
	})

	t.Run("installed models are sorted", func(t *testing.T) {
		dir := installModels(t, "he", "fr")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, domain.FilePerm))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "cache.yaml"), domain.DirPerm))
		store := provider.NewModelStore(dir, "", nil)

		langs, err := store.ListModels(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "fr", "he"}, langs)
	})
}

func TestModelStore_DownloadModel(t *testing.T) {
	srv := modelServer(t)
	dir := filepath.Join(t.TempDir(), "models")
	store := provider.NewModelStore(dir, srv.URL+"/models", srv.Client())

	require.NoError(t, store.DownloadModel(t.Context(), "fr-FR"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary files are left behind")
	assert.Equal(t, "fr.yaml", entries[0].Name())
	assert.True(t, store.Installed("fr"))

	m, err := store.Load("fr")
	require.NoError(t, err)
	assert.Equal(t, "bonjour", m.Entries["hello"])
}

func TestModelStore_DownloadModel_Pivot(t *testing.T) {
	store := provider.NewModelStore(t.TempDir(), "", nil)

	require.NoError(t, store.DownloadModel(t.Context(), "en"))
}

func TestModelStore_DownloadModel_Errors(t *testing.T) {
	srv := modelServer(t)

	tests := []struct {
		name        string
		baseURL     string
		lang        string
		errContains string
	}{
		{"no model URL", "", "fr", "no model URL configured"},
		{"unknown model", srv.URL + "/models", "de", "404"},
		{"invalid language", srv.URL + "/models", "not a language!!", domain.ErrInvalidLanguage.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			store := provider.NewModelStore(dir, tt.baseURL, srv.Client())

			err := store.DownloadModel(t.Context(), tt.lang)

			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
			entries, _ := os.ReadDir(dir)
			assert.Empty(t, entries)
		})
	}
}

func TestModelStore_Load_MismatchedLanguage(t *testing.T) {
	dir := installModels(t, "fr")
	require.NoError(t, os.Rename(filepath.Join(dir, "fr.yaml"), filepath.Join(dir, "it.yaml")))
	store := provider.NewModelStore(dir, "", nil)

	_, err := store.Load("it")

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrModelParseFailed.Error())
}

func TestModelStore_DeleteModel(t *testing.T) {
	dir := installModels(t, "fr")
	store := provider.NewModelStore(dir, "", nil)

	require.NoError(t, store.DeleteModel(t.Context(), "fr"))
	assert.NoFileExists(t, filepath.Join(dir, "fr.yaml"))

	err := store.DeleteModel(t.Context(), "fr")
	assert.ErrorContains(t, err, domain.ErrModelNotFound.Error())

	err = store.DeleteModel(t.Context(), "en")
	assert.ErrorContains(t, err, domain.ErrBuiltinModel.Error())
}
