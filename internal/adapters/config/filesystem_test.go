package config_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/adapters/config"
)

func TestMounted(t *testing.T) {
	m := config.Mount("/work/", fstest.MapFS{
		"glance.yaml":         {Data: []byte("version: \"1\"\n")},
		"project/screen.yaml": {Data: []byte("root: {}\n")},
	})

	t.Run("reads below the root", func(t *testing.T) {
		data, err := m.ReadFile("/work/glance.yaml")
		require.NoError(t, err)
		assert.Equal(t, "version: \"1\"\n", string(data))
	})

	t.Run("resolves relative paths against the root", func(t *testing.T) {
		info, err := m.Stat("project/screen.yaml")
		require.NoError(t, err)
		assert.False(t, info.IsDir())
	})

	t.Run("the root itself is a directory", func(t *testing.T) {
		info, err := m.Stat("/work")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("paths outside the root do not exist", func(t *testing.T) {
		_, err := m.Stat("/glance.yaml")
		require.ErrorIs(t, err, fs.ErrNotExist)

		_, err = m.ReadFile("/work/../etc/passwd")
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}
