package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	p := Default()
	assert.Equal(t, 10, p.DefaultParity)
	assert.Equal(t, 223, p.DefaultBlockSize)
	assert.Equal(t, ".huff", p.ArchiveExt)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codectoy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_parity: 16\n"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, p.DefaultParity)
	assert.Equal(t, 223, p.DefaultBlockSize)
	assert.Equal(t, ".huff", p.ArchiveExt)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/codectoy.yaml")
	assert.Error(t, err)
}
