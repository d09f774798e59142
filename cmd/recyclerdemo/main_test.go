package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartErrors(t *testing.T) {
	dir := t.TempDir()

	err := start([]string{"-config", filepath.Join(dir, "missing.yaml")})
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "could not load config")

	err = start([]string{"-log", filepath.Join(dir, "no", "such", "dir.log")})
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "could not open log file")

	require.Error(t, start([]string{"-unknown"}))
}

func TestGenerate(t *testing.T) {
	records := generate(10, 3)
	require.Len(t, records, 3)
	assert.Equal(t, 10, records[0].id)
	assert.Equal(t, "Record #12", records[2].title)
	assert.NotEmpty(t, records[1].body)
}
