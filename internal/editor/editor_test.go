package editor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maped/internal/grid"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.map")

	sess := New(path)
	grid.FillRect(sess.Grid, 100, 200, 50, 50, grid.Water)
	grid.FillCircle(sess.Grid, 500, 500, 30, grid.Rock)
	require.NoError(t, sess.Save())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, grid.Water, loaded.Grid.Get(120, 220))
	assert.Equal(t, grid.Rock, loaded.Grid.Get(500, 500))
	assert.Equal(t, grid.Grass, loaded.Grid.Get(0, 0))
}

func TestSaveWritesExactFormatSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.map")
	require.NoError(t, New(path).Save())

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(grid.Side*grid.Side*2), fi.Size())
}

func TestLoadRejectsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.map")
	require.NoError(t, os.WriteFile(path, make([]byte, 10), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var fe *grid.FormatError
	assert.True(t, errors.As(err, &fe), "expected a wrapped *grid.FormatError, got %v", err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.map"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseTile(t *testing.T) {
	tile, err := ParseTile("3")
	require.NoError(t, err)
	assert.Equal(t, grid.Rock, tile)

	_, err = ParseTile("7")
	assertValidation(t, err)

	_, err = ParseTile("rock")
	assertValidation(t, err)
}

func TestCheckDensity(t *testing.T) {
	assert.NoError(t, CheckDensity(0))
	assert.NoError(t, CheckDensity(0.5))
	assert.NoError(t, CheckDensity(1))
	assertValidation(t, CheckDensity(-0.1))
	assertValidation(t, CheckDensity(1.1))
}

func TestCheckScale(t *testing.T) {
	assert.NoError(t, CheckScale(1))
	assertValidation(t, CheckScale(0))
	assertValidation(t, CheckScale(-2))
}

func TestCheckRegion(t *testing.T) {
	assert.NoError(t, CheckRegion(grid.Region{X: 0, Z: 0, W: 10, H: 10}, 100))
	assertValidation(t, CheckRegion(grid.Region{X: -1, Z: 0, W: 10, H: 10}, 100))
	assertValidation(t, CheckRegion(grid.Region{X: 100, Z: 0, W: 10, H: 10}, 100))
	assertValidation(t, CheckRegion(grid.Region{X: 0, Z: 0, W: 0, H: 10}, 100))
}

func TestInfoCountsAndPercentages(t *testing.T) {
	sess := New(filepath.Join(t.TempDir(), "world.map"))
	grid.FillRect(sess.Grid, 0, 0, grid.Side, grid.Side/2, grid.Water)

	info := sess.Info()
	assert.Equal(t, grid.Side, info.Side)
	assert.Equal(t, grid.Side*grid.Side, info.Total)
	assert.Equal(t, info.Total/2, info.Counts[grid.Water])
	assert.InDelta(t, 50.0, info.Percent(grid.Water), 0.01)
	assert.InDelta(t, 50.0, info.Percent(grid.Grass), 0.01)
	assert.Zero(t, info.Percent(grid.Rock))
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "0", GroupDigits(0))
	assert.Equal(t, "999", GroupDigits(999))
	assert.Equal(t, "1,000", GroupDigits(1000))
	assert.Equal(t, "16,777,216", GroupDigits(16777216))
	assert.Equal(t, "-12,345", GroupDigits(-12345))
}

func assertValidation(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve), "expected *ValidationError, got %v", err)
}
