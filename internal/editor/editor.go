package editor

import (
	"fmt"
	"os"
	"strconv"

	"maped/internal/grid"
)

// ValidationError reports command parameters rejected before they reach
// the grid primitives. The primitives themselves clamp or ignore bad
// coordinates; commands that want strict input checking validate up front.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validatef(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Session owns one map loaded into memory together with its file path.
// Load and save are whole-file operations; the grid itself never touches
// the filesystem.
type Session struct {
	Path string
	Grid *grid.Grid
}

// New returns a fresh all-grass session for path. Nothing is written
// until Save.
func New(path string) *Session {
	return &Session{Path: path, Grid: grid.New(grid.Side)}
}

// Load reads the whole map file at path into a session.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	g, err := grid.Decode(grid.Side, data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return &Session{Path: path, Grid: g}, nil
}

// Save writes the grid back to the session's file in one bulk write.
func (s *Session) Save() error {
	if err := os.WriteFile(s.Path, s.Grid.Encode(), 0o644); err != nil {
		return fmt.Errorf("write map: %w", err)
	}
	return nil
}

// ParseTile converts a command argument into a known tile id.
func ParseTile(arg string) (grid.Tile, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, validatef("tile type %q is not a number", arg)
	}
	if v < 0 || v > int(grid.MaxTile) {
		return 0, validatef("tile type %d out of range 0-%d", v, grid.MaxTile)
	}
	return grid.Tile(v), nil
}

// CheckDensity rejects noise densities outside [0, 1].
func CheckDensity(d float64) error {
	if d < 0 || d > 1 {
		return validatef("density %g must be between 0.0 and 1.0", d)
	}
	return nil
}

// CheckScale rejects non-positive pixel scales.
func CheckScale(scale int) error {
	if scale < 1 {
		return validatef("scale %d must be at least 1", scale)
	}
	return nil
}

// CheckRegion rejects regions whose origin lies outside the map or whose
// size is not positive. The renderer would clamp these silently; commands
// treat them as caller mistakes instead.
func CheckRegion(r grid.Region, side int) error {
	if r.X < 0 || r.Z < 0 {
		return validatef("region origin (%d,%d) must be non-negative", r.X, r.Z)
	}
	if r.X >= side || r.Z >= side {
		return validatef("region origin (%d,%d) outside map bounds 0-%d", r.X, r.Z, side-1)
	}
	if r.W <= 0 || r.H <= 0 {
		return validatef("region size %dx%d must be positive", r.W, r.H)
	}
	return nil
}
