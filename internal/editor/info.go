package editor

import (
	"strconv"
	"strings"

	"maped/internal/grid"
)

// Info summarizes tile usage for one map.
type Info struct {
	Side   int
	Total  int
	Counts []int // cells per tile id, indexed by id
}

// Info tallies the session's grid.
func (s *Session) Info() Info {
	side := s.Grid.Side()
	return Info{
		Side:   side,
		Total:  side * side,
		Counts: s.Grid.Count(),
	}
}

// Percent returns the share of the map covered by tile id, in percent.
func (i Info) Percent(t grid.Tile) float64 {
	if i.Total == 0 || int(t) >= len(i.Counts) {
		return 0
	}
	return float64(i.Counts[t]) / float64(i.Total) * 100
}

// GroupDigits formats n with comma separators, e.g. 16777216 ->
// "16,777,216", for the info tables.
func GroupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var sb strings.Builder
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(s[i])
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}
