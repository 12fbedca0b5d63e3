// Package dataset loads Pareto-front point files.
//
// Each file holds rows of exactly two whitespace-separated numeric
// fields (x then y), no header. Parsing is strict: a malformed row is
// an error, never a skipped point, so a corrupt run directory fails
// loudly instead of rendering a partial front.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrColumnCount marks a row without exactly two fields.
	ErrColumnCount = errors.New("expected two columns")
	// ErrNotNumeric marks a field that does not parse as a float.
	ErrNotNumeric = errors.New("non-numeric field")
)

// Series is the point set of one Pareto file. X and Y always have the
// same length.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s.X) }

// Load reads one Pareto file. Blank lines are tolerated; anything else
// that is not a valid two-column row fails with the file name and line
// number wrapped in the error.
func Load(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, err
	}
	defer f.Close()

	s := Series{Name: filepath.Base(path)}
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return Series{}, fmt.Errorf("%s:%d: %w, got %d", s.Name, line, ErrColumnCount, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Series{}, fmt.Errorf("%s:%d: %w: %q", s.Name, line, ErrNotNumeric, fields[0])
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Series{}, fmt.Errorf("%s:%d: %w: %q", s.Name, line, ErrNotNumeric, fields[1])
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
	}
	if err := scanner.Err(); err != nil {
		return Series{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	return s, nil
}

// LoadAll loads the named files from dir in the given order, one
// series per file. The first failure aborts the load.
func LoadAll(dir string, names []string) ([]Series, error) {
	series := make([]Series, 0, len(names))
	for _, name := range names {
		s, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return series, nil
}

// PointCount sums the points across series.
func PointCount(series []Series) int {
	n := 0
	for _, s := range series {
		n += s.Len()
	}
	return n
}
