// Package front computes quality metrics for 2-D Pareto fronts.
//
// All metrics use the minimization convention of the optimizer that
// writes the data: point a dominates point b when a is no worse in
// both objectives and strictly better in at least one.
package front

import (
	"math"
	"sort"

	"github.com/mvail/paretoscope/internal/dataset"
)

// Point is one objective-space sample.
type Point struct {
	X, Y float64
}

// Merge flattens the series of a generation into one point list,
// preserving series order.
func Merge(series []dataset.Series) []Point {
	points := make([]Point, 0, dataset.PointCount(series))
	for _, s := range series {
		for i := range s.X {
			points = append(points, Point{s.X[i], s.Y[i]})
		}
	}
	return points
}

// Dominates reports whether a dominates b (minimization).
func Dominates(a, b Point) bool {
	if a.X > b.X || a.Y > b.Y {
		return false
	}
	return a.X < b.X || a.Y < b.Y
}

// Nondominated filters points down to the non-dominated subset,
// preserving input order. Duplicates of a kept point are kept.
func Nondominated(points []Point) []Point {
	kept := make([]Point, 0, len(points))
	for i, p := range points {
		dominated := false
		for j, q := range points {
			if i == j {
				continue
			}
			if Dominates(q, p) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, p)
		}
	}
	return kept
}

// Hypervolume2D returns the area dominated by the front and bounded by
// ref. Points not strictly better than ref in both objectives
// contribute nothing. Returns 0 for an empty front.
func Hypervolume2D(points []Point, ref Point) float64 {
	clean := Nondominated(points)
	inside := clean[:0:0]
	for _, p := range clean {
		if p.X < ref.X && p.Y < ref.Y {
			inside = append(inside, p)
		}
	}
	if len(inside) == 0 {
		return 0
	}
	sort.Slice(inside, func(i, j int) bool {
		if inside[i].X == inside[j].X {
			return inside[i].Y < inside[j].Y
		}
		return inside[i].X < inside[j].X
	})

	hv := 0.0
	for i, p := range inside {
		nextX := ref.X
		if i+1 < len(inside) {
			nextX = inside[i+1].X
		}
		hv += (nextX - p.X) * (ref.Y - p.Y)
	}
	return hv
}

// Spacing is Schott's uniformity metric: the standard deviation of the
// nearest-neighbor distances (manhattan) along the front. 0 means
// perfectly even spacing. Fronts with fewer than 2 points return 0.
func Spacing(points []Point) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	dists := make([]float64, n)
	for i := range points {
		min := math.Inf(1)
		for j := range points {
			if i == j {
				continue
			}
			d := math.Abs(points[i].X-points[j].X) + math.Abs(points[i].Y-points[j].Y)
			if d < min {
				min = d
			}
		}
		dists[i] = min
	}
	mean := 0.0
	for _, d := range dists {
		mean += d
	}
	mean /= float64(n)
	variance := 0.0
	for _, d := range dists {
		variance += (d - mean) * (d - mean)
	}
	return math.Sqrt(variance / float64(n-1))
}

// Summary holds per-axis descriptive statistics for one generation.
type Summary struct {
	Count        int
	MinX, MaxX   float64
	MinY, MaxY   float64
	MeanX, MeanY float64
}

// Summarize computes a Summary over points. An empty input returns a
// zero Summary.
func Summarize(points []Point) Summary {
	if len(points) == 0 {
		return Summary{}
	}
	s := Summary{
		Count: len(points),
		MinX:  points[0].X, MaxX: points[0].X,
		MinY: points[0].Y, MaxY: points[0].Y,
	}
	for _, p := range points {
		if p.X < s.MinX {
			s.MinX = p.X
		}
		if p.X > s.MaxX {
			s.MaxX = p.X
		}
		if p.Y < s.MinY {
			s.MinY = p.Y
		}
		if p.Y > s.MaxY {
			s.MaxY = p.Y
		}
		s.MeanX += p.X
		s.MeanY += p.Y
	}
	s.MeanX /= float64(s.Count)
	s.MeanY /= float64(s.Count)
	return s
}
