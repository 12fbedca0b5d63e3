package front_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mvail/paretoscope/internal/dataset"
	"github.com/mvail/paretoscope/internal/front"
)

var _ = Describe("Merge", func() {
	It("flattens series in order", func() {
		series := []dataset.Series{
			{Name: "pareto_0_0.dat", X: []float64{1, 3}, Y: []float64{2, 4}},
			{Name: "pareto_0_1.dat", X: []float64{5}, Y: []float64{6}},
		}
		Expect(front.Merge(series)).To(Equal([]front.Point{{1, 2}, {3, 4}, {5, 6}}))
	})

	It("handles no series", func() {
		Expect(front.Merge(nil)).To(BeEmpty())
	})
})

var _ = Describe("Dominates", func() {
	It("requires no-worse in both and better in one", func() {
		Expect(front.Dominates(front.Point{1, 1}, front.Point{2, 2})).To(BeTrue())
		Expect(front.Dominates(front.Point{1, 2}, front.Point{1, 3})).To(BeTrue())
		Expect(front.Dominates(front.Point{1, 1}, front.Point{1, 1})).To(BeFalse())
		Expect(front.Dominates(front.Point{1, 3}, front.Point{2, 2})).To(BeFalse())
		Expect(front.Dominates(front.Point{2, 2}, front.Point{1, 1})).To(BeFalse())
	})
})

var _ = Describe("Nondominated", func() {
	It("drops dominated points and keeps order", func() {
		points := []front.Point{{1, 4}, {2, 5}, {3, 1}, {2, 2}}
		Expect(front.Nondominated(points)).To(Equal([]front.Point{{1, 4}, {3, 1}, {2, 2}}))
	})

	It("keeps an already clean front intact", func() {
		points := []front.Point{{1, 3}, {2, 2}, {3, 1}}
		Expect(front.Nondominated(points)).To(Equal(points))
	})
})

var _ = Describe("Hypervolume2D", func() {
	ref := front.Point{4, 4}

	It("matches the hand-computed area for a two-point front", func() {
		// Sorted by x: (1,2) then (2,1); slabs (2-1)*(4-2) + (4-2)*(4-1).
		points := []front.Point{{1, 2}, {2, 1}}
		Expect(front.Hypervolume2D(points, ref)).To(BeNumerically("~", 1*2+2*3, 1e-12))
	})

	It("ignores points outside the reference box", func() {
		points := []front.Point{{1, 2}, {9, 0.5}}
		Expect(front.Hypervolume2D(points, ref)).To(BeNumerically("~", (4-1)*(4-2), 1e-12))
	})

	It("is unchanged by dominated points", func() {
		clean := []front.Point{{1, 2}, {2, 1}}
		noisy := append([]front.Point{{3, 3}, {2, 2}}, clean...)
		Expect(front.Hypervolume2D(noisy, ref)).To(Equal(front.Hypervolume2D(clean, ref)))
	})

	It("returns zero for an empty front", func() {
		Expect(front.Hypervolume2D(nil, ref)).To(BeZero())
	})
})

var _ = Describe("Spacing", func() {
	It("is zero for evenly spaced fronts", func() {
		points := []front.Point{{0, 2}, {1, 1}, {2, 0}}
		Expect(front.Spacing(points)).To(BeNumerically("~", 0, 1e-12))
	})

	It("grows with unevenness", func() {
		even := []front.Point{{0, 3}, {1, 2}, {2, 1}, {3, 0}}
		uneven := []front.Point{{0, 3}, {0.1, 2.9}, {2, 1}, {3, 0}}
		Expect(front.Spacing(uneven)).To(BeNumerically(">", front.Spacing(even)))
	})

	It("is zero below two points", func() {
		Expect(front.Spacing([]front.Point{{1, 1}})).To(BeZero())
		Expect(front.Spacing(nil)).To(BeZero())
	})
})

var _ = Describe("Summarize", func() {
	It("computes per-axis ranges and means", func() {
		s := front.Summarize([]front.Point{{1, 2}, {3, 4}, {5, 6}})
		Expect(s.Count).To(Equal(3))
		Expect(s.MinX).To(Equal(1.0))
		Expect(s.MaxX).To(Equal(5.0))
		Expect(s.MinY).To(Equal(2.0))
		Expect(s.MaxY).To(Equal(6.0))
		Expect(s.MeanX).To(BeNumerically("~", 3.0, 1e-12))
		Expect(s.MeanY).To(BeNumerically("~", 4.0, 1e-12))
	})

	It("returns a zero summary for no points", func() {
		Expect(front.Summarize(nil)).To(Equal(front.Summary{}))
	})
})
