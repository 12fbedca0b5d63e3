package registry

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("0 0\n"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestScanMatchesPatternOnly(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	writeFiles(t, dir,
		"pareto_0_0.dat",
		"pareto_0_1.dat",
		"pareto_12_3.dat",
		"pareto_x_0.dat",   // non-numeric generation
		"pareto_0_0.dat~",  // trailing junk
		"stats.csv",        // unrelated run output
		"front_0_0.dat",    // wrong prefix
		"pareto_1.dat",     // missing id group
	)

	r, err := Scan(dir)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(r.Generations()).To(Equal([]int{0, 12}))
	g.Expect(r.Files(0)).To(Equal([]string{"pareto_0_0.dat", "pareto_0_1.dat"}))
	g.Expect(r.Files(12)).To(Equal([]string{"pareto_12_3.dat"}))
	g.Expect(r.FileCount()).To(Equal(3))
}

func TestScanSortsLexicographically(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	// Deliberately created out of order; lexicographic sort means
	// pareto_3_10.dat precedes pareto_3_2.dat.
	writeFiles(t, dir, "pareto_3_2.dat", "pareto_3_10.dat", "pareto_3_0.dat")

	r, err := Scan(dir)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(r.Files(3)).To(Equal([]string{"pareto_3_0.dat", "pareto_3_10.dat", "pareto_3_2.dat"}))
}

func TestScanEmptyDir(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()

	r, err := Scan(dir)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(r.Len()).To(BeZero())
	g.Expect(r.Has(0)).To(BeFalse())
	g.Expect(r.Files(0)).To(BeNil())
	g.Expect(r.MaxGeneration()).To(Equal(-1))
}

func TestScanMissingDir(t *testing.T) {
	g := NewWithT(t)
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	g.Expect(err).To(HaveOccurred())
}

func TestScanSkipsDirectories(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "pareto_0_0.dat"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFiles(t, dir, "pareto_1_0.dat")

	r, err := Scan(dir)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(r.Generations()).To(Equal([]int{1}))
}

func TestScanPatternBadRegexp(t *testing.T) {
	g := NewWithT(t)
	_, err := ScanPattern(t.TempDir(), "(")
	g.Expect(err).To(HaveOccurred())
}

func TestMaxGeneration(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	writeFiles(t, dir, "pareto_0_0.dat", "pareto_7_0.dat", "pareto_3_1.dat")

	r, err := Scan(dir)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(r.MaxGeneration()).To(Equal(7))
}
