// Package registry indexes Pareto-front data files by generation.
//
// An evolutionary run writes one file per front fragment, named
// pareto_<generation>_<id>.dat. The registry scans a directory once,
// groups matching file names by the generation number embedded in the
// name, and sorts each group lexicographically so that draw order is
// repeatable across runs. Entries that do not match the pattern are
// ignored without error.
package registry

import (
	"os"
	"regexp"
	"sort"
	"strconv"
)

// DefaultPattern matches the file names written by the optimizer.
// The first capture group is the generation, the second the fragment id.
const DefaultPattern = `^pareto_(\d+)_(\d+)\.dat$`

// Registry maps generation numbers to their sorted file name lists.
// It is immutable after Scan builds it.
type Registry struct {
	dir   string
	files map[int][]string
}

// Scan lists dir and builds a registry from the entries matching
// DefaultPattern. A directory with no matching entries yields an
// empty registry, not an error.
func Scan(dir string) (*Registry, error) {
	return ScanPattern(dir, DefaultPattern)
}

// ScanPattern is Scan with a caller-supplied pattern. The pattern must
// have the generation number as its first capture group.
func ScanPattern(dir, pattern string) (*Registry, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	r := &Registry{dir: dir, files: make(map[int][]string)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := re.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		gen, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		r.files[gen] = append(r.files[gen], entry.Name())
	}

	for gen := range r.files {
		sort.Strings(r.files[gen])
	}

	return r, nil
}

// Dir returns the directory the registry was built from.
func (r *Registry) Dir() string { return r.dir }

// Files returns the sorted file names for gen. An absent generation
// returns nil.
func (r *Registry) Files(gen int) []string { return r.files[gen] }

// Has reports whether gen has at least one file.
func (r *Registry) Has(gen int) bool { return len(r.files[gen]) > 0 }

// Generations returns all generation numbers in ascending order.
func (r *Registry) Generations() []int {
	gens := make([]int, 0, len(r.files))
	for gen := range r.files {
		gens = append(gens, gen)
	}
	sort.Ints(gens)
	return gens
}

// MaxGeneration returns the highest generation seen, or -1 for an
// empty registry.
func (r *Registry) MaxGeneration() int {
	max := -1
	for gen := range r.files {
		if gen > max {
			max = gen
		}
	}
	return max
}

// Len returns the number of generations.
func (r *Registry) Len() int { return len(r.files) }

// FileCount returns the total number of indexed files.
func (r *Registry) FileCount() int {
	n := 0
	for _, fs := range r.files {
		n += len(fs)
	}
	return n
}
