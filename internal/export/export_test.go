package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mvail/paretoscope/internal/dataset"
)

func testSeries() []dataset.Series {
	return []dataset.Series{
		{Name: "pareto_0_0.dat", X: []float64{1, 3}, Y: []float64{2, 4}},
		{Name: "pareto_0_1.dat", X: []float64{5}, Y: []float64{6}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testSeries()); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "file,x,y" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "pareto_0_0.dat,1.000000,2.000000" {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if lines[3] != "pareto_0_1.dat,5.000000,6.000000" {
		t.Errorf("rows must follow series order, got %q", lines[3])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, 7, testSeries()); err != nil {
		t.Fatalf("write json: %v", err)
	}

	var data GenerationData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Generation != 7 || data.Files != 2 || data.Points != 3 {
		t.Errorf("unexpected header fields: %+v", data)
	}
	if data.Series[0].Points[1] != [2]float64{3, 4} {
		t.Errorf("unexpected point %v", data.Series[0].Points[1])
	}
}

func TestScatterSVG(t *testing.T) {
	svg := ScatterSVG(testSeries(), 400, 300)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected complete SVG document")
	}
	if n := strings.Count(svg, "<circle"); n != 3 {
		t.Errorf("expected one circle per point, got %d", n)
	}
	if n := strings.Count(svg, "<g fill="); n != 2 {
		t.Errorf("expected one group per series, got %d", n)
	}
}

func TestScatterSVGEmpty(t *testing.T) {
	if svg := ScatterSVG(nil, 400, 300); svg != "" {
		t.Error("expected empty output for no points")
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "front.png")
	if err := WritePNG(path, 0, testSeries()); err != nil {
		t.Fatalf("write png: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty png")
	}
}
