package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/mvail/paretoscope/internal/dataset"
)

// WriteCSV writes the merged points of a generation as file,x,y rows,
// in series order.
func WriteCSV(w io.Writer, series []dataset.Series) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"file", "x", "y"}); err != nil {
		return err
	}
	for _, s := range series {
		for i := range s.X {
			row := []string{
				s.Name,
				strconv.FormatFloat(s.X[i], 'f', 6, 64),
				strconv.FormatFloat(s.Y[i], 'f', 6, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// SeriesData is one file's points in the JSON export.
type SeriesData struct {
	File   string       `json:"file"`
	Points [][2]float64 `json:"points"`
}

// GenerationData is the JSON export of one generation.
type GenerationData struct {
	Generation int          `json:"generation"`
	Files      int          `json:"files"`
	Points     int          `json:"points"`
	Series     []SeriesData `json:"series"`
}

// WriteJSON writes one generation's series as indented JSON.
func WriteJSON(w io.Writer, gen int, series []dataset.Series) error {
	data := GenerationData{
		Generation: gen,
		Files:      len(series),
		Points:     dataset.PointCount(series),
		Series:     make([]SeriesData, 0, len(series)),
	}
	for _, s := range series {
		sd := SeriesData{File: s.Name, Points: make([][2]float64, s.Len())}
		for i := range s.X {
			sd.Points[i] = [2]float64{s.X[i], s.Y[i]}
		}
		data.Series = append(data.Series, sd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
