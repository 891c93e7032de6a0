// Package export writes a computed series to interchange formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/full2null/fallingsimulator/internal/sim"
)

// WriteCSV writes the series as time,value rows with a header naming
// the plotted quantity.
func WriteCSV(w io.Writer, s *sim.Series, mode sim.Mode) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"time", string(mode)}); err != nil {
		return err
	}
	for i := range s.Times {
		row := []string{
			strconv.FormatFloat(s.Times[i], 'f', 6, 64),
			strconv.FormatFloat(s.Values[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonSeries struct {
	Mode    sim.Mode  `json:"mode"`
	Samples int       `json:"samples"`
	Times   []float64 `json:"times"`
	Values  []float64 `json:"values"`
}

// WriteJSON writes the series as a single indented JSON document.
func WriteJSON(w io.Writer, s *sim.Series, mode sim.Mode) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonSeries{
		Mode:    mode,
		Samples: s.Len(),
		Times:   s.Times,
		Values:  s.Values,
	})
}
