package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-features/internal/config"
	"github.com/lgbarn/chess-features/internal/features"
)

// CSVWriter writes a header row followed by one row per record. Fixed
// vectors take one column per element; per-piece lists are space-joined
// into a single column.
type CSVWriter struct {
	w           *csv.Writer
	cfg         *config.Config
	wroteHeader bool
}

// NewCSVWriter creates a new CSV writer.
func NewCSVWriter(w io.Writer, cfg *config.Config) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w), cfg: cfg}
}

// Header returns the column names for vectors shaped like fields.
func (cw *CSVWriter) Header(fields []features.Field) []string {
	header := []string{"source", "record", "ply", "colour"}
	if cw.cfg.Output.IncludeFEN {
		header = append(header, "fen")
	}
	header = append(header, "eval", "win_probability")

	for _, f := range fields {
		if !f.Fixed || len(f.Values) == 1 {
			header = append(header, f.Name)
			continue
		}
		for i := range f.Values {
			header = append(header, fmt.Sprintf("%s_%d", f.Name, i))
		}
	}
	return header
}

// WriteRecord writes rec as one row, preceded by the header on first use.
func (cw *CSVWriter) WriteRecord(rec *Record) error {
	fields := rec.Features.Fields()
	if !cw.wroteHeader {
		if err := cw.w.Write(cw.Header(fields)); err != nil {
			return err
		}
		cw.wroteHeader = true
	}

	row := []string{rec.Source, strconv.Itoa(rec.Number), strconv.Itoa(rec.Ply), rec.colourName()}
	if cw.cfg.Output.IncludeFEN {
		row = append(row, rec.FEN)
	}
	row = append(row, formatFloat(rec.Eval), formatFloat(rec.WinProbability()))

	for _, f := range fields {
		if f.Fixed {
			for _, v := range f.Values {
				row = append(row, strconv.Itoa(v))
			}
			continue
		}
		row = append(row, joinInts(f.Values))
	}
	return cw.w.Write(row)
}

// Flush flushes buffered rows.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

// Close flushes the CSV writer.
func (cw *CSVWriter) Close() error {
	return cw.Flush()
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
