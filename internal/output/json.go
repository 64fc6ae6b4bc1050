package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-features/internal/config"
	"github.com/lgbarn/chess-features/internal/features"
)

// JSONRecord is the JSON form of a Record.
type JSONRecord struct {
	Source         string                  `json:"source"`
	Record         int                     `json:"record"`
	Ply            int                     `json:"ply"`
	Colour         string                  `json:"colour"`
	FEN            string                  `json:"fen,omitempty"`
	Eval           *float64                `json:"eval,omitempty"`
	WinProbability *float64                `json:"win_probability,omitempty"`
	Features       *features.FeatureVector `json:"features"`
}

// RecordToJSON converts a record to its JSON form.
func RecordToJSON(rec *Record, cfg *config.Config) *JSONRecord {
	jr := &JSONRecord{
		Source:         rec.Source,
		Record:         rec.Number,
		Ply:            rec.Ply,
		Colour:         rec.colourName(),
		Eval:           rec.Eval,
		WinProbability: rec.WinProbability(),
		Features:       rec.Features,
	}
	if cfg.Output.IncludeFEN {
		jr.FEN = rec.FEN
	}
	return jr
}

// JSONWriter writes one JSON object per record, one per line unless
// indentation is enabled.
type JSONWriter struct {
	enc *json.Encoder
	cfg *config.Config
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	enc := json.NewEncoder(w)
	if cfg.Output.Indent {
		enc.SetIndent("", "  ")
	}
	return &JSONWriter{enc: enc, cfg: cfg}
}

// WriteRecord encodes rec immediately.
func (jw *JSONWriter) WriteRecord(rec *Record) error {
	return jw.enc.Encode(RecordToJSON(rec, jw.cfg))
}

// Flush is a no-op; records are written as they arrive.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return nil
}
