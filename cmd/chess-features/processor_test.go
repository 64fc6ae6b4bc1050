package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chess-features/internal/config"
	chesserrors "github.com/lgbarn/chess-features/internal/errors"
	"github.com/lgbarn/chess-features/internal/output"
	"github.com/lgbarn/chess-features/internal/testutil"
)

const (
	startFEN   = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	afterE4FEN = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	bareKings  = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	noBlackKng = "8/8/8/8/8/8/8/4K3 w - - 0 1"
)

// runProcessor processes text as name and returns the decoded JSON records.
func runProcessor(t *testing.T, cfg *config.Config, name, text string) ([]map[string]interface{}, *Processor, error) {
	t.Helper()
	var out bytes.Buffer
	cfg.SetOutput(&out)
	writer := output.NewWriter(&out, cfg)
	proc := NewProcessor(cfg, writer)

	err := proc.ProcessInput(context.Background(), strings.NewReader(text), name)
	testutil.AssertNoError(t, writer.Close(), "closing writer")

	var records []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]interface{}
		if jerr := json.Unmarshal([]byte(line), &rec); jerr != nil {
			t.Fatalf("output line is not JSON: %v\n%s", jerr, line)
		}
		records = append(records, rec)
	}
	return records, proc, err
}

func testConfig(workers int) *config.Config {
	return config.NewConfigBuilder().
		WithWorkers(workers).
		WithVerbosity(0).
		WithLog(&bytes.Buffer{}).
		Build()
}

func TestProcessInput_FEN(t *testing.T) {
	text := strings.Join([]string{startFEN, afterE4FEN + " ; ce 40", bareKings}, "\n")
	records, proc, err := runProcessor(t, testConfig(4), "test.fen", text)
	testutil.AssertNoError(t, err)

	if len(records) != 6 {
		t.Fatalf("got %d records, want 6 (3 positions x 2 colours)", len(records))
	}
	for i, rec := range records {
		wantLine := float64(i/2 + 1)
		wantColour := []string{"white", "black"}[i%2]
		testutil.AssertEqual(t, rec["record"], wantLine, fmt.Sprintf("records[%d].record", i))
		testutil.AssertEqual(t, rec["colour"], wantColour, fmt.Sprintf("records[%d].colour", i))
	}
	testutil.AssertEqual(t, records[2]["eval"], 40.0)
	testutil.AssertNotNil(t, records[3]["win_probability"])
	testutil.AssertNil(t, records[0]["eval"])

	stats := proc.Stats()
	testutil.AssertEqual(t, stats, Stats{Positions: 3, Records: 6})
}

// TestProcessInput_OrderMatchesSequential verifies that many workers produce
// exactly the output of one.
func TestProcessInput_OrderMatchesSequential(t *testing.T) {
	fens := []string{startFEN, afterE4FEN, bareKings,
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, fens...)
	}
	text := strings.Join(lines, "\n")

	sequential, _, err := runProcessor(t, testConfig(1), "order.fen", text)
	testutil.AssertNoError(t, err)
	parallel, _, err := runProcessor(t, testConfig(8), "order.fen", text)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(parallel), 2*len(lines))
	testutil.AssertEqual(t, parallel, sequential)
}

func TestProcessInput_Duplicates(t *testing.T) {
	cfg := testConfig(2)
	cfg.Duplicate.Suppress = true
	proc := NewProcessor(cfg, nil)
	testutil.AssertNotNil(t, proc.detector)

	// Clocks differ but the positions are the same.
	text := strings.Join([]string{startFEN, bareKings, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 3 9"}, "\n")
	records, proc, err := runProcessor(t, cfg, "dups.fen", text)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(records), 4)
	testutil.AssertEqual(t, proc.Stats(), Stats{Positions: 3, Records: 4, Unique: 2, Duplicates: 1})
}

func TestProcessInput_InvalidStops(t *testing.T) {
	text := strings.Join([]string{startFEN, noBlackKng, bareKings}, "\n")
	records, _, err := runProcessor(t, testConfig(2), "bad.fen", text)

	var posErr *chesserrors.PositionError
	if !errors.As(err, &posErr) {
		t.Fatalf("ProcessInput() error = %v; want *PositionError", err)
	}
	testutil.AssertEqual(t, posErr.Record, 2)
	testutil.AssertEqual(t, posErr.File, "bad.fen")
	testutil.AssertErrorIs(t, err, chesserrors.ErrNoKing)

	// Records before the failure are still written, none after it.
	testutil.AssertEqual(t, len(records), 2)
}

func TestProcessInput_SkipInvalid(t *testing.T) {
	var log bytes.Buffer
	cfg := testConfig(2)
	cfg.Input.SkipInvalid = true
	cfg.Verbosity = 1
	cfg.LogFile = &log

	text := strings.Join([]string{startFEN, noBlackKng, "not a fen", startFEN + " ; ce abc", bareKings}, "\n")
	records, proc, err := runProcessor(t, cfg, "mixed.fen", text)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(records), 4)
	testutil.AssertEqual(t, records[2]["record"], 5.0)
	testutil.AssertEqual(t, proc.Stats().Skipped, 3)
	testutil.AssertContains(t, log.String(), "mixed.fen")
	testutil.AssertContains(t, log.String(), "no king")
}

func TestProcessInput_PGN(t *testing.T) {
	cfg := testConfig(3)
	cfg.Colours = config.WhiteOnly
	pgn := `[Event "Test"]
[Result "*"]

1. e4 e5 2. Nf3 *
`
	records, proc, err := runProcessor(t, cfg, "game.pgn", pgn)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(records), 4)
	testutil.AssertEqual(t, proc.Stats(), Stats{Positions: 4, Records: 4})
	for i, rec := range records {
		testutil.AssertEqual(t, rec["ply"], float64(i))
		testutil.AssertEqual(t, rec["record"], 1.0)
		testutil.AssertEqual(t, rec["colour"], "white")
	}
	testutil.AssertEqual(t, records[0]["fen"], startFEN)
}

func TestProcessInput_CSV(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(2)
	cfg.Output.Format = config.CSV
	writer := output.NewWriter(&out, cfg)
	proc := NewProcessor(cfg, writer)

	err := proc.ProcessInput(context.Background(), strings.NewReader(startFEN+"\n"+bareKings), "x.fen")
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, writer.Close())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	testutil.AssertEqual(t, len(lines), 5, "header plus 4 rows")
	testutil.AssertTrue(t, strings.HasPrefix(lines[0], "source,record,ply,colour,fen,eval,win_probability,"), "header prefix")
	testutil.AssertTrue(t, strings.HasPrefix(lines[1], "x.fen,1,0,white,"), "first row")
}

func TestProcessInput_Logging(t *testing.T) {
	var log bytes.Buffer
	cfg := testConfig(1)
	cfg.Verbosity = 2
	cfg.LogFile = &log

	_, _, err := runProcessor(t, cfg, "v.fen", startFEN)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, log.String(), "v.fen:1 ply 0: 2 record(s)")
	testutil.AssertContains(t, log.String(), "Processing v.fen with 1 worker(s)")
}

func TestProcessInput_PGNSkipInvalid(t *testing.T) {
	var log bytes.Buffer
	cfg := testConfig(2)
	cfg.Input.SkipInvalid = true
	cfg.Verbosity = 1
	cfg.LogFile = &log

	pgn := "[Event \"a\"]\n[Result \"*\"]\n\n1. d4 *\n\n[Event \"b\"]\n[Result \"*\"]\n\n1. c4 *\n"
	records, proc, err := runProcessor(t, cfg, "two.pgn", pgn)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(records), 8)
	testutil.AssertEqual(t, proc.Stats().Skipped, 0)
	testutil.AssertEqual(t, log.String(), "")
}
