package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-features/internal/errors"
)

// ScanFEN calls fn for every position line of r. Blank lines and lines
// starting with '#' are skipped. A line holds either a six-field FEN or a
// four-field EPD position followed by operations, as in
// `... w KQkq - ce 30; id "x";`. A FEN may carry operations after a ';'.
// A "ce <centipawns>" operation sets the record's Eval. EPD positions take
// their clocks from "hmvc" and "fmvn" operations, defaulting to 0 and 1.
func ScanFEN(r io.Reader, name string, fn HandlerFunc) error {
	reader := bufio.NewReader(r)
	lineNum := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrapf(err, "reading %s", name)
		}
		if line == "" && err == io.EOF {
			return nil
		}
		lineNum++

		text := strings.TrimSpace(line)
		if text != "" && !strings.HasPrefix(text, "#") {
			if herr := fn(parseFENLine(text, name, lineNum)); herr != nil {
				return herr
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

// parseFENLine splits a line into its position and operations.
func parseFENLine(text, name string, lineNum int) Record {
	rec := Record{Source: name, Number: lineNum}

	fields, ops := splitPosition(text)
	epd := len(fields) == 4
	if epd {
		fields = append(fields, "0", "1")
	}
	rec.FEN = strings.Join(fields, " ")

	for _, op := range strings.Split(ops, ";") {
		opcode, operand, _ := strings.Cut(strings.TrimSpace(op), " ")
		operand = strings.TrimSpace(operand)
		switch {
		case opcode == "ce":
			cp, err := strconv.ParseFloat(operand, 64)
			if err != nil {
				rec.Err = operandError(text, name, lineNum, operand, "centipawn value")
				return rec
			}
			rec.Eval = &cp
		case epd && (opcode == "hmvc" || opcode == "fmvn"):
			if _, err := strconv.Atoi(operand); err != nil {
				rec.Err = operandError(text, name, lineNum, operand, "move count")
				return rec
			}
			if opcode == "hmvc" {
				fields[4] = operand
			} else {
				fields[5] = operand
			}
			rec.FEN = strings.Join(fields, " ")
		}
	}
	return rec
}

// splitPosition returns the position fields of a FEN or EPD line and the
// text of its operations. An EPD position has four fields followed directly
// by operations; a FEN has two more numeric clock fields. Either form may
// also separate its operations with a ';'.
func splitPosition(text string) ([]string, string) {
	var fields []string
	rest := text
	for len(fields) < 6 {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" || rest[0] == ';' {
			break
		}
		end := strings.IndexAny(rest, " \t;")
		if end < 0 {
			end = len(rest)
		}
		field := rest[:end]
		if len(fields) >= 4 {
			if _, err := strconv.Atoi(field); err != nil {
				break
			}
		}
		fields = append(fields, field)
		rest = rest[end:]
	}
	rest = strings.TrimLeft(rest, " \t")
	return fields, strings.TrimPrefix(rest, ";")
}

// operandError reports an operation whose operand does not parse.
func operandError(text, name string, lineNum int, operand, expected string) *errors.ParseError {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		File:     name,
		Line:     lineNum,
		Column:   strings.Index(text, operand) + 1,
		Expected: expected,
		Got:      strconv.Quote(operand),
	}
}
