package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"life-ca/pkg/core"
	"life-ca/pkg/life"
)

// Snapshot captures the grid's size, generation, rule and active cells.
func Snapshot(g *life.Grid) Record {
	return Record{
		Cols:       g.Cols(),
		Rows:       g.Rows(),
		Generation: g.Generation(),
		Active:     g.Active(),
		Rule:       g.RuleName(),
	}
}

// Restore validates rec and builds the grid it describes. The record's rule is
// used when present, otherwise fallbackRule, otherwise the standard rule.
func Restore(rec Record, fallbackRule string) (*life.Grid, error) {
	if err := life.CheckDimensions(rec.Rows, rec.Cols); err != nil {
		return nil, fmt.Errorf("size [%d, %d]: %w", rec.Cols, rec.Rows, err)
	}
	if rec.Generation < 0 {
		return nil, fmt.Errorf("%w: step %d", life.ErrInvalidGeneration, rec.Generation)
	}
	size := rec.Size()
	seen := make(map[core.Pos]struct{}, len(rec.Active))
	for _, p := range rec.Active {
		if !size.Contains(p) {
			return nil, fmt.Errorf("%w: %v outside size [%d, %d]", life.ErrInvalidCoordinate, p, rec.Cols, rec.Rows)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateCoordinate, p)
		}
		seen[p] = struct{}{}
	}
	rule := rec.Rule
	if rule == "" {
		rule = fallbackRule
	}
	return life.NewWithConfig(life.Config{
		Rows:       rec.Rows,
		Cols:       rec.Cols,
		Rule:       rule,
		Generation: rec.Generation,
		Active:     rec.Active,
	})
}

// Encode writes rec as JSON.
func Encode(w io.Writer, rec Record) error {
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		return ioErr("encode record", err)
	}
	return nil
}

// Decode reads one JSON record.
func Decode(r io.Reader) (Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		var syntax *json.SyntaxError
		var typ *json.UnmarshalTypeError
		switch {
		case errors.Is(err, ErrMalformed), errors.Is(err, life.ErrInvalidCoordinate), errors.Is(err, life.ErrInvalidDimensions):
			return Record{}, err
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF), errors.As(err, &syntax), errors.As(err, &typ):
			return Record{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return Record{}, ioErr("decode record", err)
	}
	return rec, nil
}
