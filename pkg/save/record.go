// Package save converts grids to and from their persisted form and stores
// that form in a file or a SQLite database.
package save

import (
	"bytes"
	"encoding/json"
	"fmt"

	"life-ca/pkg/core"
	"life-ca/pkg/life"
)

// Record is the transportable state of a grid.
type Record struct {
	Cols       int
	Rows       int
	Generation int
	Active     []core.Pos
	// Rule names the variant the grid evolved under. Empty when unknown.
	Rule string
}

// Size returns the recorded dimensions.
func (r Record) Size() core.Size { return core.Size{W: r.Cols, H: r.Rows} }

type wireRecord struct {
	Size        []int             `json:"size"`
	Step        int               `json:"step"`
	ActiveCells []json.RawMessage `json:"active_cells"`
	Rule        string            `json:"rule,omitempty"`
}

// MarshalJSON writes {"size": [cols, rows], "step": n, "active_cells": [[x, y], ...]}.
func (r Record) MarshalJSON() ([]byte, error) {
	cells := make([][2]int, len(r.Active))
	for i, p := range r.Active {
		cells[i] = [2]int{p.X, p.Y}
	}
	return json.Marshal(struct {
		Size        [2]int   `json:"size"`
		Step        int      `json:"step"`
		ActiveCells [][2]int `json:"active_cells"`
		Rule        string   `json:"rule,omitempty"`
	}{
		Size:        [2]int{r.Cols, r.Rows},
		Step:        r.Generation,
		ActiveCells: cells,
		Rule:        r.Rule,
	})
}

// UnmarshalJSON reads the persisted form. Size and coordinate arity are checked
// here; bounds and duplicates are checked by Restore.
func (r *Record) UnmarshalJSON(data []byte) error {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(w.Size) != 2 {
		return fmt.Errorf("%w: size has %d values, want 2", life.ErrInvalidDimensions, len(w.Size))
	}
	active := make([]core.Pos, 0, len(w.ActiveCells))
	for i, raw := range w.ActiveCells {
		var pair []int
		if err := json.Unmarshal(raw, &pair); err != nil {
			return fmt.Errorf("%w: entry %d %s", life.ErrInvalidCoordinate, i, bytes.TrimSpace(raw))
		}
		ps, err := life.FromPairs([][]int{pair})
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		active = append(active, ps[0])
	}
	*r = Record{
		Cols:       w.Size[0],
		Rows:       w.Size[1],
		Generation: w.Step,
		Active:     active,
		Rule:       w.Rule,
	}
	return nil
}
