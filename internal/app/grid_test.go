package app

import (
	"reflect"
	"testing"
)

func cellAt(t *testing.T, g Grid, day, timeLabel string) Cell {
	t.Helper()
	for _, col := range g.Columns {
		if col.Day != day {
			continue
		}
		for _, cell := range col.Cells {
			if cell.Time == timeLabel {
				return cell
			}
		}
	}
	t.Fatalf("no cell for %s %s", day, timeLabel)
	return Cell{}
}

func TestBuildGridPaintsSpan(t *testing.T) {
	events := []Event{
		{ID: "ev1", Day: "Monday", StartTime: "09:00", EndTime: "10:00", Name: "Site Visit"},
	}
	grid := BuildGrid(events)

	if len(grid.Columns) != 5 {
		t.Fatalf("expected 5 day columns, got %d", len(grid.Columns))
	}
	for _, col := range grid.Columns {
		if len(col.Cells) != 16 {
			t.Fatalf("day %s: expected 16 cells, got %d", col.Day, len(col.Cells))
		}
	}

	first := cellAt(t, grid, "Monday", "09:00")
	if !first.Booked || first.Label != "Site Visit" || first.EventID != "ev1" {
		t.Errorf("09:00 cell = %+v, want booked with label Site Visit", first)
	}

	// Later covered slots are booked but blank.
	second := cellAt(t, grid, "Monday", "09:30")
	if !second.Booked || second.Label != "" || second.EventID != "ev1" {
		t.Errorf("09:30 cell = %+v, want booked with blank label", second)
	}

	for _, timeLabel := range []string{"08:30", "10:00"} {
		cell := cellAt(t, grid, "Monday", timeLabel)
		if cell.Booked {
			t.Errorf("%s cell should be free, got %+v", timeLabel, cell)
		}
	}
	if cell := cellAt(t, grid, "Tuesday", "09:00"); cell.Booked {
		t.Errorf("Tuesday should be untouched, got %+v", cell)
	}
}

func TestBuildGridIdempotent(t *testing.T) {
	events := []Event{
		{ID: "ev1", Day: "Monday", StartTime: "09:00", EndTime: "10:00", Name: "Site Visit"},
		{ID: "ev2", Day: "Friday", StartTime: "15:30", EndTime: "16:00", Name: "Return"},
	}

	first := BuildGrid(events)
	second := BuildGrid(events)
	if !reflect.DeepEqual(first, second) {
		t.Error("repainting with an unchanged event list must produce an identical grid")
	}
}

func TestBuildGridEmpty(t *testing.T) {
	grid := BuildGrid(nil)
	for _, col := range grid.Columns {
		for _, cell := range col.Cells {
			if cell.Booked || cell.Label != "" {
				t.Fatalf("empty event list painted cell %+v", cell)
			}
		}
	}
}
