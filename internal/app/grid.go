package app

// Cell is one selectable slot in the painted grid. For a journey spanning
// several slots only the first covered cell carries the journey name; later
// covered cells are booked but blank.
type Cell struct {
	Day     string `json:"day"`
	Time    string `json:"time"`
	Booked  bool   `json:"booked"`
	Label   string `json:"label,omitempty"`
	EventID string `json:"event_id,omitempty"`
}

// DayColumn is one weekday's worth of cells, in chronological order.
type DayColumn struct {
	Day   string `json:"day"`
	Cells []Cell `json:"cells"`
}

// Grid is the full painted week.
type Grid struct {
	Days    []string    `json:"days"`
	Times   []string    `json:"times"`
	Columns []DayColumn `json:"columns"`
}

// BuildGrid paints the fixed day-by-time grid from scratch for the given
// events. It derives all booked state from the event list alone, so repeated
// calls with the same list produce the same grid.
func BuildGrid(events []Event) Grid {
	grid := Grid{Days: Days, Times: Times, Columns: make([]DayColumn, 0, len(Days))}

	for _, day := range Days {
		col := DayColumn{Day: day, Cells: make([]Cell, 0, len(Times))}
		labelled := map[*Event]bool{}
		for _, t := range Times {
			cell := Cell{Day: day, Time: t}
			if ev := FindEventCovering(day, t, events); ev != nil {
				cell.Booked = true
				cell.EventID = ev.ID
				if !labelled[ev] {
					cell.Label = ev.Name
					labelled[ev] = true
				}
			}
			col.Cells = append(col.Cells, cell)
		}
		grid.Columns = append(grid.Columns, col)
	}
	return grid
}
