package moontable

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Rejected is a row removed by a cleaning step, kept so the decision to
// discard is auditable instead of silent.
type Rejected struct {
	Key    Key
	Value  string
	Reason string
}

// CleanYears removes rows whose discovery year cannot be parsed as an
// integer (the source list contains "Prehistoric" and "1975/2000"),
// normalizes the survivors and sorts them most recent first. The
// rejected rows are returned alongside the cleaned table.
func CleanYears(t Table, col string) (Table, []Rejected, error) {
	idx := t.ColumnIndex(col)
	if idx < 0 {
		return Table{}, nil, fmt.Errorf("column %q does not exist", col)
	}

	type yearRow struct {
		row  Row
		year int
	}

	var rejected []Rejected
	var kept []yearRow

	for _, r := range t.Rows {
		value := strings.TrimSpace(r.Cells[idx])
		year, err := strconv.Atoi(value)
		if err != nil {
			rejected = append(rejected, Rejected{
				Key:    r.Key,
				Value:  value,
				Reason: "discovery year is not an integer",
			})
			continue
		}

		cells := make([]string, len(r.Cells))
		copy(cells, r.Cells)
		cells[idx] = strconv.Itoa(year)
		kept = append(kept, yearRow{row: Row{Key: r.Key, Cells: cells}, year: year})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].year > kept[j].year
	})

	out := Table{Columns: t.Columns, Keyed: t.Keyed}
	for _, kr := range kept {
		out.Rows = append(out.Rows, kr.row)
	}
	return out, rejected, nil
}

// BinUnknown labels years falling outside the configured range.
const BinUnknown = "unknown"

// BinConfig partitions [Min, Max] into Count equal-width half-open
// intervals. The width is derived from the bounds rather than
// hardcoded.
type BinConfig struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Count int `json:"count"`
}

// DefaultBins covers telescopic observation, 1590 to 2020, in ten eras
// of 43 years.
func DefaultBins() BinConfig {
	return BinConfig{Min: 1590, Max: 2020, Count: 10}
}

func (c BinConfig) validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("bin count must be positive, got %d", c.Count)
	}
	if c.Max <= c.Min {
		return fmt.Errorf("bin range (%d, %d] is empty", c.Min, c.Max)
	}
	return nil
}

// Label returns the half-open interval "(lo, hi]" containing the year,
// or BinUnknown if the year falls outside (Min, Max]. Min itself is on
// the open edge of the first interval.
func (c BinConfig) Label(year int) string {
	y := float64(year)
	lo := float64(c.Min)
	hi := float64(c.Max)
	if y <= lo || y > hi {
		return BinUnknown
	}

	width := (hi - lo) / float64(c.Count)
	i := int(math.Ceil((y-lo)/width)) - 1
	if i < 0 {
		i = 0
	}
	if i >= c.Count {
		i = c.Count - 1
	}

	return fmt.Sprintf(
		"(%s, %s]",
		formatEdge(lo+float64(i)*width),
		formatEdge(lo+float64(i+1)*width),
	)
}

// Labels returns every interval label in ascending order.
func (c BinConfig) Labels() []string {
	lo := float64(c.Min)
	width := (float64(c.Max) - lo) / float64(c.Count)
	out := make([]string, c.Count)
	for i := 0; i < c.Count; i++ {
		out[i] = fmt.Sprintf(
			"(%s, %s]",
			formatEdge(lo+float64(i)*width),
			formatEdge(lo+float64(i+1)*width),
		)
	}
	return out
}

func formatEdge(edge float64) string {
	return strconv.FormatFloat(edge, 'g', -1, 64)
}

// BinYears derives a bin-label column from an integer year column.
// Rows whose year is missing or out of range get the explicit
// BinUnknown label rather than an undefined assignment.
func BinYears(t Table, yearCol, binCol string, cfg BinConfig) (Table, error) {
	if err := cfg.validate(); err != nil {
		return Table{}, err
	}
	idx := t.ColumnIndex(yearCol)
	if idx < 0 {
		return Table{}, fmt.Errorf("column %q does not exist", yearCol)
	}

	labels := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		year, err := strconv.Atoi(r.Cells[idx])
		if err != nil {
			labels[i] = BinUnknown
			continue
		}
		labels[i] = cfg.Label(year)
	}
	return t.appendColumn(binCol, labels)
}
