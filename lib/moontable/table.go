package moontable

import (
	"fmt"
	"slices"
	"strings"
)

// column names as they appear on the source page
const (
	ColParent         = "Parent"
	ColName           = "Name"
	ColNumeral        = "Numeral"
	ColDiscoveryYear  = "Discovery year"
	ColDiscoveredBy   = "Discovered by"
	ColMeanRadius     = "Mean radius (km)"
	ColNotes          = "Notes"
	ColSemiMajorAxis  = "Semi-major axis (km)"
	ColSiderealPeriod = "Sidereal period (d)"
	ColImage          = "Image"
	ColRefs           = "Ref(s)"
)

// renamed and derived column names
const (
	ColParentPlanet    = "Parent Planet"
	ColMoonName        = "Moon name"
	ColNumericMoonName = "Numeric moon name"
	ColMeanDistance    = "Mean distance(km)"
	ColOrbitalDays     = "Orbital period(days)"
	ColYearBin         = "Year bin"
	ColDistanceRank    = "Mean distance rank"
	ColOrbitalYears    = "Orbital period(yrs)"
)

// Key identifies a single moon. Numeral designations repeat across
// parent planets so neither field is unique on its own.
type Key struct {
	Numeral string
	Name    string
}

func (k Key) String() string {
	return fmt.Sprintf("%s %s", k.Numeral, k.Name)
}

func compareKeys(a, b Key) int {
	if c := strings.Compare(a.Numeral, b.Numeral); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

type Row struct {
	// zero until SetKey has run
	Key   Key
	Cells []string
}

// Table is an ordered-column table of string cells. Every pipeline step
// returns a new Table, the receiver is never mutated.
type Table struct {
	Columns []string
	Rows    []Row
	// set once SetKey has moved the identity columns into Row.Key
	Keyed bool
}

func (t Table) ColumnIndex(name string) int {
	return slices.Index(t.Columns, name)
}

// Cell returns the value at a row index and column name, or "" if the
// column does not exist.
func (t Table) Cell(row int, col string) string {
	idx := t.ColumnIndex(col)
	if idx < 0 {
		return ""
	}
	return t.Rows[row].Cells[idx]
}

func (t Table) clone() Table {
	out := Table{
		Columns: slices.Clone(t.Columns),
		Rows:    make([]Row, len(t.Rows)),
		Keyed:   t.Keyed,
	}
	for i, r := range t.Rows {
		out.Rows[i] = Row{Key: r.Key, Cells: slices.Clone(r.Cells)}
	}
	return out
}

// Rename relabels columns according to the mapping. Referencing a
// column that does not exist is an error so upstream schema drift fails
// fast instead of propagating.
func (t Table) Rename(mapping map[string]string) (Table, error) {
	out := t.clone()
	for src, dst := range mapping {
		idx := out.ColumnIndex(src)
		if idx < 0 {
			return Table{}, fmt.Errorf("cannot rename %q to %q: column does not exist", src, dst)
		}
		out.Columns[idx] = dst
	}
	return out, nil
}

// Drop removes the named columns and their cells.
func (t Table) Drop(names ...string) (Table, error) {
	for _, name := range names {
		if t.ColumnIndex(name) < 0 {
			return Table{}, fmt.Errorf("cannot drop %q: column does not exist", name)
		}
	}

	var keep []int
	for i, col := range t.Columns {
		if !slices.Contains(names, col) {
			keep = append(keep, i)
		}
	}
	return t.project(keep), nil
}

// Select projects the table onto the named columns, in the given order.
func (t Table) Select(names ...string) (Table, error) {
	indices := make([]int, len(names))
	for i, name := range names {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			return Table{}, fmt.Errorf("cannot select %q: column does not exist", name)
		}
		indices[i] = idx
	}
	return t.project(indices), nil
}

func (t Table) project(indices []int) Table {
	out := Table{
		Columns: make([]string, len(indices)),
		Rows:    make([]Row, len(t.Rows)),
		Keyed:   t.Keyed,
	}
	for i, idx := range indices {
		out.Columns[i] = t.Columns[idx]
	}
	for i, r := range t.Rows {
		cells := make([]string, len(indices))
		for j, idx := range indices {
			cells[j] = r.Cells[idx]
		}
		out.Rows[i] = Row{Key: r.Key, Cells: cells}
	}
	return out
}

// SetKey moves the two identity columns out of the cells and into
// Row.Key, then sorts ascending by the compound key. Two rows sharing a
// key is a data-integrity violation.
func (t Table) SetKey(numeralCol, nameCol string) (Table, error) {
	numeralIdx := t.ColumnIndex(numeralCol)
	if numeralIdx < 0 {
		return Table{}, fmt.Errorf("key column %q does not exist", numeralCol)
	}
	nameIdx := t.ColumnIndex(nameCol)
	if nameIdx < 0 {
		return Table{}, fmt.Errorf("key column %q does not exist", nameCol)
	}

	keyed := t.clone()
	for i, r := range keyed.Rows {
		keyed.Rows[i].Key = Key{
			Numeral: r.Cells[numeralIdx],
			Name:    r.Cells[nameIdx],
		}
	}
	out, err := keyed.Drop(numeralCol, nameCol)
	if err != nil {
		return Table{}, err
	}
	out.Keyed = true

	slices.SortStableFunc(out.Rows, func(a, b Row) int {
		return compareKeys(a.Key, b.Key)
	})
	for i := 1; i < len(out.Rows); i++ {
		if out.Rows[i].Key == out.Rows[i-1].Key {
			return Table{}, fmt.Errorf("duplicate key: %s", out.Rows[i].Key)
		}
	}
	return out, nil
}

// appendColumn adds a derived column on the right. values must be the
// same length as t.Rows.
func (t Table) appendColumn(name string, values []string) (Table, error) {
	if t.ColumnIndex(name) >= 0 {
		return Table{}, fmt.Errorf("cannot add %q: column already exists", name)
	}
	if len(values) != len(t.Rows) {
		return Table{}, fmt.Errorf("cannot add %q: got %d values for %d rows", name, len(values), len(t.Rows))
	}
	out := t.clone()
	out.Columns = append(out.Columns, name)
	for i := range out.Rows {
		out.Rows[i].Cells = append(out.Rows[i].Cells, values[i])
	}
	return out, nil
}
