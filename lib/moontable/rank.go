package moontable

import (
	"fmt"
	"sort"
	"strconv"
	"moonanalysis-backend/lib/textutil"
)

// RankDistance replaces a raw distance column with its competition
// rank: rank 1 is the smallest distance, tied values all receive the
// lowest rank of the tied group and later ranks skip accordingly. Rows
// whose distance cannot be parsed get no rank.
func RankDistance(t Table, distCol, rankCol string) (Table, error) {
	idx := t.ColumnIndex(distCol)
	if idx < 0 {
		return Table{}, fmt.Errorf("column %q does not exist", distCol)
	}

	var parsed []float64
	values := make([]float64, len(t.Rows))
	ok := make([]bool, len(t.Rows))
	for i, r := range t.Rows {
		v, parseable := textutil.ExtractNumber(r.Cells[idx])
		values[i] = v
		ok[i] = parseable
		if parseable {
			parsed = append(parsed, v)
		}
	}
	sort.Float64s(parsed)

	ranks := make([]string, len(t.Rows))
	for i := range t.Rows {
		if !ok[i] {
			continue
		}
		// the number of values strictly smaller, plus one
		ranks[i] = strconv.Itoa(sort.SearchFloat64s(parsed, values[i]) + 1)
	}

	out, err := t.appendColumn(rankCol, ranks)
	if err != nil {
		return Table{}, err
	}
	return out.Drop(distCol)
}
