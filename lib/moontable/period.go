package moontable

import (
	"fmt"
	"strconv"
	"moonanalysis-backend/lib/textutil"
)

// DaysPerYear is the divisor the year conversion uses. The original
// analysis divides by a flat 365.
const DaysPerYear = 365.0

// ConvertPeriod derives an orbital period in years from sidereal
// day-count text like "0.6745 d" or "−550.31(r)". Rows whose text
// yields no numeric token keep an empty derived value and stay in the
// table. The raw day-count column is dropped.
func ConvertPeriod(t Table, daysCol, yearsCol string) (Table, error) {
	idx := t.ColumnIndex(daysCol)
	if idx < 0 {
		return Table{}, fmt.Errorf("column %q does not exist", daysCol)
	}

	years := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		days, ok := textutil.ExtractNumber(r.Cells[idx])
		if !ok {
			continue
		}
		years[i] = strconv.FormatFloat(days/DaysPerYear, 'g', -1, 64)
	}

	out, err := t.appendColumn(yearsCol, years)
	if err != nil {
		return Table{}, err
	}
	return out.Drop(daysCol)
}
