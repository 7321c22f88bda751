package moontable

import (
	"database/sql"
	"fmt"
	"strconv"
)

// Record is one fully processed moon, typed for storage.
type Record struct {
	Numeral       string
	Name          string
	DiscoveryYear int64
	YearBin       string
	DiscoveredBy  string
	MeanRadius    string
	Notes         string
	ParentPlanet  string
	DistanceRank  sql.NullInt64
	PeriodYears   sql.NullFloat64
}

// Records converts the pipeline's final table into typed records.
// The table must be keyed and carry the output column set.
func (t Table) Records() ([]Record, error) {
	if !t.Keyed {
		return nil, fmt.Errorf("table has no key")
	}
	for _, col := range OutputColumns {
		if t.ColumnIndex(col) < 0 {
			return nil, fmt.Errorf("column %q does not exist", col)
		}
	}

	out := make([]Record, len(t.Rows))
	for i, row := range t.Rows {
		year, err := strconv.ParseInt(t.Cell(i, ColDiscoveryYear), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %s: bad discovery year: %w", row.Key, err)
		}

		rec := Record{
			Numeral:       row.Key.Numeral,
			Name:          row.Key.Name,
			DiscoveryYear: year,
			YearBin:       t.Cell(i, ColYearBin),
			DiscoveredBy:  t.Cell(i, ColDiscoveredBy),
			MeanRadius:    t.Cell(i, ColMeanRadius),
			Notes:         t.Cell(i, ColNotes),
			ParentPlanet:  t.Cell(i, ColParentPlanet),
		}

		if cell := t.Cell(i, ColDistanceRank); cell != "" {
			rank, err := strconv.ParseInt(cell, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %s: bad distance rank: %w", row.Key, err)
			}
			rec.DistanceRank = sql.NullInt64{Int64: rank, Valid: true}
		}
		if cell := t.Cell(i, ColOrbitalYears); cell != "" {
			period, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %s: bad orbital period: %w", row.Key, err)
			}
			rec.PeriodYears = sql.NullFloat64{Float64: period, Valid: true}
		}

		out[i] = rec
	}
	return out, nil
}
