package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type Moon struct {
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

const deleteMoons = `
DELETE FROM moons
`

func (q *Queries) DeleteMoons(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteMoons)
	return err
}

const createMoon = `
INSERT INTO moons (
    numeral, name, discovery_year, year_bin, discovered_by,
    mean_radius, notes, parent_planet, distance_rank, period_years
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateMoonParams struct {
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

func (q *Queries) CreateMoon(ctx context.Context, arg CreateMoonParams) error {
	_, err := q.db.ExecContext(ctx, createMoon,
		arg.Numeral,
		arg.Name,
		arg.DiscoveryYear,
		arg.YearBin,
		arg.DiscoveredBy,
		arg.MeanRadius,
		arg.Notes,
		arg.ParentPlanet,
		arg.DistanceRank,
		arg.PeriodYears,
	)
	return err
}

const listMoons = `
SELECT numeral, name, discovery_year, year_bin, discovered_by,
       mean_radius, notes, parent_planet, distance_rank, period_years
FROM moons
ORDER BY numeral ASC, name ASC
`

func (q *Queries) ListMoons(ctx context.Context) ([]Moon, error) {
	rows, err := q.db.QueryContext(ctx, listMoons)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Moon
	for rows.Next() {
		var m Moon
		err := rows.Scan(
			&m.Numeral,
			&m.Name,
			&m.DiscoveryYear,
			&m.YearBin,
			&m.DiscoveredBy,
			&m.MeanRadius,
			&m.Notes,
			&m.ParentPlanet,
			&m.DistanceRank,
			&m.PeriodYears,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

const countByYearBin = `
SELECT year_bin, COUNT(*) AS count
FROM moons
WHERE (?1 = 0.0 OR (period_years IS NOT NULL AND period_years < ?1))
  AND (?2 = 0 OR (distance_rank IS NOT NULL AND distance_rank < ?2))
GROUP BY year_bin
ORDER BY count DESC, year_bin ASC
`

type CountByYearBinParams struct {
	// 0 disables the filter
	MaxPeriodYears float64
	// 0 disables the filter
	MaxDistanceRank int64
}

type CountByYearBinRow struct {
	YearBin string
	Count   int64
}

func (q *Queries) CountByYearBin(ctx context.Context, arg CountByYearBinParams) ([]CountByYearBinRow, error) {
	rows, err := q.db.QueryContext(ctx, countByYearBin, arg.MaxPeriodYears, arg.MaxDistanceRank)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CountByYearBinRow
	for rows.Next() {
		var r CountByYearBinRow
		if err := rows.Scan(&r.YearBin, &r.Count); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
