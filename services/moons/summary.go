package moons

import (
	"context"
	"moonanalysis-backend/services/moons/db"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SummaryFilter restricts which rows a summary counts. A zero value
// disables the corresponding filter.
type SummaryFilter struct {
	// keep rows with an orbital period strictly below this, in years
	MaxPeriodYears float64
	// keep rows with a distance rank strictly below this
	MaxDistanceRank int64
}

type BinCount struct {
	Bin   string
	Count int64
	// share of all counted rows, in [0, 1]
	Fraction float64
}

// Summary counts stored moons per discovery-year bin, most populous
// bin first. Rows with a null period or rank are excluded only when
// the corresponding filter is active.
func (s Service) Summary(ctx context.Context, filter SummaryFilter) ([]BinCount, error) {
	ctx, span := tracer.Start(ctx, "Summary")
	defer span.End()
	span.SetAttributes(
		attribute.Float64("max_period_years", filter.MaxPeriodYears),
		attribute.Int64("max_distance_rank", filter.MaxDistanceRank),
	)

	rows, err := s.qry.CountByYearBin(ctx, db.CountByYearBinParams{
		MaxPeriodYears:  filter.MaxPeriodYears,
		MaxDistanceRank: filter.MaxDistanceRank,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var total int64
	for _, r := range rows {
		total += r.Count
	}

	out := make([]BinCount, len(rows))
	for i, r := range rows {
		out[i] = BinCount{Bin: r.YearBin, Count: r.Count}
		if total > 0 {
			out[i].Fraction = float64(r.Count) / float64(total)
		}
	}
	return out, nil
}
