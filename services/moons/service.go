package moons

import (
	"context"
	"database/sql"
	"log/slog"
	"moonanalysis-backend/lib/moontable"
	"moonanalysis-backend/services/moons/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/moons")

// Scraper provides the raw source table. Implemented by
// lib/scrapers/natsat.
type Scraper interface {
	FetchRawTable(ctx context.Context) (moontable.Table, error)
}

type Service struct {
	scraper Scraper
	db      *sql.DB
	qry     *db.Queries
	cfg     moontable.Config
}

func NewService(scraper Scraper, database *sql.DB, cfg moontable.Config) Service {
	return Service{
		scraper: scraper,
		db:      database,
		qry:     db.New(database),
		cfg:     cfg,
	}
}

type RefreshResult struct {
	// rows in the scraped source table
	Fetched int
	// rows that survived cleaning and were stored
	Kept int
	// rows removed by cleaning, with reasons
	Rejected []moontable.Rejected
}

// Refresh scrapes the source page, runs the cleaning pipeline and
// replaces the stored table in a single transaction.
func (s Service) Refresh(ctx context.Context) (RefreshResult, error) {
	ctx, span := tracer.Start(ctx, "Refresh")
	defer span.End()

	raw, err := s.scraper.FetchRawTable(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch the source table")
		return RefreshResult{}, err
	}
	span.SetAttributes(attribute.Int("fetched", len(raw.Rows)))

	cleaned, rejected, err := moontable.Run(raw, s.cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "pipeline failed")
		return RefreshResult{}, err
	}
	records, err := cleaned.Records()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to convert the cleaned table")
		return RefreshResult{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return RefreshResult{}, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.DeleteMoons(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return RefreshResult{}, err
	}
	for _, r := range records {
		err := txqry.CreateMoon(ctx, db.CreateMoonParams{
			Numeral:       r.Numeral,
			Name:          r.Name,
			DiscoveryYear: r.DiscoveryYear,
			YearBin:       r.YearBin,
			DiscoveredBy:  r.DiscoveredBy,
			MeanRadius:    r.MeanRadius,
			Notes:         r.Notes,
			ParentPlanet:  r.ParentPlanet,
			DistanceRank:  r.DistanceRank,
			PeriodYears:   r.PeriodYears,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return RefreshResult{}, err
		}
	}
	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return RefreshResult{}, err
	}

	slog.InfoContext(
		ctx, "refreshed moon table",
		"fetched", len(raw.Rows),
		"kept", len(records),
		"rejected", len(rejected),
	)

	return RefreshResult{
		Fetched:  len(raw.Rows),
		Kept:     len(records),
		Rejected: rejected,
	}, nil
}

// Table returns the stored analysis-ready table, ordered by the
// (numeral, name) key.
func (s Service) Table(ctx context.Context) ([]moontable.Record, error) {
	ctx, span := tracer.Start(ctx, "Table")
	defer span.End()

	rows, err := s.qry.ListMoons(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]moontable.Record, len(rows))
	for i, m := range rows {
		out[i] = moontable.Record{
			Numeral:       m.Numeral,
			Name:          m.Name,
			DiscoveryYear: m.DiscoveryYear,
			YearBin:       m.YearBin,
			DiscoveredBy:  m.DiscoveredBy,
			MeanRadius:    m.MeanRadius,
			Notes:         m.Notes,
			ParentPlanet:  m.ParentPlanet,
			DistanceRank:  m.DistanceRank,
			PeriodYears:   m.PeriodYears,
		}
	}
	return out, nil
}
