package moons

import (
	"context"
	"testing"

	"moonanalysis-backend/lib/moontable"
	"moonanalysis-backend/lib/testutil"
	"moonanalysis-backend/services/moons/db"

	"github.com/stretchr/testify/require"
)

type fakeScraper struct{}

func (fakeScraper) FetchRawTable(ctx context.Context) (moontable.Table, error) {
	columns := []string{
		moontable.ColParent, moontable.ColName, moontable.ColNumeral,
		moontable.ColDiscoveryYear, moontable.ColDiscoveredBy,
		moontable.ColMeanRadius, moontable.ColNotes,
		moontable.ColSemiMajorAxis, moontable.ColSiderealPeriod,
		moontable.ColImage, moontable.ColRefs,
	}
	cells := [][]string{
		{"Earth", "Moon", "I", "Prehistoric", "", "1737.4", "", "384,399", "27.321582", "moon.jpg", "[1]"},
		{"Jupiter", "Io", "I", "1610", "Galileo Galilei", "1821.6", "regular", "421,700", "1.769 d", "io.jpg", "[2]"},
		{"Jupiter", "Thebe", "XVI", "1979", "S. Synnott", "49.3", "regular", "221,900", "0.6745 d", "thebe.jpg", "[3]"},
		{"Saturn", "Mimas", "I", "1789", "W. Herschel", "198.2", "regular", "185,539", "0.942 d", "mimas.jpg", "[4]"},
		{"Saturn", "Janus", "X", "1966", "A. Dollfus", "89.5", "regular", "151,460", "0.695 d", "janus.jpg", "[5]"},
		{"Saturn", "Epimetheus", "XI", "1980", "R. Walker", "58.1", "regular", "151,460", "0.694 d", "epimetheus.jpg", "[6]"},
		{"Saturn", "Hyperion", "VII", "1848", "W. Bond", "135", "chaotic rotation", "?", "21.28 d", "hyperion.jpg", "[7]"},
		{"Saturn", "Phoebe", "IX", "1975/2000", "W. Pickering", "106.5", "irregular", "12,929,400", "550.31(r)", "phoebe.jpg", "[8]"},
		{"Uranus", "Margaret", "XXIII", "2003", "S. Sheppard", "10", "irregular", "14,345,000", "1,694.8 d", "margaret.jpg", "[9]"},
	}
	rows := make([]moontable.Row, len(cells))
	for i, c := range cells {
		rows[i] = moontable.Row{Cells: c}
	}
	return moontable.Table{Columns: columns, Rows: rows}, nil
}

func setup(t *testing.T) (Service, func()) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "moons",
		DbSchema: db.Schema,
	})
	return NewService(fakeScraper{}, res.DB, moontable.DefaultConfig()), cleanup
}

func TestRefresh(t *testing.T) {
	svc, cleanup := setup(t)
	defer cleanup()
	ctx := context.Background()

	result, err := svc.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, 9, result.Fetched)
	require.Equal(t, 7, result.Kept)
	require.Len(t, result.Rejected, 2)

	rows, err := svc.Table(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 7)

	byName := map[string]moontable.Record{}
	for _, r := range rows {
		byName[r.Name] = r
	}
	require.Equal(t, int64(1979), byName["Thebe"].DiscoveryYear)
	require.Equal(t, "(1977, 2020]", byName["Thebe"].YearBin)
	require.Equal(t, int64(4), byName["Thebe"].DistanceRank.Int64)
	require.False(t, byName["Hyperion"].DistanceRank.Valid)
	require.InDelta(t, 0.6745/365.0, byName["Thebe"].PeriodYears.Float64, 1e-9)
}

func TestRefreshReplaces(t *testing.T) {
	svc, cleanup := setup(t)
	defer cleanup()
	ctx := context.Background()

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)
	first, err := svc.Table(ctx)
	require.NoError(t, err)

	// a second refresh replaces the stored table instead of
	// duplicating rows
	_, err = svc.Refresh(ctx)
	require.NoError(t, err)
	second, err := svc.Table(ctx)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestSummary(t *testing.T) {
	svc, cleanup := setup(t)
	defer cleanup()
	ctx := context.Background()

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	bins, err := svc.Summary(ctx, SummaryFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, bins)

	// the most populous bin comes first
	require.Equal(t, "(1977, 2020]", bins[0].Bin)
	require.Equal(t, int64(3), bins[0].Count)
	require.InDelta(t, 3.0/7.0, bins[0].Fraction, 1e-9)

	var total int64
	for _, b := range bins {
		total += b.Count
	}
	require.Equal(t, int64(7), total)
}

func TestSummaryPeriodFilter(t *testing.T) {
	svc, cleanup := setup(t)
	defer cleanup()
	ctx := context.Background()

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	// margaret (4.64 yrs) drops out; every other kept row orbits in
	// well under three years
	bins, err := svc.Summary(ctx, SummaryFilter{MaxPeriodYears: 3})
	require.NoError(t, err)

	var total int64
	for _, b := range bins {
		total += b.Count
	}
	require.Equal(t, int64(6), total)
	require.Equal(t, "(1977, 2020]", bins[0].Bin)
	require.Equal(t, int64(2), bins[0].Count)
}

func TestSummaryRankFilter(t *testing.T) {
	svc, cleanup := setup(t)
	defer cleanup()
	ctx := context.Background()

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	// hyperion has no rank and is excluded once the filter is active
	bins, err := svc.Summary(ctx, SummaryFilter{MaxDistanceRank: 100})
	require.NoError(t, err)

	var total int64
	for _, b := range bins {
		total += b.Count
	}
	require.Equal(t, int64(6), total)
}

func TestSummaryEmpty(t *testing.T) {
	svc, cleanup := setup(t)
	defer cleanup()

	bins, err := svc.Summary(context.Background(), SummaryFilter{})
	require.NoError(t, err)
	require.Empty(t, bins)
}
