package moontable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanYears(t *testing.T) {
	in := Table{
		Columns: []string{ColDiscoveryYear},
		Keyed:   true,
		Rows: []Row{
			{Key: Key{"I", "Moon"}, Cells: []string{"Prehistoric"}},
			{Key: Key{"I", "Io"}, Cells: []string{"1610"}},
			{Key: Key{"IX", "Phoebe"}, Cells: []string{"1975/2000"}},
			{Key: Key{"XVI", "Thebe"}, Cells: []string{" 1979"}},
			{Key: Key{"I", "Mimas"}, Cells: []string{"1789"}},
		},
	}

	out, rejected, err := CleanYears(in, ColDiscoveryYear)
	require.NoError(t, err)

	require.Len(t, rejected, 2)
	require.Equal(t, Key{"I", "Moon"}, rejected[0].Key)
	require.Equal(t, "Prehistoric", rejected[0].Value)
	require.Equal(t, "discovery year is not an integer", rejected[0].Reason)
	require.Equal(t, Key{"IX", "Phoebe"}, rejected[1].Key)
	require.Equal(t, "1975/2000", rejected[1].Value)

	// most recent first, values normalized to plain integers
	require.Equal(t, []string{"1979"}, out.Rows[0].Cells)
	require.Equal(t, []string{"1789"}, out.Rows[1].Cells)
	require.Equal(t, []string{"1610"}, out.Rows[2].Cells)
}

func TestBinConfigLabel(t *testing.T) {
	bins := DefaultBins()

	testCases := []struct {
		year     int
		expected string
	}{
		{year: 1610, expected: "(1590, 1633]"},
		{year: 1633, expected: "(1590, 1633]"},
		{year: 1634, expected: "(1633, 1676]"},
		{year: 1789, expected: "(1762, 1805]"},
		{year: 1848, expected: "(1805, 1848]"},
		{year: 1977, expected: "(1934, 1977]"},
		{year: 1978, expected: "(1977, 2020]"},
		{year: 1979, expected: "(1977, 2020]"},
		{year: 2020, expected: "(1977, 2020]"},
		// the range is half-open, its left edge is excluded
		{year: 1590, expected: BinUnknown},
		{year: 1589, expected: BinUnknown},
		{year: 2021, expected: BinUnknown},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, bins.Label(test.year), "year: %d", test.year)
	}
}

func TestBinConfigWidthIsDerived(t *testing.T) {
	bins := BinConfig{Min: 0, Max: 100, Count: 4}
	require.Equal(t, []string{"(0, 25]", "(25, 50]", "(50, 75]", "(75, 100]"}, bins.Labels())
	require.Equal(t, "(25, 50]", bins.Label(26))
}

func TestBinYears(t *testing.T) {
	in := Table{
		Columns: []string{ColDiscoveryYear},
		Rows: []Row{
			{Cells: []string{"1979"}},
			{Cells: []string{"1610"}},
			{Cells: []string{"1200"}},
		},
	}

	out, err := BinYears(in, ColDiscoveryYear, ColYearBin, DefaultBins())
	require.NoError(t, err)
	require.Equal(t, []string{ColDiscoveryYear, ColYearBin}, out.Columns)
	require.Equal(t, "(1977, 2020]", out.Cell(0, ColYearBin))
	require.Equal(t, "(1590, 1633]", out.Cell(1, ColYearBin))
	require.Equal(t, BinUnknown, out.Cell(2, ColYearBin))
}

func TestBinYearsBadConfig(t *testing.T) {
	in := Table{Columns: []string{ColDiscoveryYear}}
	_, err := BinYears(in, ColDiscoveryYear, ColYearBin, BinConfig{Min: 10, Max: 5, Count: 3})
	require.Error(t, err)
	_, err = BinYears(in, ColDiscoveryYear, ColYearBin, BinConfig{Min: 0, Max: 10, Count: 0})
	require.Error(t, err)
}
