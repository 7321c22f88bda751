package moontable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func smallTable() Table {
	return Table{
		Columns: []string{"a", "b", "c"},
		Rows: []Row{
			{Cells: []string{"1", "2", "3"}},
			{Cells: []string{"4", "5", "6"}},
		},
	}
}

func TestRename(t *testing.T) {
	out, err := smallTable().Rename(map[string]string{"a": "x", "c": "z"})
	require.NoError(t, err)
	require.Equal(t, []string{"x", "b", "z"}, out.Columns)
	require.Equal(t, "1", out.Cell(0, "x"))

	_, err = smallTable().Rename(map[string]string{"missing": "y"})
	require.ErrorContains(t, err, `"missing"`)
}

func TestDrop(t *testing.T) {
	out, err := smallTable().Drop("b")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, out.Columns)
	require.Equal(t, []string{"4", "6"}, out.Rows[1].Cells)

	_, err = smallTable().Drop("missing")
	require.Error(t, err)
}

func TestSelect(t *testing.T) {
	out, err := smallTable().Select("c", "a")
	require.NoError(t, err)

	expected := Table{
		Columns: []string{"c", "a"},
		Rows: []Row{
			{Cells: []string{"3", "1"}},
			{Cells: []string{"6", "4"}},
		},
	}
	diff := cmp.Diff(expected, out)
	if diff != "" {
		t.Fatal(diff)
	}

	_, err = smallTable().Select("a", "missing")
	require.Error(t, err)
}

func TestSetKey(t *testing.T) {
	in := Table{
		Columns: []string{ColNumeral, ColName, "x"},
		Rows: []Row{
			{Cells: []string{"II", "Deimos", "d"}},
			{Cells: []string{"I", "Phobos", "p"}},
			{Cells: []string{"I", "Io", "i"}},
		},
	}

	out, err := in.SetKey(ColNumeral, ColName)
	require.NoError(t, err)
	require.True(t, out.Keyed)
	require.Equal(t, []string{"x"}, out.Columns)

	// sorted ascending by (numeral, name), numerals may repeat
	require.Equal(t, Key{"I", "Io"}, out.Rows[0].Key)
	require.Equal(t, Key{"I", "Phobos"}, out.Rows[1].Key)
	require.Equal(t, Key{"II", "Deimos"}, out.Rows[2].Key)
}

func TestSetKeyDuplicate(t *testing.T) {
	in := Table{
		Columns: []string{ColNumeral, ColName},
		Rows: []Row{
			{Cells: []string{"I", "Io"}},
			{Cells: []string{"I", "Io"}},
		},
	}
	_, err := in.SetKey(ColNumeral, ColName)
	require.ErrorContains(t, err, "duplicate key")
}

func TestStepsDoNotMutateInput(t *testing.T) {
	in := smallTable()
	_, err := in.Rename(map[string]string{"a": "x"})
	require.NoError(t, err)
	_, err = in.Drop("b")
	require.NoError(t, err)

	diff := cmp.Diff(smallTable(), in)
	if diff != "" {
		t.Fatal(diff)
	}
}
