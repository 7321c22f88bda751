package chartutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderBars(t *testing.T) {
	var buf strings.Builder
	err := RenderBars(
		"Count of discovered moons for each year bin",
		"Number of discovered moons",
		[]Bar{
			{Label: "(1977, 2020]", Value: 3},
			{Label: "(1934, 1977]", Value: 1},
		},
		&buf,
	)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Count of discovered moons for each year bin")
	require.Contains(t, out, "(1977, 2020]")
	require.Contains(t, out, "echarts")
}

func TestRenderBarsEmpty(t *testing.T) {
	var buf strings.Builder
	err := RenderBars("empty", "count", nil, &buf)
	require.NoError(t, err)
	require.NotEmpty(t, buf.String())
}
