package natsat

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"
	"moonanalysis-backend/lib/htmlutil"
	"moonanalysis-backend/lib/moontable"
	"moonanalysis-backend/lib/telemetry"
	"moonanalysis-backend/lib/textutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/natsat")

// DefaultUrl is the list of recognized moons of the planets and of the
// largest potential dwarf planets of the Solar System.
const DefaultUrl = "https://en.wikipedia.org/wiki/List_of_natural_satellites"

type Config struct {
	Url string `json:"url"`
}

type Client struct {
	http *resty.Client
	url  string
}

func NewClient(config Config) *Client {
	link := config.Url
	if link == "" {
		link = DefaultUrl
	}

	client := resty.New()
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "scrapers/natsat/http")

	return &Client{
		http: client,
		url:  link,
	}
}

// the moon list is the first table on the page with an "Image" column
var markerColumn = []string{"image"}

// RequiredColumns are the source columns the cleaning pipeline relies
// on. A page revision that drops or renames one of these is a fatal,
// user-visible failure.
var RequiredColumns = []string{
	moontable.ColParent,
	moontable.ColName,
	moontable.ColNumeral,
	moontable.ColDiscoveryYear,
	moontable.ColDiscoveredBy,
	moontable.ColMeanRadius,
	moontable.ColNotes,
	moontable.ColSemiMajorAxis,
	moontable.ColSiderealPeriod,
	moontable.ColImage,
	moontable.ColRefs,
}

func (c *Client) FetchRawTable(ctx context.Context) (moontable.Table, error) {
	ctx, span := tracer.Start(ctx, "FetchRawTable")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch the moon list")
		return moontable.Table{}, err
	}
	if res.StatusCode() != http.StatusOK {
		err := fmt.Errorf("fetch %s: unexpected status %s", c.url, res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return moontable.Table{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return moontable.Table{}, err
	}

	table, err := ParseDocument(ctx, doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse the moon table")
		return moontable.Table{}, err
	}

	span.SetAttributes(attribute.Int("rows", len(table.Rows)))
	return table, nil
}

// ParseDocument locates the first table whose header row contains a
// column matching "Image" and parses it into a raw moon table.
func ParseDocument(ctx context.Context, doc *goquery.Document) (moontable.Table, error) {
	ctx, span := tracer.Start(ctx, "ParseDocument")
	defer span.End()

	var out moontable.Table
	found := false

	doc.Find("table").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		headers := headerCells(sel)
		if !hasMarkerColumn(headers) {
			return true
		}
		out = parseTable(sel, headers)
		found = true
		return false
	})

	if !found {
		err := fmt.Errorf("no table with an %q column found", moontable.ColImage)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return moontable.Table{}, err
	}
	if err := validateColumns(out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return moontable.Table{}, err
	}

	return out, nil
}

func hasMarkerColumn(headers []string) bool {
	for _, h := range headers {
		if textutil.MatchName(h, markerColumn) {
			return true
		}
	}
	return false
}

// trailing legend after the unit, ex.
// "Sidereal period (d) (r = retrograde)" -> "Sidereal period (d)"
var headerLegend = regexp.MustCompile(`^(.*\))\s*\(.*\)$`)

func canonicalHeader(h string) string {
	return headerLegend.ReplaceAllString(h, "$1")
}

func headerCells(sel *goquery.Selection) []string {
	var headers []string
	sel.Find("tr").First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		for _, n := range cell.Nodes {
			headers = append(headers, canonicalHeader(htmlutil.CellText(n)))
		}
	})
	return headers
}

// rowspans in the parent-planet column carry a cell down into the rows
// below it
type carryCell struct {
	text      string
	remaining int
}

func parseTable(sel *goquery.Selection, headers []string) moontable.Table {
	out := moontable.Table{Columns: headers}
	carries := make([]carryCell, len(headers))

	sel.Find("tr").Each(func(rowIdx int, tr *goquery.Selection) {
		if rowIdx == 0 {
			return
		}

		var fresh []*goquery.Selection
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			fresh = append(fresh, cell)
		})
		if len(fresh) == 0 {
			return
		}

		cells := make([]string, len(headers))
		next := 0
		for col := 0; col < len(headers); {
			if carries[col].remaining > 0 {
				cells[col] = carries[col].text
				carries[col].remaining--
				col++
				continue
			}
			if next >= len(fresh) {
				col++
				continue
			}

			cell := fresh[next]
			next++
			text := ""
			if len(cell.Nodes) > 0 {
				text = htmlutil.CellText(cell.Nodes[0])
			}

			span := attrInt(cell, "colspan", 1)
			rows := attrInt(cell, "rowspan", 1)
			for i := 0; i < span && col < len(headers); i++ {
				cells[col] = text
				if rows > 1 {
					carries[col] = carryCell{text: text, remaining: rows - 1}
				}
				col++
			}
		}

		out.Rows = append(out.Rows, moontable.Row{Cells: cells})
	})

	return out
}

func attrInt(sel *goquery.Selection, name string, fallback int) int {
	value, ok := sel.Attr(name)
	if !ok {
		return fallback
	}
	n, ok := textutil.ExtractNumber(value)
	if !ok || n < 1 {
		return fallback
	}
	return int(n)
}

func validateColumns(t moontable.Table) error {
	for _, required := range RequiredColumns {
		if t.ColumnIndex(required) >= 0 {
			continue
		}

		closest := ""
		best := 0.0
		for _, header := range t.Columns {
			similarity := matchr.JaroWinkler(required, header, false)
			if similarity > best {
				best = similarity
				closest = header
			}
		}
		if closest != "" {
			return fmt.Errorf(
				"source table is missing column %q, did the page change? (closest header: %q)",
				required, closest,
			)
		}
		return fmt.Errorf("source table is missing column %q", required)
	}
	return nil
}
