package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// footnote references rendered by wikitext, ex. "[12]", "[note 4]"
var refMarker = regexp.MustCompile(`\[[a-zA-Z ]*\d+\]`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CellText extracts the visible text of a table cell, dropping footnote
// markers and collapsing the whitespace wikitext leaves behind.
func CellText(node *html.Node) string {
	text := GetText(node)
	text = strings.Join(strings.Fields(text), " ")
	text = removeNonPrintable(text)
	text = refMarker.ReplaceAllString(text, "")
	return strings.Trim(text, " \t\n")
}
