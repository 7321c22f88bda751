package textutil

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// a numeric token with optional thousands separators and decimal point,
// ex. "23,460,000", "0.6745", "1,234.5"
var numberToken = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d+)?`)

// ExtractNumber pulls the first numeric token out of free text such as
// "0.6745 d" or "129,390(r)". Thousands separators are stripped before
// parsing.
func ExtractNumber(s string) (float64, bool) {
	token := numberToken.FindString(s)
	if token == "" {
		return 0, false
	}
	token = strings.ReplaceAll(token, ",", "")
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
