package calc

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale carries the decimal mark accepted by the fallback parse.
// Group separators are never accepted in input.
type Locale struct {
	Tag     language.Tag
	Decimal string
}

// InvariantLocale uses a dot for decimals
var InvariantLocale = Locale{Tag: language.Und, Decimal: "."}

// sample is formatted with the locale to discover its decimal mark
const sample = 1234.5

// NewLocale derives the decimal mark of tag from CLDR data
func NewLocale(tag language.Tag) Locale {
	formatted := message.NewPrinter(tag).Sprint(number.Decimal(sample))
	decimal, ok := decimalMark(formatted)
	if !ok {
		return Locale{Tag: tag, Decimal: InvariantLocale.Decimal}
	}
	return Locale{Tag: tag, Decimal: decimal}
}

// ParseLocale parses a BCP 47 tag such as "fr-FR" into a Locale
func ParseLocale(s string) (Locale, error) {
	if strings.TrimSpace(s) == "" {
		return InvariantLocale, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Locale{}, errors.Wrapf(err, "invalid locale %q", s)
	}
	return NewLocale(tag), nil
}

func (l Locale) String() string {
	return l.Tag.String()
}

// decimalMark extracts the decimal mark from a formatted sample.
// The sample renders as 1[group]234<decimal>5, so the mark is the last
// run of non-digits.
func decimalMark(formatted string) (string, bool) {
	var last string
	var cur strings.Builder
	for _, r := range formatted {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				last = cur.String()
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		// trailing text is not a decimal mark
		return "", false
	}
	return last, last != ""
}

// normalize rewrites s from the locale's notation to the invariant one
func (l Locale) normalize(s string) (string, bool) {
	if l.Decimal == "" || strings.Count(s, l.Decimal) > 1 {
		return "", false
	}
	return strings.Replace(s, l.Decimal, ".", 1), true
}
