package calc

import (
	"regexp"
	"strconv"
	"strings"
)

// invariantGrammar accepts an optional sign, digits with at most one dot and an optional exponent
var invariantGrammar = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Parser turns operand text into numbers.
// The zero value parses with InvariantLocale as its fallback.
type Parser struct {
	locale Locale
}

// NewParser creates a parser whose fallback grammar follows locale
func NewParser(locale Locale) Parser {
	return Parser{locale: locale}
}

// Locale returns the fallback locale of the parser
func (p Parser) Locale() Locale {
	if p.locale.Decimal == "" {
		return InvariantLocale
	}
	return p.locale
}

// Parse converts raw into a float64.
// Commas are read as decimal points first; when that fails the trimmed
// text is read with the parser's locale conventions.
func (p Parser) Parse(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &ParseError{Kind: ErrEmptyInput, Raw: raw, Detail: raw}
	}

	if v, ok := parseInvariant(strings.ReplaceAll(trimmed, ",", ".")); ok {
		return v, nil
	}
	if v, ok := parseLocale(trimmed, p.Locale()); ok {
		return v, nil
	}

	return 0, &ParseError{Kind: ErrUnparseable, Raw: raw, Detail: quote(trimmed)}
}

// parseInvariant parses s with the locale-independent grammar
func parseInvariant(s string) (float64, bool) {
	if !invariantGrammar.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// well-formed but out of float64 range
		return 0, false
	}
	return v, true
}

// parseLocale parses s written with the conventions of locale
func parseLocale(s string, locale Locale) (float64, bool) {
	normalized, ok := locale.normalize(s)
	if !ok {
		return 0, false
	}
	return parseInvariant(normalized)
}

func quote(s string) string {
	return "“" + s + "”"
}
