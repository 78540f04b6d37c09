package calc

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "integer", raw: "3", expected: 3},
		{name: "surrounding whitespace", raw: "  42\t", expected: 42},
		{name: "dot decimal", raw: "3.5", expected: 3.5},
		{name: "comma decimal", raw: "3,5", expected: 3.5},
		{name: "negative", raw: "-2.25", expected: -2.25},
		{name: "explicit plus", raw: "+8", expected: 8},
		{name: "exponent", raw: "1e3", expected: 1000},
		{name: "negative exponent", raw: "2.5E-2", expected: 0.025},
		{name: "leading dot", raw: ".5", expected: 0.5},
		{name: "trailing dot", raw: "5.", expected: 5},
		{name: "comma with exponent", raw: "1,5e2", expected: 150},
	}

	p := NewParser(InvariantLocale)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := p.Parse(tt.raw)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, v, 1e-12)
		})
	}
}

func TestParser_ParseFailures(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		kind       error
		wantDetail string
	}{
		{name: "empty", raw: "", kind: ErrEmptyInput, wantDetail: ""},
		{name: "only whitespace", raw: "   ", kind: ErrEmptyInput, wantDetail: "   "},
		{name: "letters", raw: "abc", kind: ErrUnparseable, wantDetail: "“abc”"},
		{name: "trimmed in detail", raw: " abc ", kind: ErrUnparseable, wantDetail: "“abc”"},
		{name: "two dots", raw: "1.2.3", kind: ErrUnparseable, wantDetail: "“1.2.3”"},
		{name: "infinity word", raw: "Inf", kind: ErrUnparseable, wantDetail: "“Inf”"},
		{name: "nan word", raw: "NaN", kind: ErrUnparseable, wantDetail: "“NaN”"},
		{name: "hex float", raw: "0x1p3", kind: ErrUnparseable, wantDetail: "“0x1p3”"},
		{name: "underscores", raw: "1_000", kind: ErrUnparseable, wantDetail: "“1_000”"},
		{name: "out of range", raw: "1e400", kind: ErrUnparseable, wantDetail: "“1e400”"},
		{name: "grouped thousands", raw: "1,234.5", kind: ErrUnparseable, wantDetail: "“1,234.5”"},
		{name: "grouped millions", raw: "-1,234,567", kind: ErrUnparseable, wantDetail: "“-1,234,567”"},
		{name: "space grouping", raw: "1 234", kind: ErrUnparseable, wantDetail: "“1 234”"},
		{name: "bare sign", raw: "-", kind: ErrUnparseable, wantDetail: "“-”"},
	}

	p := NewParser(InvariantLocale)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "expected %v, got %v", tt.kind, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.raw, perr.Raw)
			assert.Equal(t, tt.wantDetail, perr.Detail)
		})
	}
}

func TestParser_LocaleFallback(t *testing.T) {
	arabic := Locale{Decimal: "\u066b"}
	german := Locale{Decimal: ","}

	tests := []struct {
		name     string
		locale   Locale
		raw      string
		expected float64
	}{
		{name: "arabic decimal mark", locale: arabic, raw: "3\u066b5", expected: 3.5},
		{name: "arabic with exponent", locale: arabic, raw: "-1\u066b5e2", expected: -150},
		{name: "german decimal comma", locale: german, raw: "1234,5", expected: 1234.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewParser(tt.locale).Parse(tt.raw)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, v, 1e-9)
		})
	}
}

func TestParser_RejectsGroupSeparators(t *testing.T) {
	locales := map[string]Locale{
		"invariant": InvariantLocale,
		"english":   NewLocale(language.AmericanEnglish),
		"german":    NewLocale(language.German),
		"french":    NewLocale(language.French),
		"hindi":     NewLocale(language.MustParse("hi-IN")),
	}
	inputs := []string{"1,234,567", "1.234.567", "-2,000,000", "-2.000.000", "1.234,5", "1,234.5", "12,34,567.5", "1\u202f234,5"}

	for name, locale := range locales {
		p := NewParser(locale)
		for _, s := range inputs {
			t.Run(name+"/"+s, func(t *testing.T) {
				_, err := p.Parse(s)
				assert.True(t, errors.Is(err, ErrUnparseable), "expected %q to be rejected, got %v", s, err)
			})
		}
	}
}

func TestParser_InvariantParseWins(t *testing.T) {
	// "1.234" is a valid invariant number, so the german reading never runs
	german := Locale{Decimal: ","}
	v, err := NewParser(german).Parse("1.234")
	require.NoError(t, err)
	assert.Equal(t, 1.234, v)
}

func TestParser_ZeroValueUsesInvariantLocale(t *testing.T) {
	var p Parser
	assert.Equal(t, InvariantLocale, p.Locale())

	v, err := p.Parse("2,5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestParser_NormalizationIsIdempotent(t *testing.T) {
	inputs := []string{
		"3,5", "3.5", "-0,25", "1,5e3", "10", "abc", "1,2,3", "", "4,",
		"1,234,567", "1.234.567", "-2,000,000", "-2.000.000",
	}
	locales := map[string]Locale{
		"invariant": InvariantLocale,
		"english":   NewLocale(language.AmericanEnglish),
		"german":    NewLocale(language.German),
		"arabic":    {Decimal: "\u066b"},
	}

	for name, locale := range locales {
		p := NewParser(locale)
		for _, s := range inputs {
			if strings.Contains(s, ",") && strings.Contains(s, ".") {
				continue
			}
			t.Run(name+"/"+s, func(t *testing.T) {
				v1, err1 := p.Parse(s)
				v2, err2 := p.Parse(strings.ReplaceAll(s, ",", "."))
				assert.Equal(t, err1 == nil, err2 == nil)
				if err1 == nil {
					assert.Equal(t, v1, v2)
				}
			})
		}
	}
}

func TestParser_FormattedValuesRoundTrip(t *testing.T) {
	values := []float64{0, 7, -3.25, 1002, 0.1 + 0.2, 1.0 / 3.0, 123456789.123456, 6.02214076e23, -1.6e-19, 1e15}

	p := NewParser(InvariantLocale)
	for _, v := range values {
		s := FormatNumber(v)
		got, err := p.Parse(s)
		require.NoError(t, err, "re-parsing %q", s)
		if v == 0 {
			assert.Equal(t, 0.0, got)
			continue
		}
		assert.InEpsilon(t, v, got, 1e-14, "round trip of %q", s)
	}
}
