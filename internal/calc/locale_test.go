package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewLocale(t *testing.T) {
	tests := []struct {
		name    string
		tag     language.Tag
		decimal string
	}{
		{name: "american english", tag: language.AmericanEnglish, decimal: "."},
		{name: "german", tag: language.German, decimal: ","},
		{name: "hindi", tag: language.MustParse("hi-IN"), decimal: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocale(tt.tag)
			assert.Equal(t, tt.tag, l.Tag)
			assert.Equal(t, tt.decimal, l.Decimal)
		})
	}
}

func TestParseLocale(t *testing.T) {
	l, err := ParseLocale("")
	require.NoError(t, err)
	assert.Equal(t, InvariantLocale, l)

	l, err = ParseLocale("de-DE")
	require.NoError(t, err)
	assert.Equal(t, ",", l.Decimal)

	_, err = ParseLocale("!!")
	assert.Error(t, err)
}

func TestDecimalMark(t *testing.T) {
	tests := []struct {
		name      string
		formatted string
		decimal   string
		ok        bool
	}{
		{name: "grouped", formatted: "1,234.5", decimal: ".", ok: true},
		{name: "narrow space group", formatted: "1\u202f234,5", decimal: ",", ok: true},
		{name: "no grouping", formatted: "1234,5", decimal: ",", ok: true},
		{name: "arabic", formatted: "1\u066c234\u066b5", decimal: "\u066b", ok: true},
		{name: "digits only", formatted: "12345", ok: false},
		{name: "trailing text", formatted: "1234.5 units", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decimal, ok := decimalMark(tt.formatted)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.decimal, decimal)
			}
		})
	}
}

func TestLocale_Normalize(t *testing.T) {
	arabic := Locale{Decimal: "\u066b"}

	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "decimal mark", input: "3\u066b5", expected: "3.5", ok: true},
		{name: "no decimal mark", input: "-12", expected: "-12", ok: true},
		{name: "two decimal marks", input: "1\u066b2\u066b3", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := arabic.normalize(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
