package models

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestComputeFrequencies(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  FrequencyTable
	}{
		{
			name:  "empty store",
			lines: nil,
			want:  FrequencyTable{},
		},
		{
			name:  "case folded",
			lines: []string{"abc", "ABC"},
			want:  FrequencyTable{'A': 2, 'B': 2, 'C': 2},
		},
		{
			name:  "repeated letters",
			lines: []string{"aab"},
			want:  FrequencyTable{'A': 2, 'B': 1},
		},
		{
			name:  "spaces and digits counted",
			lines: []string{"a 1", "1"},
			want:  FrequencyTable{'A': 1, ' ': 1, '1': 2},
		},
		{
			name:  "diacritics kept distinct",
			lines: []string{"čČc"},
			want:  FrequencyTable{'Č': 2, 'C': 1},
		},
		{
			name:  "empty line contributes nothing",
			lines: []string{"", "x"},
			want:  FrequencyTable{'X': 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeFrequencies(tt.lines))
		})
	}
}

func TestComputeFrequenciesTotalMatchesCharacterCount(t *testing.T) {
	inputs := [][]string{
		{"hello", "world"},
		{"Ünïcödé", "ß", "日本語"},
		{" ", "\t", "a b c"},
		{"MiXeD CaSe", "mixed case"},
	}

	for _, lines := range inputs {
		expected := 0
		for _, line := range lines {
			expected += utf8.RuneCountInString(line)
		}
		assert.Equal(t, expected, ComputeFrequencies(lines).Total(), "lines=%q", lines)
	}
}

func TestComputeFrequenciesIsIdempotent(t *testing.T) {
	lines := []string{"The quick brown fox", "jumps over the lazy dog"}

	first := ComputeFrequencies(lines)
	second := ComputeFrequencies(lines)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Slices(), second.Slices())
}

func TestFrequencyTableSlices(t *testing.T) {
	table := ComputeFrequencies([]string{"bab", "C"})

	assert.Equal(t, []Slice{
		{Char: 'A', Label: "A(1)", Value: 1},
		{Char: 'B', Label: "B(2)", Value: 2},
		{Char: 'C', Label: "C(1)", Value: 1},
	}, table.Slices())
}

func TestFrequencyTableSlicesEmpty(t *testing.T) {
	assert.Empty(t, FrequencyTable{}.Slices())
}

func TestSliceLabel(t *testing.T) {
	assert.Equal(t, "Ž(12)", SliceLabel('Ž', 12))
	assert.Equal(t, " (3)", SliceLabel(' ', 3))
}
