package models

import (
	"fmt"
	"sort"
	"unicode"
)

// FrequencyTable maps an upper-cased character to its number of occurrences
type FrequencyTable map[rune]int

// Slice is one wedge of the frequency chart
type Slice struct {
	Char  rune
	Label string
	Value int
}

// ComputeFrequencies counts every character of every line, folding case with
// the simple Unicode upper-case mapping. Diacritics are left untouched.
func ComputeFrequencies(lines []string) FrequencyTable {
	table := make(FrequencyTable)
	for _, line := range lines {
		for _, r := range line {
			table[unicode.ToUpper(r)]++
		}
	}
	return table
}

// Total returns the sum of all counts
func (t FrequencyTable) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// Slices returns one chart slice per character, ordered by character value
func (t FrequencyTable) Slices() []Slice {
	slices := make([]Slice, 0, len(t))
	for char, count := range t {
		slices = append(slices, Slice{
			Char:  char,
			Label: SliceLabel(char, count),
			Value: count,
		})
	}

	sort.Slice(slices, func(i, j int) bool {
		return slices[i].Char < slices[j].Char
	})

	return slices
}

// SliceLabel formats a chart label as "<char>(<count>)"
func SliceLabel(char rune, count int) string {
	return fmt.Sprintf("%c(%d)", char, count)
}
