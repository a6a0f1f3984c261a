package format

import (
	"math"
	"strings"
	"testing"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "Zero"},
		{7, "Seven"},
		{11, "Eleven"},
		{20, "Twenty"},
		{45, "Forty Five"},
		{100, "One Hundred"},
		{105, "One Hundred and Five"},
		{123, "One Hundred and Twenty Three"},
		{1000, "One Thousand"},
		{100000, "One Lakh"},
		{150000, "One Lakh Fifty Thousand"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven"},
		{10000000, "One Crore"},
		{10000001, "One Crore One"},
		{123456789, "Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred and Eighty Nine"},
		{1000000000, "One Hundred Crore"},
		{10000000000, "One Thousand Crore"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := NumberToWords(tt.input); got != tt.expected {
				t.Errorf("NumberToWords(%v) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNumberToWordsTruncatesFraction(t *testing.T) {
	if got := NumberToWords(12.99); got != "Twelve" {
		t.Errorf("NumberToWords(12.99) = %q, expected %q", got, "Twelve")
	}
	if got := NumberToWords(0.75); got != "Zero" {
		t.Errorf("NumberToWords(0.75) = %q, expected %q", got, "Zero")
	}
}

func TestNumberToWordsDegenerateInput(t *testing.T) {
	for _, input := range []float64{-1, -1234567, math.NaN(), math.Inf(1)} {
		if got := NumberToWords(input); got != "Zero" {
			t.Errorf("NumberToWords(%v) = %q, expected Zero", input, got)
		}
	}
}

func TestNumberToWordsSkipsEmptyBuckets(t *testing.T) {
	for _, input := range []float64{10000000, 10005000, 10100000, 100001, 1000000000} {
		words := NumberToWords(input)
		if strings.Contains(words, "Zero") {
			t.Errorf("NumberToWords(%v) = %q contains a Zero segment", input, words)
		}
		if strings.Contains(words, "  ") || strings.HasPrefix(words, " ") || strings.HasSuffix(words, " ") {
			t.Errorf("NumberToWords(%v) = %q has stray spacing", input, words)
		}
	}
}
