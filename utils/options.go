package utils

import "golang.org/x/exp/slices"

// Option adalah pasangan value/label untuk mengisi kontrol pilihan di
// sisi frontend.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// UniqueOptions membuang duplikat berdasarkan Value, mempertahankan
// kemunculan pertama.
func UniqueOptions(options []Option) []Option {
	seen := make(map[string]bool, len(options))
	result := make([]Option, 0, len(options))
	for _, option := range options {
		if seen[option.Value] {
			continue
		}
		seen[option.Value] = true
		result = append(result, option)
	}
	return result
}

// SortOptionsByLabel mengurutkan in place berdasarkan label.
func SortOptionsByLabel(options []Option) {
	slices.SortFunc(options, func(a, b Option) int {
		switch {
		case a.Label < b.Label:
			return -1
		case a.Label > b.Label:
			return 1
		default:
			return 0
		}
	})
}
