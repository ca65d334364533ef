package domain

import "strings"

// SelectedOptions maps option identifier to the current raw answer:
// a value id, comma-joined value ids, free text or a YYYY-MM-DD date
type SelectedOptions map[int64]string

// Answer returns the non-empty answer for the option
func (s SelectedOptions) Answer(optionID int64) (string, bool) {
	v, ok := s[optionID]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// Clone returns an independent copy
func (s SelectedOptions) Clone() SelectedOptions {
	out := make(SelectedOptions, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
