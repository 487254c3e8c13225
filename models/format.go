package models

import "strconv"

// FormatScore renders a 0–100 score the way the UI displays it: one decimal
// place, no trailing zero padding beyond that.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}

// FormatImpact renders an issue share (0..1) as a percentage with one
// decimal place, e.g. "12.5%".
func FormatImpact(share float64) string {
	return strconv.FormatFloat(share*100, 'f', 1, 64) + "%"
}
