// Package models holds the row layouts of the four store tables. Column
// constants are 1-based to match store cell addressing.
package models

import "strings"

// cell returns the trimmed value of the 1-based column col, or "" when the row is short.
func cell(cells []string, col int) string {
	if col < 1 || col > len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col-1])
}
