package repositories

import "strings"

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// nullIfEmpty maps "" to SQL NULL so optional text fields stay NULL in
// the table instead of empty strings.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
