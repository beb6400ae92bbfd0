package service

import "strings"

// Sort fields arrive straight from the query string; only whitelisted fields
// reach the ORDER BY clause.
func sortColumn(allowed map[string]string, sortBy string) string {
	if col, ok := allowed[sortBy]; ok {
		return col
	}
	return "created_at"
}

func sortOrder(o string) string {
	if strings.EqualFold(o, "ASC") {
		return "ASC"
	}
	return "DESC"
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
