package utils

import (
	"net/http"
	"strconv"
	"strings"
)

// FormValue returns the named field from a parsed form body, trimmed.
func FormValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.PostFormValue(name))
}

// FormInt parses the named field as an integer.
// Returns ok=false when the field is missing or not a number.
func FormInt(r *http.Request, name string) (value int, ok bool) {
	raw := FormValue(r, name)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
