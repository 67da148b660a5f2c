package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeID uppercases a user-typed course ID so "csci300" finds "CSCI300".
// It is applied to queries only; IDs are stored exactly as loaded.
func NormalizeID(id string) string {
	return cases.Upper(language.Und).String(id)
}
