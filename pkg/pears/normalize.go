package pears

import "regexp"

var digitRun = regexp.MustCompile(`\d+`)

// NormalizeID reduces a free-text coalition id to digits only. An already
// numeric value is returned unchanged; otherwise the first run of digits is
// extracted ("ID: 4821" -> "4821"). When no digits exist the result is "",
// which never matches a registry id and surfaces as a correction downstream.
func NormalizeID(raw string) string {
	return digitRun.FindString(raw)
}

var testName = regexp.MustCompile(`(?i)TEST`)

// IsTestName reports whether a coalition name marks a test record.
func IsTestName(name string) bool {
	return testName.MatchString(name)
}
