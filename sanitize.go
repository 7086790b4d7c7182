package tcpchat

import "regexp"

var reStripData = regexp.MustCompile("[^[:print:]]")

// SanitizeData returns a string safe to print in a log line, with control
// characters sent by clients removed.
func SanitizeData(s string) string {
	return reStripData.ReplaceAllString(s, "")
}
