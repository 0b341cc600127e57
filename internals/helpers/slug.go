package helper

import "regexp"

var tagnameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// IsValidTagname memeriksa tagname event: huruf, angka, dash, underscore (URL-safe).
func IsValidTagname(s string) bool {
	return s != "" && tagnameRe.MatchString(s)
}
