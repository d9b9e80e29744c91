package utils

import (
	rndm "math/rand"
	"regexp"
	"strings"
)

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateID creates a random alphanumeric string of length n.
func GenerateID(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a product name into a URL-safe slug:
// "Airpods Pro 2" -> "airpods-pro-2".
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
