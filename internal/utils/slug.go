package utils

import "strings"

// removedChars are stripped from room names before slugging, so that
// "joe's room" and "joes room" collide on the same slug.
const removedChars = `*+~.()'"!:@`

// Slugify derives the URL-safe form of a room name: strip the removed
// character set, lowercase, and join whitespace-separated words with
// hyphens. Deterministic, so the same name always maps to the same slug.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range name {
		if strings.ContainsRune(removedChars, r) {
			continue
		}
		b.WriteRune(r)
	}

	words := strings.Fields(b.String())
	return strings.ToLower(strings.Join(words, "-"))
}
