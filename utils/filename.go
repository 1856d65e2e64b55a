package utils

import (
	"strings"

	"github.com/gosimple/slug"
)

// PDFFilename turns a caller supplied name into a safe attachment filename.
// An empty or unusable name yields fallback.
func PDFFilename(name, fallback string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(strings.TrimSuffix(name, ".pdf"), ".PDF")
	s := slug.Make(name)
	if s == "" {
		return fallback
	}
	return s + ".pdf"
}
