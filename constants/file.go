package constants

import "strings"

// FileTypes holds the allowed file types for the file_type field on Document.
var FileTypes = []string{"PDF", "IMAGE"}

// MapMimeToFormat maps a declared mime type to a canonical format, or ""
// when the type is unsupported.
func MapMimeToFormat(mimeType string) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case mt == "application/pdf":
		return "PDF"
	case strings.HasPrefix(mt, "image/"):
		return "IMAGE"
	default:
		return ""
	}
}
