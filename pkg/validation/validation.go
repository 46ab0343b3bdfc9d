package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	// Network identities are SHA-256 digests rendered as lowercase hex.
	networkIDRegex = regexp.MustCompile(`^[a-f0-9]{64}$`)

	whitespaceRegex  = regexp.MustCompile(`\s+`)
	unsafeNameRegex  = regexp.MustCompile(`[<>:"/\\|?*]`)
	htmlBracketRegex = regexp.MustCompile(`[<>]`)
)

// ValidNetworkID reports whether the given string is a well-formed network
// identity.
func ValidNetworkID(id string) bool {
	return networkIDRegex.MatchString(id)
}

// SanitizeText strips HTML brackets and normalizes whitespace in shared
// text content.
func SanitizeText(input string) string {
	s := htmlBracketRegex.ReplaceAllString(input, "")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CheckFile validates an upload against the size limit, the MIME allowlist
// and file name constraints. A non-nil error carries the user-facing
// message verbatim.
func CheckFile(name string, mimeType string, size int64, maxSize int64, allowedTypes []string) error {
	if size > maxSize {
		return fmt.Errorf("file size exceeds %s limit", humanize.IBytes(uint64(maxSize)))
	}

	allowed := false
	for _, t := range allowedTypes {
		if mimeType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("file type %s is not allowed", mimeType)
	}

	if unsafeNameRegex.MatchString(name) {
		return fmt.Errorf("file name contains invalid characters")
	}

	return nil
}
