package usecase

import (
	"fmt"
	"time"

	"github.com/lanshare/lanshare/internal/domain/entities"
)

// Lifecycle constants. One consistent set: the 5 minute session threshold
// is used for activity counting, resolver reclamation and sweeps alike.
const (
	// ItemTTL is the fixed lifetime of every shared item.
	ItemTTL = 24 * time.Hour

	// VeryOldCeiling is the absolute age past which items are removed
	// regardless of their expiry timestamp.
	VeryOldCeiling = 48 * time.Hour

	// SessionActiveWindow bounds how recently a session must have been
	// seen to count as connected.
	SessionActiveWindow = 5 * time.Minute

	// SweepInterval throttles the opportunistic sweep.
	SweepInterval = 5 * time.Minute

	// MaxItemsPerNetwork caps live items per network identity.
	MaxItemsPerNetwork = 25

	// MaxNetworkStorage caps aggregate live bytes per network identity.
	MaxNetworkStorage = 50 << 20

	// MaxTextLength caps text snippets, in characters.
	MaxTextLength = 5000

	// MaxFileSize caps a single uploaded file.
	MaxFileSize = 4 << 20

	// ListLimit caps one page of the item listing.
	ListLimit = 50
)

// AllowedMimeTypes is the upload allowlist.
var AllowedMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"text/plain",
	"application/pdf",
}

// ValidationError rejects malformed input before any state mutation. The
// message is surfaced verbatim to the caller.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// QuotaError rejects a write that would exceed a network ceiling. It
// carries the current usage so handlers can explain themselves to the
// user.
type QuotaError struct {
	Usage entities.NetworkUsage
	msg   string
}

func (e *QuotaError) Error() string {
	return e.msg
}
