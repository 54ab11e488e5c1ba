package session

import (
	"strings"
)

// KeyPrefix namespaces all gallery session keys.
const KeyPrefix = "gallery:session"

// Key identifies the stored view state of one visitor.
type Key struct {
	// SessionID is the value of the visitor's session cookie
	SessionID string
}

// String generates the storage key.
// Format: gallery:session:<id>
func (k Key) String() string {
	id := strings.TrimSpace(k.SessionID)
	if id == "" {
		return KeyPrefix
	}
	return KeyPrefix + ":" + id
}
