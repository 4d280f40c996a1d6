// Package snapshot persists the workout manager's single snapshot record.
// Every store writes the same JSON shape under the same well-known key, so a
// session can be resumed from whichever backend wrote it last.
package snapshot

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

const StorageKey = "vybe_workout_session"

// keyFor scopes the storage key to one user. The ID is base64url encoded so
// distinct IDs never share a key and the result is safe as a file name. An
// empty user keeps the bare key.
func keyFor(userID string) string {
	if userID == "" {
		return StorageKey
	}
	return StorageKey + "_" + base64.RawURLEncoding.EncodeToString([]byte(userID))
}

func encode(snap domain.SessionSnapshot) ([]byte, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal workout snapshot: %w", err)
	}
	return payload, nil
}

func decode(payload []byte) (*domain.SessionSnapshot, error) {
	if len(strings.TrimSpace(string(payload))) == 0 {
		return nil, domain.ErrNoSnapshot
	}
	var snap domain.SessionSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	if snap.IsRunning && snap.LastUpdated <= 0 {
		return nil, fmt.Errorf("%w: running snapshot without lastUpdated", domain.ErrCorruptSnapshot)
	}
	return &snap, nil
}
