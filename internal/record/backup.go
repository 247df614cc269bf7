package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ExportBackup serializes the full document for backup. The payload is the
// exact shape stored under the app-state key, so a backup can be restored
// by any version that can migrate it.
func ExportBackup(s AppState) (string, error) {
	return s.Encode()
}

// ImportBackup validates a backup payload and migrates it through the same
// pipeline as a startup load. The import is all-or-nothing: on any
// rejection the current state is returned untouched alongside the error.
func ImportBackup(cur AppState, raw string, now time.Time) (AppState, error) {
	var probe struct {
		UserName     *string         `json:"userName"`
		CurrentHours *float64        `json:"currentHours"`
		Archives     json.RawMessage `json:"archives"`
	}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return cur, fmt.Errorf("backup is not a valid document: %w", err)
	}
	if probe.UserName == nil {
		return cur, errors.New("backup rejected: userName is missing or not a string")
	}
	if probe.CurrentHours == nil {
		return cur, errors.New("backup rejected: currentHours is missing or not a number")
	}
	if len(probe.Archives) == 0 || string(probe.Archives) == "null" {
		return cur, errors.New("backup rejected: archives are missing")
	}
	return Load(raw, now), nil
}
