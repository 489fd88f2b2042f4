package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// RunID identifies one persisted simulation run. it is also used to
// name the run's snapshot table, so it can only be built through
// NewRunID or GenerateRunID
type RunID struct {
	value string
}

var runIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{2,39}$`)

func NewRunID(s string) (RunID, error) {
	if !runIDPattern.MatchString(s) {
		return RunID{}, fmt.Errorf("%w: %q must be 3-40 chars of lowercase letters, digits or underscores, starting with a letter", ErrInvalidRunID, s)
	}
	return RunID{value: s}, nil
}

func GenerateRunID() RunID {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return RunID{value: "sim_" + id[:16]}
}

func (r RunID) String() string {
	return r.value
}

func (r RunID) IsZero() bool {
	return r.value == ""
}

// SnapshotTablePrefix is prepended to the snapshot table name for this run
func (r RunID) SnapshotTablePrefix() string {
	return r.value + "_"
}
