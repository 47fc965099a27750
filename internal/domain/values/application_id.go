package values

import (
	"fmt"
	"strconv"
	"strings"
)

// applicationIDPrefix is the fixed prefix the resource manager assigns
// to application identifiers.
const applicationIDPrefix = "application"

// ApplicationID identifies a cluster application on the resource manager.
// The canonical form is application_<clusterTimestamp>_<sequence>.
type ApplicationID struct {
	clusterTimestamp int64
	sequence         int
}

// NewApplicationID creates an ApplicationID from its parts.
func NewApplicationID(clusterTimestamp int64, sequence int) ApplicationID {
	return ApplicationID{clusterTimestamp: clusterTimestamp, sequence: sequence}
}

// ParseApplicationID parses the canonical string form of an application id.
func ParseApplicationID(s string) (ApplicationID, error) {
	parts := strings.Split(strings.TrimSpace(s), "_")
	if len(parts) != 3 || parts[0] != applicationIDPrefix {
		return ApplicationID{}, fmt.Errorf("application id %q does not match application_<timestamp>_<sequence>", s)
	}

	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ApplicationID{}, fmt.Errorf("application id %q has a non-numeric cluster timestamp", s)
	}

	seq, err := strconv.Atoi(parts[2])
	if err != nil {
		return ApplicationID{}, fmt.Errorf("application id %q has a non-numeric sequence number", s)
	}

	return ApplicationID{clusterTimestamp: ts, sequence: seq}, nil
}

// ClusterTimestamp returns the resource manager start time component.
func (a ApplicationID) ClusterTimestamp() int64 {
	return a.clusterTimestamp
}

// Sequence returns the per-cluster sequence number component.
func (a ApplicationID) Sequence() int {
	return a.sequence
}

// IsZero returns true if this is the zero value.
func (a ApplicationID) IsZero() bool {
	return a.clusterTimestamp == 0 && a.sequence == 0
}

// Equals checks if two application ids are equal.
func (a ApplicationID) Equals(other ApplicationID) bool {
	return a == other
}

// String returns the canonical form, with the sequence zero-padded to
// four digits.
func (a ApplicationID) String() string {
	return fmt.Sprintf("%s_%d_%04d", applicationIDPrefix, a.clusterTimestamp, a.sequence)
}

// MarshalJSON implements json.Marshaler.
func (a ApplicationID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *ApplicationID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid application id JSON")
	}
	id, err := ParseApplicationID(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*a = id
	return nil
}
