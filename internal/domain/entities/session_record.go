package entities

import (
	"fmt"

	"github.com/gridctl-dev/gridctl/internal/domain/values"
)

// SessionRecord is the persisted identity of a previously launched
// session cluster. A later invocation can recover it to attach to the
// same cluster without repeating the identifier on the command line.
type SessionRecord struct {
	ApplicationID values.ApplicationID
	ManagerHost   string
	ManagerPort   int
}

// HasManagerAddress reports whether the record carries a manager
// host:port pair. The pair is optional in the properties file.
func (r *SessionRecord) HasManagerAddress() bool {
	return r.ManagerHost != ""
}

// ManagerAddress returns the host:port form of the manager address.
func (r *SessionRecord) ManagerAddress() string {
	if !r.HasManagerAddress() {
		return ""
	}
	return fmt.Sprintf("%s:%d", r.ManagerHost, r.ManagerPort)
}
