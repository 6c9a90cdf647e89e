// Package derive computes every read-model of the API as a pure
// function over a full data snapshot and an injected "today". Nothing
// here touches the database or the clock; services load a Snapshot,
// pick today off their Clock and call in.
//
// The error policy is uniform: malformed dates exclude a record from
// date-dependent views, dangling company references resolve to the
// UnknownCompany placeholder, unparseable amounts count as zero. No
// derivation returns an error.
package derive

import (
	"github.com/google/uuid"

	"github.com/labcrm/crm-api/internal/domain"
)

// UnknownCompany is the display name substituted for a company
// reference that no longer resolves.
const UnknownCompany = "Unknown"

// Snapshot is the full dataset the derivations run over. Companies
// carry their nested contacts, quotations, contracts and studies.
type Snapshot struct {
	Companies []domain.Company
	Meetings  []domain.Meeting
	Tasks     []domain.Task
}

// companyNames builds the id → name lookup used to resolve weak
// references from meetings and tasks.
func (s *Snapshot) companyNames() map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(s.Companies))
	for i := range s.Companies {
		names[s.Companies[i].ID] = s.Companies[i].Name
	}
	return names
}

func resolveCompany(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok {
		return name
	}
	return UnknownCompany
}
