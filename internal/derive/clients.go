package derive

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/labcrm/crm-api/internal/domain"
)

// Client list sorting keys.
const (
	SortByName      = "name"
	SortByCreatedAt = "createdAt"
)

var nameCollator = collate.New(language.Korean, collate.IgnoreCase)

// FilterClients returns the companies matching params, ordered by the
// requested key. The search is a case-insensitive substring match on
// the company name; name ordering uses locale-aware collation so
// Korean and Latin names interleave the way users expect.
func FilterClients(companies []domain.Company, params domain.ClientListParams) []domain.Company {
	search := strings.ToLower(strings.TrimSpace(params.Search))
	out := []domain.Company{}
	for i := range companies {
		if search == "" || strings.Contains(strings.ToLower(companies[i].Name), search) {
			out = append(out, companies[i])
		}
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = SortByName
	}
	desc := params.SortOrder == "desc"

	sort.SliceStable(out, func(i, j int) bool {
		var cmp int
		switch sortBy {
		case SortByCreatedAt:
			switch {
			case out[i].CreatedAt.Before(out[j].CreatedAt):
				cmp = -1
			case out[i].CreatedAt.After(out[j].CreatedAt):
				cmp = 1
			}
		default:
			cmp = nameCollator.CompareString(out[i].Name, out[j].Name)
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}
