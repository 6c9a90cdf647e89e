package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labcrm/crm-api/internal/domain"
)

func TestFilterClientsSearch(t *testing.T) {
	companies := []domain.Company{
		newCompany("한국바이오", "2025-01-01"),
		newCompany("Acme Labs", "2025-02-01"),
		newCompany("acme korea", "2025-03-01"),
	}

	got := FilterClients(companies, domain.ClientListParams{Search: "ACME"})
	require.Len(t, got, 2)
	for _, c := range got {
		assert.Contains(t, []string{"Acme Labs", "acme korea"}, c.Name)
	}

	got = FilterClients(companies, domain.ClientListParams{Search: "바이오"})
	require.Len(t, got, 1)
	assert.Equal(t, "한국바이오", got[0].Name)

	got = FilterClients(companies, domain.ClientListParams{Search: "nothing"})
	assert.Empty(t, got)
}

func TestFilterClientsSortByName(t *testing.T) {
	companies := []domain.Company{
		newCompany("banana", "2025-01-01"),
		newCompany("Apple", "2025-02-01"),
		newCompany("cherry", "2025-03-01"),
	}

	got := FilterClients(companies, domain.ClientListParams{SortBy: "name"})
	require.Len(t, got, 3)
	assert.Equal(t, "Apple", got[0].Name)
	assert.Equal(t, "banana", got[1].Name)
	assert.Equal(t, "cherry", got[2].Name)

	got = FilterClients(companies, domain.ClientListParams{SortBy: "name", SortOrder: "desc"})
	assert.Equal(t, "cherry", got[0].Name)
}

func TestFilterClientsSortByCreatedAt(t *testing.T) {
	companies := []domain.Company{
		newCompany("newest", "2025-03-01"),
		newCompany("oldest", "2025-01-01"),
		newCompany("middle", "2025-02-01"),
	}

	got := FilterClients(companies, domain.ClientListParams{SortBy: "createdAt"})
	assert.Equal(t, "oldest", got[0].Name)
	assert.Equal(t, "newest", got[2].Name)

	got = FilterClients(companies, domain.ClientListParams{SortBy: "createdAt", SortOrder: "desc"})
	assert.Equal(t, "newest", got[0].Name)
}

func TestFilterClientsDoesNotMutateInput(t *testing.T) {
	companies := []domain.Company{
		newCompany("b", "2025-01-01"),
		newCompany("a", "2025-02-01"),
	}
	FilterClients(companies, domain.ClientListParams{SortBy: "name"})
	assert.Equal(t, "b", companies[0].Name)
}
