// Package mapper converts domain models into the response shapes the
// list endpoints return.
package mapper

import (
	"time"

	"github.com/google/uuid"

	"github.com/labcrm/crm-api/internal/domain"
)

// ClientSummary is the company list row: the company plus its primary
// contact and child counts.
type ClientSummary struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Address             string    `json:"address"`
	MainPhoneNumber     string    `json:"mainPhoneNumber,omitempty"`
	PrimaryContactName  string    `json:"primaryContactName,omitempty"`
	PrimaryContactPhone string    `json:"primaryContactPhone,omitempty"`
	ContactCount        int       `json:"contactCount"`
	QuotationCount      int       `json:"quotationCount"`
	ContractCount       int       `json:"contractCount"`
	StudyCount          int       `json:"studyCount"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ToClientSummary flattens a company into its list row.
func ToClientSummary(c *domain.Company) ClientSummary {
	summary := ClientSummary{
		ID:              c.ID,
		Name:            c.Name,
		Address:         c.Address,
		MainPhoneNumber: c.MainPhoneNumber,
		ContactCount:    len(c.Contacts),
		QuotationCount:  len(c.Quotations),
		ContractCount:   len(c.Contracts),
		StudyCount:      len(c.Studies),
		CreatedAt:       c.CreatedAt,
	}
	if primary := c.PrimaryContact(); primary != nil {
		summary.PrimaryContactName = primary.Name
		summary.PrimaryContactPhone = primary.Phone
	}
	return summary
}

// ToClientSummaries maps a company slice, preserving order.
func ToClientSummaries(companies []domain.Company) []ClientSummary {
	summaries := make([]ClientSummary, 0, len(companies))
	for i := range companies {
		summaries = append(summaries, ToClientSummary(&companies[i]))
	}
	return summaries
}
