package derive

import (
	"github.com/labcrm/crm-api/internal/dateutil"
	"github.com/labcrm/crm-api/internal/domain"
)

// invoiceDueOffsetDays is the tax-invoice due window: invoices fall due
// 30 days after contract signing.
const invoiceDueOffsetDays = 30

// invoiceDueSoonWindowDays is how far ahead the dashboard warns about
// upcoming invoice due dates.
const invoiceDueSoonWindowDays = 7

// ContractView is a contract resolved to its company for display.
type ContractView struct {
	domain.Contract
	CompanyName string `json:"companyName"`
}

// ContractBucket is one dashboard contract grouping: the full count
// plus a short preview in storage order.
type ContractBucket struct {
	Count   int            `json:"count"`
	Preview []ContractView `json:"preview"`
}

// ContractBuckets groups contracts by lifecycle position.
type ContractBuckets struct {
	Ongoing        ContractBucket `json:"ongoing"`
	Completed      ContractBucket `json:"completed"`
	InvoiceDueSoon ContractBucket `json:"invoiceDueSoon"`
}

// BuildContractBuckets classifies every contract against today:
// ongoing (period contains today), completed (period ended before
// today), and invoice-due-soon (signing date + 30 days falls within the
// next week, today inclusive). A contract with malformed period dates
// joins no period bucket; a malformed signing date never becomes due.
func BuildContractBuckets(s *Snapshot, today string) ContractBuckets {
	var buckets ContractBuckets
	buckets.Ongoing.Preview = []ContractView{}
	buckets.Completed.Preview = []ContractView{}
	buckets.InvoiceDueSoon.Preview = []ContractView{}

	dueWindowEnd, _ := dateutil.AddDays(today, invoiceDueSoonWindowDays)

	for i := range s.Companies {
		company := &s.Companies[i]
		for j := range company.Contracts {
			c := company.Contracts[j]
			view := ContractView{Contract: c, CompanyName: company.Name}

			start := dateutil.DateOnly(c.ContractPeriodStart)
			end := dateutil.DateOnly(c.ContractPeriodEnd)
			if dateutil.IsValid(start) && dateutil.IsValid(end) {
				switch {
				case start <= today && today <= end:
					addToBucket(&buckets.Ongoing, view)
				case end < today:
					addToBucket(&buckets.Completed, view)
				}
			}

			if due, ok := dateutil.AddDays(dateutil.DateOnly(c.ContractSigningDate), invoiceDueOffsetDays); ok {
				if due >= today && due <= dueWindowEnd {
					addToBucket(&buckets.InvoiceDueSoon, view)
				}
			}
		}
	}
	return buckets
}

func addToBucket(b *ContractBucket, view ContractView) {
	b.Count++
	if len(b.Preview) < contractPreviewLimit {
		b.Preview = append(b.Preview, view)
	}
}

// InvoiceDueDate returns signing date + 30 days, or ("", false) when
// the signing date is missing or malformed.
func InvoiceDueDate(c *domain.Contract) (string, bool) {
	return dateutil.AddDays(dateutil.DateOnly(c.ContractSigningDate), invoiceDueOffsetDays)
}
