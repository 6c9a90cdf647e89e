package derive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labcrm/crm-api/internal/domain"
)

func snapshotWithContracts(contracts ...domain.Contract) *Snapshot {
	acme := newCompany("Acme", "2025-01-01")
	acme.Contracts = contracts
	return &Snapshot{Companies: []domain.Company{acme}}
}

func TestBuildContractBuckets(t *testing.T) {
	s := snapshotWithContracts(
		newContract("ongoing", "100", "2025-06-01", "2025-07-01", ""),
		newContract("starts today", "100", today, "2025-08-01", ""),
		newContract("ends today", "100", "2025-05-01", today, ""),
		newContract("completed", "100", "2025-01-01", "2025-06-14", ""),
		newContract("future", "100", "2025-07-01", "2025-08-01", ""),
		newContract("no dates", "100", "", "", ""),
	)

	b := BuildContractBuckets(s, today)

	assert.Equal(t, 3, b.Ongoing.Count)
	assert.Equal(t, 1, b.Completed.Count)
	assert.Equal(t, "completed", b.Completed.Preview[0].ContractNumber)
	assert.Equal(t, "Acme", b.Completed.Preview[0].CompanyName)
}

func TestInvoiceDueSoonBucket(t *testing.T) {
	// today is 2025-06-15; signing + 30d must land in [06-15, 06-22].
	s := snapshotWithContracts(
		newContract("due today", "100", "", "", "2025-05-16"),
		newContract("due in window", "100", "", "", "2025-05-20"),
		newContract("window edge", "100", "", "", "2025-05-23"),
		newContract("past due", "100", "", "", "2025-05-10"),
		newContract("too far out", "100", "", "", "2025-05-24"),
		newContract("unsigned", "100", "", "", ""),
	)

	b := BuildContractBuckets(s, today)

	require.Equal(t, 3, b.InvoiceDueSoon.Count)
	assert.Equal(t, "due today", b.InvoiceDueSoon.Preview[0].ContractNumber)
	assert.Equal(t, "window edge", b.InvoiceDueSoon.Preview[2].ContractNumber)
}

func TestContractBucketPreviewCap(t *testing.T) {
	var contracts []domain.Contract
	for i := 0; i < 7; i++ {
		contracts = append(contracts, newContract(fmt.Sprintf("C-%d", i), "100", "2025-01-01", "2025-12-31", ""))
	}
	b := BuildContractBuckets(snapshotWithContracts(contracts...), today)

	assert.Equal(t, 7, b.Ongoing.Count)
	require.Len(t, b.Ongoing.Preview, 5)
	assert.Equal(t, "C-0", b.Ongoing.Preview[0].ContractNumber)
}

func TestInvoiceDueDate(t *testing.T) {
	c := newContract("c", "100", "", "", "2025-05-16")
	due, ok := InvoiceDueDate(&c)
	require.True(t, ok)
	assert.Equal(t, "2025-06-15", due)

	c = newContract("c", "100", "", "", "")
	_, ok = InvoiceDueDate(&c)
	assert.False(t, ok)
}
