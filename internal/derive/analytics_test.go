package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labcrm/crm-api/internal/domain"
)

func newQuotation(number, name string) domain.Quotation {
	q := domain.Quotation{QuotationNumber: number, QuotationName: name, QuotationAmount: "0"}
	return q
}

func newStudy(number, start string) domain.Study {
	return domain.Study{StudyNumber: number, StudyName: number, StudyPeriodStart: start}
}

func TestBuildAnalyticsTrend(t *testing.T) {
	acme := newCompany("Acme", "2025-01-01")
	acme.Contracts = []domain.Contract{
		newContract("C-1", "100", "2025-03-10", "2025-06-01", ""),
		newContract("C-2", "100", "2025-03-20", "2025-07-01", ""),
		newContract("C-3", "100", "2025-05-01", "2025-08-01", ""),
	}
	acme.Quotations = []domain.Quotation{
		newQuotation("2025-03-001", "Q1"),
		newQuotation("2025-04-002", "Q2"),
	}
	acme.Studies = []domain.Study{newStudy("S-1", "2025-05-20")}
	s := &Snapshot{
		Companies: []domain.Company{acme},
		Meetings:  []domain.Meeting{newMeeting(acme.ID, "m", "2025-03-05")},
		Tasks: []domain.Task{
			newTask(acme.ID, "t1", "2025-04-01", "2025-04-10", domain.TaskStatusCompleted),
			newTask(acme.ID, "t2", "2025-04-15", "2025-04-20", domain.TaskStatusPending),
		},
	}

	a := BuildAnalytics(s)

	require.Len(t, a.Trend, 4)
	assert.Equal(t, "2025-03", a.Trend[0].Month)
	assert.Equal(t, 2, a.Trend[0].Contracts)
	assert.Equal(t, 1, a.Trend[0].Quotations)
	assert.Equal(t, 1, a.Trend[0].Meetings)

	assert.Equal(t, "2025-04", a.Trend[1].Month)
	assert.Equal(t, 1, a.Trend[1].Quotations)
	assert.Equal(t, 2, a.Trend[1].Tasks)

	assert.Equal(t, "2025-05", a.Trend[2].Month)
	assert.Equal(t, 1, a.Trend[2].Contracts)
	assert.Equal(t, 1, a.Trend[2].Studies)

	assert.Equal(t, "2025-06", a.Trend[3].Month)
}

func TestBuildAnalyticsTotalsAndRate(t *testing.T) {
	acme := newCompany("Acme", "2025-01-01")
	acme.Contracts = []domain.Contract{newContract("C-1", "100", "2025-01-01", "2025-02-01", "")}
	s := &Snapshot{
		Companies: []domain.Company{acme, newCompany("Beta", "2025-02-01")},
		Tasks: []domain.Task{
			newTask(acme.ID, "t1", "2025-04-01", "2025-04-10", domain.TaskStatusCompleted),
			newTask(acme.ID, "t2", "2025-04-01", "2025-04-10", domain.TaskStatusCompleted),
			newTask(acme.ID, "t3", "2025-04-01", "2025-04-10", domain.TaskStatusPending),
			newTask(acme.ID, "t4", "2025-04-01", "2025-04-10", domain.TaskStatusDelayed),
		},
	}

	a := BuildAnalytics(s)
	assert.Equal(t, 2, a.Totals.Companies)
	assert.Equal(t, 1, a.Totals.Contracts)
	assert.Equal(t, 4, a.Totals.Tasks)
	assert.InDelta(t, 50.0, a.TaskCompletionRate, 0.001)
}

func TestBuildAnalyticsRecentItems(t *testing.T) {
	acme := newCompany("Acme", "2025-01-01")
	for _, start := range []string{"2025-01-01", "2025-03-01", "2025-02-01", "2025-06-01", "2025-04-01", "2025-05-01"} {
		acme.Contracts = append(acme.Contracts, newContract("C "+start, "100", start, "2026-01-01", ""))
	}
	a := BuildAnalytics(&Snapshot{Companies: []domain.Company{acme}})

	require.Len(t, a.RecentContracts, 5)
	assert.Equal(t, "2025-06-01", a.RecentContracts[0].ContractPeriodStart)
	assert.Equal(t, "2025-02-01", a.RecentContracts[4].ContractPeriodStart)
}

func TestBuildAnalyticsEmpty(t *testing.T) {
	a := BuildAnalytics(&Snapshot{})
	assert.Zero(t, a.TaskCompletionRate)
	assert.Empty(t, a.Trend)
	assert.Empty(t, a.RecentContracts)
}
