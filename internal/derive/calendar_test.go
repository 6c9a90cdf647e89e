package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labcrm/crm-api/internal/domain"
)

func TestBuildCalendarDay(t *testing.T) {
	acme := newCompany("Acme", "2025-01-01")
	acme.Contracts = []domain.Contract{
		newContract("starts", "100", "2025-06-15", "2025-09-01", ""),
		newContract("ends", "100", "2025-03-01", "2025-06-15", ""),
		newContract("invoice", "100", "2025-01-01", "2025-02-01", "2025-05-16"),
		newContract("unrelated", "100", "2025-01-01", "2025-02-01", ""),
	}
	s := &Snapshot{
		Companies: []domain.Company{acme},
		Meetings: []domain.Meeting{
			newMeeting(acme.ID, "on the day", "2025-06-15T14:00"),
			newMeeting(acme.ID, "other day", "2025-06-16"),
		},
		Tasks: []domain.Task{
			newTask(acme.ID, "spanning", "2025-06-10", "2025-06-20", domain.TaskStatusPending),
			newTask(acme.ID, "single day", "2025-06-15", "2025-06-15", domain.TaskStatusCompleted),
			newTask(acme.ID, "elsewhere", "2025-06-16", "2025-06-18", domain.TaskStatusPending),
		},
	}

	day := BuildCalendarDay(s, "2025-06-15")

	require.Len(t, day.Meetings, 1)
	assert.Equal(t, "on the day", day.Meetings[0].Title)

	require.Len(t, day.Tasks, 2)
	assert.Equal(t, "spanning", day.Tasks[0].Name)
	assert.Equal(t, "single day", day.Tasks[1].Name)

	require.Len(t, day.Contracts, 3)
	assert.Equal(t, MatchPeriodStart, day.Contracts[0].Match)
	assert.Equal(t, MatchPeriodEnd, day.Contracts[1].Match)
	assert.Equal(t, MatchInvoiceDue, day.Contracts[2].Match)
}

func TestCalendarContractMatchPrecedence(t *testing.T) {
	// Period start, end and invoice due all land on the same day; the
	// contract is tagged once as a period start.
	c := newContract("all at once", "100", "2025-06-15", "2025-06-15", "2025-05-16")
	day := BuildCalendarDay(snapshotWithContracts(c), "2025-06-15")

	require.Len(t, day.Contracts, 1)
	assert.Equal(t, MatchPeriodStart, day.Contracts[0].Match)
}

func TestCalendarDayEmpty(t *testing.T) {
	day := BuildCalendarDay(&Snapshot{}, "2025-06-15")
	assert.Equal(t, "2025-06-15", day.Date)
	assert.Empty(t, day.Meetings)
	assert.Empty(t, day.Tasks)
	assert.Empty(t, day.Contracts)
}
