package derive

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labcrm/crm-api/internal/domain"
)

const today = "2025-06-15"

func newCompany(name string, createdAt string) domain.Company {
	t, _ := time.Parse("2006-01-02", createdAt)
	c := domain.Company{Name: name}
	c.ID = uuid.New()
	c.CreatedAt = t
	c.UpdatedAt = t
	return c
}

func newTask(companyID uuid.UUID, name, start, end string, status domain.TaskStatus) domain.Task {
	t := domain.Task{
		CompanyID: companyID,
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}
	t.ID = uuid.New()
	return t
}

func newMeeting(companyID uuid.UUID, title, date string) domain.Meeting {
	m := domain.Meeting{CompanyID: companyID, Title: title, Date: date}
	m.ID = uuid.New()
	return m
}

func newContract(name, amount, start, end, signing string) domain.Contract {
	c := domain.Contract{
		ContractNumber:      name,
		ContractName:        name,
		ContractAmount:      amount,
		ContractPeriodStart: start,
		ContractPeriodEnd:   end,
		ContractSigningDate: signing,
	}
	c.ID = uuid.New()
	return c
}

func TestBuildStats(t *testing.T) {
	acme := newCompany("Acme", "2025-01-01")
	acme.Contracts = []domain.Contract{
		newContract("C-1", "₩1,000,000", "2025-01-01", "2025-12-31", ""),
		newContract("C-2", "2,500,000원", "2025-02-01", "2025-03-01", ""),
		newContract("C-3", "금액 미정", "", "", ""),
	}
	s := &Snapshot{
		Companies: []domain.Company{acme},
		Tasks: []domain.Task{
			newTask(acme.ID, "a", "2025-06-01", "2025-06-20", domain.TaskStatusInProgress),
			newTask(acme.ID, "b", "2025-06-01", "2025-06-10", domain.TaskStatusCompleted),
			newTask(acme.ID, "c", "2025-06-01", "2025-06-10", domain.TaskStatusPending),
		},
	}

	stats := buildStats(s)
	assert.Equal(t, 1, stats.TotalCompanies)
	assert.Equal(t, 1, stats.ActiveTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.Equal(t, float64(3500000), stats.TotalRevenue)
}

func TestPartitionTasks(t *testing.T) {
	acme := newCompany("Acme", "2025-01-01")
	tasks := []domain.Task{
		newTask(acme.ID, "due today", "2025-06-01", today, domain.TaskStatusPending),
		newTask(acme.ID, "overdue", "2025-05-01", "2025-06-14", domain.TaskStatusDelayed),
		newTask(acme.ID, "future", "2025-06-01", "2025-07-01", domain.TaskStatusOnHold),
		newTask(acme.ID, "done late", "2025-05-01", "2025-06-01", domain.TaskStatusCompleted),
		newTask(acme.ID, "broken date", "2025-06-01", "soon", domain.TaskStatusPending),
	}
	s := &Snapshot{Companies: []domain.Company{acme}, Tasks: tasks}

	d := BuildDashboard(s, today)

	require.Len(t, d.UpcomingTasks, 2)
	assert.Equal(t, "due today", d.UpcomingTasks[0].Name)
	assert.Equal(t, "future", d.UpcomingTasks[1].Name)

	require.Len(t, d.OverdueTasks, 1)
	assert.Equal(t, "overdue", d.OverdueTasks[0].Name)
	assert.Equal(t, "Acme", d.OverdueTasks[0].CompanyName)
}

func TestPartitionTasksPreviewCap(t *testing.T) {
	acme := newCompany("Acme", "2025-01-01")
	var tasks []domain.Task
	for i := 0; i < 8; i++ {
		end := fmt.Sprintf("2025-07-%02d", i+1)
		tasks = append(tasks, newTask(acme.ID, end, "2025-06-01", end, domain.TaskStatusPending))
	}
	s := &Snapshot{Companies: []domain.Company{acme}, Tasks: tasks}

	d := BuildDashboard(s, today)
	require.Len(t, d.UpcomingTasks, 5)
	assert.Equal(t, "2025-07-01", d.UpcomingTasks[0].EndDate)
	assert.Equal(t, "2025-07-05", d.UpcomingTasks[4].EndDate)
}

func TestUpcomingMeetings(t *testing.T) {
	acme := newCompany("Acme", "2025-01-01")
	s := &Snapshot{
		Companies: []domain.Company{acme},
		Meetings: []domain.Meeting{
			newMeeting(acme.ID, "past", "2025-06-14"),
			newMeeting(acme.ID, "today", "2025-06-15T10:00"),
			newMeeting(acme.ID, "next week", "2025-06-22"),
		},
	}

	d := BuildDashboard(s, today)
	require.Len(t, d.UpcomingMeetings, 2)
	assert.Equal(t, "today", d.UpcomingMeetings[0].Title)
	assert.Equal(t, "next week", d.UpcomingMeetings[1].Title)
}

func TestRecentActivityMergesAndResolves(t *testing.T) {
	acme := newCompany("Acme", "2025-06-10")
	gone := uuid.New()
	s := &Snapshot{
		Companies: []domain.Company{acme},
		Meetings:  []domain.Meeting{newMeeting(gone, "orphan meeting", "2025-06-14")},
		Tasks:     []domain.Task{newTask(acme.ID, "task", "2025-06-01", "2025-06-12", domain.TaskStatusPending)},
	}

	d := BuildDashboard(s, today)
	require.Len(t, d.RecentActivity, 3)
	assert.Equal(t, ActivityMeeting, d.RecentActivity[0].Kind)
	assert.Equal(t, UnknownCompany, d.RecentActivity[0].CompanyName)
	assert.Equal(t, ActivityTask, d.RecentActivity[1].Kind)
	assert.Equal(t, ActivityCompany, d.RecentActivity[2].Kind)
	assert.Equal(t, "2025-06-10", d.RecentActivity[2].Date)
}

func TestDashboardEmptySnapshot(t *testing.T) {
	d := BuildDashboard(&Snapshot{}, today)
	assert.Equal(t, Stats{}, d.Stats)
	assert.Empty(t, d.UpcomingTasks)
	assert.Empty(t, d.OverdueTasks)
	assert.Empty(t, d.UpcomingMeetings)
	assert.Empty(t, d.RecentActivity)
	assert.Zero(t, d.Contracts.Ongoing.Count)
}
