package derive

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/labcrm/crm-api/internal/dateutil"
	"github.com/labcrm/crm-api/internal/domain"
	"github.com/labcrm/crm-api/internal/finance"
)

const (
	taskPreviewLimit     = 5
	meetingPreviewLimit  = 5
	activityFeedLimit    = 10
	contractPreviewLimit = 5
)

// Stats are the headline dashboard numbers.
type Stats struct {
	TotalCompanies int     `json:"totalCompanies"`
	ActiveTasks    int     `json:"activeTasks"`
	CompletedTasks int     `json:"completedTasks"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// TaskView is a task resolved to its company for display.
type TaskView struct {
	domain.Task
	CompanyName string `json:"companyName"`
}

// MeetingView is a meeting resolved to its company for display.
type MeetingView struct {
	domain.Meeting
	CompanyName string `json:"companyName"`
}

// ActivityKind discriminates entries in the recent-activity feed.
type ActivityKind string

const (
	ActivityTask    ActivityKind = "task"
	ActivityMeeting ActivityKind = "meeting"
	ActivityCompany ActivityKind = "company"
)

// ActivityEntry is one row of the recent-activity feed. Date is the
// entry's key date: task end date, meeting date, or company creation
// date, as an ISO string.
type ActivityEntry struct {
	Kind        ActivityKind `json:"kind"`
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	CompanyName string       `json:"companyName"`
	Date        string       `json:"date"`
}

// Dashboard is the full dashboard read-model.
type Dashboard struct {
	Stats            Stats           `json:"stats"`
	UpcomingTasks    []TaskView      `json:"upcomingTasks"`
	OverdueTasks     []TaskView      `json:"overdueTasks"`
	UpcomingMeetings []MeetingView   `json:"upcomingMeetings"`
	RecentActivity   []ActivityEntry `json:"recentActivity"`
	Contracts        ContractBuckets `json:"contracts"`
}

// BuildDashboard derives the dashboard from a snapshot. today is a
// date-only ISO string; every comparison against it is date-only, so a
// task due today is upcoming until the day ends.
func BuildDashboard(s *Snapshot, today string) Dashboard {
	names := s.companyNames()
	upcoming, overdue := partitionTasks(s.Tasks, names, today)
	return Dashboard{
		Stats:            buildStats(s),
		UpcomingTasks:    upcoming,
		OverdueTasks:     overdue,
		UpcomingMeetings: upcomingMeetings(s.Meetings, names, today),
		RecentActivity:   recentActivity(s, names),
		Contracts:        BuildContractBuckets(s, today),
	}
}

func buildStats(s *Snapshot) Stats {
	stats := Stats{TotalCompanies: len(s.Companies)}
	for i := range s.Tasks {
		switch s.Tasks[i].Status {
		case domain.TaskStatusInProgress:
			stats.ActiveTasks++
		case domain.TaskStatusCompleted:
			stats.CompletedTasks++
		}
	}
	revenue := decimal.Zero
	for i := range s.Companies {
		for j := range s.Companies[i].Contracts {
			revenue = revenue.Add(finance.ParseAmount(s.Companies[i].Contracts[j].ContractAmount))
		}
	}
	stats.TotalRevenue = revenue.InexactFloat64()
	return stats
}

// partitionTasks splits non-completed tasks into upcoming (due today or
// later) and overdue (due strictly before today), each sorted by end
// date ascending and capped at the preview limit. Tasks with a
// malformed end date appear in neither list.
func partitionTasks(tasks []domain.Task, names map[uuid.UUID]string, today string) (upcoming, overdue []TaskView) {
	upcoming = []TaskView{}
	overdue = []TaskView{}
	for i := range tasks {
		t := tasks[i]
		if t.Status == domain.TaskStatusCompleted {
			continue
		}
		end := dateutil.DateOnly(t.EndDate)
		if !dateutil.IsValid(end) {
			continue
		}
		view := TaskView{Task: t, CompanyName: resolveCompany(names, t.CompanyID)}
		if end >= today {
			upcoming = append(upcoming, view)
		} else {
			overdue = append(overdue, view)
		}
	}
	byEndDate := func(views []TaskView) {
		sort.SliceStable(views, func(a, b int) bool {
			return dateutil.DateOnly(views[a].EndDate) < dateutil.DateOnly(views[b].EndDate)
		})
	}
	byEndDate(upcoming)
	byEndDate(overdue)
	return capTasks(upcoming), capTasks(overdue)
}

func capTasks(views []TaskView) []TaskView {
	if len(views) > taskPreviewLimit {
		return views[:taskPreviewLimit]
	}
	return views
}

func upcomingMeetings(meetings []domain.Meeting, names map[uuid.UUID]string, today string) []MeetingView {
	views := []MeetingView{}
	for i := range meetings {
		m := meetings[i]
		date := dateutil.DateOnly(m.Date)
		if !dateutil.IsValid(date) || date < today {
			continue
		}
		views = append(views, MeetingView{Meeting: m, CompanyName: resolveCompany(names, m.CompanyID)})
	}
	sort.SliceStable(views, func(a, b int) bool {
		return dateutil.DateOnly(views[a].Date) < dateutil.DateOnly(views[b].Date)
	})
	if len(views) > meetingPreviewLimit {
		views = views[:meetingPreviewLimit]
	}
	return views
}

// recentActivity merges tasks, meetings and company creations into one
// feed, newest first, capped at the feed limit.
func recentActivity(s *Snapshot, names map[uuid.UUID]string) []ActivityEntry {
	entries := []ActivityEntry{}
	for i := range s.Tasks {
		t := s.Tasks[i]
		entries = append(entries, ActivityEntry{
			Kind:        ActivityTask,
			ID:          t.ID.String(),
			Title:       t.Name,
			CompanyName: resolveCompany(names, t.CompanyID),
			Date:        dateutil.DateOnly(t.EndDate),
		})
	}
	for i := range s.Meetings {
		m := s.Meetings[i]
		entries = append(entries, ActivityEntry{
			Kind:        ActivityMeeting,
			ID:          m.ID.String(),
			Title:       m.Title,
			CompanyName: resolveCompany(names, m.CompanyID),
			Date:        dateutil.DateOnly(m.Date),
		})
	}
	for i := range s.Companies {
		c := s.Companies[i]
		entries = append(entries, ActivityEntry{
			Kind:        ActivityCompany,
			ID:          c.ID.String(),
			Title:       c.Name,
			CompanyName: c.Name,
			Date:        c.CreatedAt.Format(dateutil.ISODate),
		})
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Date > entries[b].Date
	})
	if len(entries) > activityFeedLimit {
		entries = entries[:activityFeedLimit]
	}
	return entries
}
