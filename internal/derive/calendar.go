package derive

import (
	"github.com/labcrm/crm-api/internal/dateutil"
	"github.com/labcrm/crm-api/internal/domain"
)

// ContractMatchKind says why a contract appears on a calendar day.
type ContractMatchKind string

const (
	MatchPeriodStart ContractMatchKind = "period-start"
	MatchPeriodEnd   ContractMatchKind = "period-end"
	MatchInvoiceDue  ContractMatchKind = "invoice-due"
)

// CalendarContract is a contract pinned to a calendar day with the
// reason it appears there.
type CalendarContract struct {
	domain.Contract
	CompanyName string            `json:"companyName"`
	Match       ContractMatchKind `json:"match"`
}

// CalendarDay holds everything scheduled on one date.
type CalendarDay struct {
	Date      string             `json:"date"`
	Meetings  []MeetingView      `json:"meetings"`
	Tasks     []TaskView         `json:"tasks"`
	Contracts []CalendarContract `json:"contracts"`
}

// BuildCalendarDay collects the items falling on date: meetings whose
// date matches, tasks whose start-to-end range contains the date, and
// contracts whose period start, period end or invoice due date equals
// it. A contract matching more than one way is tagged once, with
// period-start winning over period-end winning over invoice-due.
func BuildCalendarDay(s *Snapshot, date string) CalendarDay {
	date = dateutil.DateOnly(date)
	names := s.companyNames()
	day := CalendarDay{
		Date:      date,
		Meetings:  []MeetingView{},
		Tasks:     []TaskView{},
		Contracts: []CalendarContract{},
	}

	for i := range s.Meetings {
		m := s.Meetings[i]
		if dateutil.DateOnly(m.Date) == date {
			day.Meetings = append(day.Meetings, MeetingView{Meeting: m, CompanyName: resolveCompany(names, m.CompanyID)})
		}
	}

	for i := range s.Tasks {
		t := s.Tasks[i]
		start := dateutil.DateOnly(t.StartDate)
		end := dateutil.DateOnly(t.EndDate)
		if start == "" || end == "" {
			continue
		}
		if start <= date && date <= end {
			day.Tasks = append(day.Tasks, TaskView{Task: t, CompanyName: resolveCompany(names, t.CompanyID)})
		}
	}

	for i := range s.Companies {
		company := &s.Companies[i]
		for j := range company.Contracts {
			c := company.Contracts[j]
			kind, ok := contractMatch(&c, date)
			if !ok {
				continue
			}
			day.Contracts = append(day.Contracts, CalendarContract{
				Contract:    c,
				CompanyName: company.Name,
				Match:       kind,
			})
		}
	}
	return day
}

func contractMatch(c *domain.Contract, date string) (ContractMatchKind, bool) {
	if dateutil.DateOnly(c.ContractPeriodStart) == date {
		return MatchPeriodStart, true
	}
	if dateutil.DateOnly(c.ContractPeriodEnd) == date {
		return MatchPeriodEnd, true
	}
	if due, ok := InvoiceDueDate(c); ok && due == date {
		return MatchInvoiceDue, true
	}
	return "", false
}
