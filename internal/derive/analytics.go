package derive

import (
	"sort"

	"github.com/labcrm/crm-api/internal/dateutil"
	"github.com/labcrm/crm-api/internal/domain"
)

const recentItemLimit = 5

// TrendPoint is one month of the activity trend.
type TrendPoint struct {
	Month      string `json:"month"`
	Contracts  int    `json:"contracts"`
	Quotations int    `json:"quotations"`
	Studies    int    `json:"studies"`
	Meetings   int    `json:"meetings"`
	Tasks      int    `json:"tasks"`
}

// Totals are the whole-dataset counters shown above the trend.
type Totals struct {
	Companies  int `json:"companies"`
	Contracts  int `json:"contracts"`
	Quotations int `json:"quotations"`
	Studies    int `json:"studies"`
	Meetings   int `json:"meetings"`
	Tasks      int `json:"tasks"`
}

// QuotationView is a quotation resolved to its company for display.
type QuotationView struct {
	domain.Quotation
	CompanyName string `json:"companyName"`
}

// StudyView is a study resolved to its company for display.
type StudyView struct {
	domain.Study
	CompanyName string `json:"companyName"`
}

// Analytics is the analytics page read-model.
type Analytics struct {
	Totals             Totals          `json:"totals"`
	TaskCompletionRate float64         `json:"taskCompletionRate"`
	Trend              []TrendPoint    `json:"trend"`
	RecentContracts    []ContractView  `json:"recentContracts"`
	RecentQuotations   []QuotationView `json:"recentQuotations"`
	RecentStudies      []StudyView     `json:"recentStudies"`
}

// BuildAnalytics derives the analytics read-model.
//
// Trend months come from contract period starts, study period starts,
// meeting dates, task start dates, and the first seven characters of
// each quotation number. Quotations carry no date field, so their
// number prefix stands in for one; numbers not shaped like "YYYY-MM"
// simply produce months nothing else falls into.
func BuildAnalytics(s *Snapshot) Analytics {
	a := Analytics{
		Trend:            []TrendPoint{},
		RecentContracts:  []ContractView{},
		RecentQuotations: []QuotationView{},
		RecentStudies:    []StudyView{},
	}

	months := map[string]*TrendPoint{}
	point := func(month string) *TrendPoint {
		if month == "" {
			return nil
		}
		p, ok := months[month]
		if !ok {
			p = &TrendPoint{Month: month}
			months[month] = p
		}
		return p
	}

	for i := range s.Companies {
		company := &s.Companies[i]
		for j := range company.Contracts {
			c := company.Contracts[j]
			a.Totals.Contracts++
			if p := point(dateutil.MonthBucket(c.ContractPeriodStart)); p != nil {
				p.Contracts++
			}
			a.RecentContracts = append(a.RecentContracts, ContractView{Contract: c, CompanyName: company.Name})
		}
		for j := range company.Quotations {
			q := company.Quotations[j]
			a.Totals.Quotations++
			if p := point(dateutil.MonthBucket(q.QuotationNumber)); p != nil {
				p.Quotations++
			}
			a.RecentQuotations = append(a.RecentQuotations, QuotationView{Quotation: q, CompanyName: company.Name})
		}
		for j := range company.Studies {
			st := company.Studies[j]
			a.Totals.Studies++
			if p := point(dateutil.MonthBucket(st.StudyPeriodStart)); p != nil {
				p.Studies++
			}
			a.RecentStudies = append(a.RecentStudies, StudyView{Study: st, CompanyName: company.Name})
		}
	}
	a.Totals.Companies = len(s.Companies)
	a.Totals.Meetings = len(s.Meetings)
	a.Totals.Tasks = len(s.Tasks)

	for i := range s.Meetings {
		if p := point(dateutil.MonthBucket(s.Meetings[i].Date)); p != nil {
			p.Meetings++
		}
	}
	completed := 0
	for i := range s.Tasks {
		if p := point(dateutil.MonthBucket(s.Tasks[i].StartDate)); p != nil {
			p.Tasks++
		}
		if s.Tasks[i].Status == domain.TaskStatusCompleted {
			completed++
		}
	}
	if len(s.Tasks) > 0 {
		a.TaskCompletionRate = float64(completed) / float64(len(s.Tasks)) * 100
	}

	for _, p := range months {
		a.Trend = append(a.Trend, *p)
	}
	sort.Slice(a.Trend, func(i, j int) bool {
		return a.Trend[i].Month < a.Trend[j].Month
	})

	sort.SliceStable(a.RecentContracts, func(i, j int) bool {
		return dateutil.DateOnly(a.RecentContracts[i].ContractPeriodStart) > dateutil.DateOnly(a.RecentContracts[j].ContractPeriodStart)
	})
	sort.SliceStable(a.RecentQuotations, func(i, j int) bool {
		return a.RecentQuotations[i].QuotationNumber > a.RecentQuotations[j].QuotationNumber
	})
	sort.SliceStable(a.RecentStudies, func(i, j int) bool {
		return dateutil.DateOnly(a.RecentStudies[i].StudyPeriodStart) > dateutil.DateOnly(a.RecentStudies[j].StudyPeriodStart)
	})
	a.RecentContracts = capContracts(a.RecentContracts)
	a.RecentQuotations = capQuotations(a.RecentQuotations)
	a.RecentStudies = capStudies(a.RecentStudies)
	return a
}

func capContracts(v []ContractView) []ContractView {
	if len(v) > recentItemLimit {
		return v[:recentItemLimit]
	}
	return v
}

func capQuotations(v []QuotationView) []QuotationView {
	if len(v) > recentItemLimit {
		return v[:recentItemLimit]
	}
	return v
}

func capStudies(v []StudyView) []StudyView {
	if len(v) > recentItemLimit {
		return v[:recentItemLimit]
	}
	return v
}
