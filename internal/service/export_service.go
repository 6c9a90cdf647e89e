package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/labcrm/crm-api/internal/domain"
)

// utf8BOM makes spreadsheet tools detect the encoding; without it the
// Korean headers render as mojibake in Excel.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Export is a rendered CSV file.
type Export struct {
	Filename string
	Content  []byte
}

// ExportService renders entity CSV exports.
type ExportService struct {
	loader *SnapshotLoader
}

func NewExportService(loader *SnapshotLoader) *ExportService {
	return &ExportService{loader: loader}
}

// Render produces the CSV export for one entity kind.
func (s *ExportService) Render(ctx context.Context, entity string) (*Export, error) {
	snapshot, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	companies := snapshot.Companies
	names := make(map[uuid.UUID]string, len(companies))
	for i := range companies {
		names[companies[i].ID] = companies[i].Name
	}

	var (
		headers []string
		rows    [][]string
	)
	switch entity {
	case "companies":
		headers = []string{"ID", "회사명", "주소", "대표번호", "등록일"}
		for i := range companies {
			c := &companies[i]
			rows = append(rows, []string{
				c.ID.String(), c.Name, c.Address, c.MainPhoneNumber,
				c.CreatedAt.Format(time.RFC3339),
			})
		}
	case "contracts":
		headers = []string{"ID", "회사명", "계약명", "계약번호", "금액", "기간", "담당자"}
		for i := range companies {
			c := &companies[i]
			for j := range c.Contracts {
				ct := &c.Contracts[j]
				rows = append(rows, []string{
					ct.ID.String(), c.Name, ct.ContractName, ct.ContractNumber, ct.ContractAmount,
					fmt.Sprintf("%s~%s", ct.ContractPeriodStart, ct.ContractPeriodEnd),
					contactName(c, ct.ContactID),
				})
			}
		}
	case "quotations":
		headers = []string{"ID", "회사명", "견적명", "견적번호", "금액", "담당자"}
		for i := range companies {
			c := &companies[i]
			for j := range c.Quotations {
				q := &c.Quotations[j]
				rows = append(rows, []string{
					q.ID.String(), c.Name, q.QuotationName, q.QuotationNumber, q.QuotationAmount,
					contactName(c, q.ContactID),
				})
			}
		}
	case "studies":
		headers = []string{"ID", "회사명", "연구명", "연구번호", "책임자", "기간", "담당자"}
		for i := range companies {
			c := &companies[i]
			for j := range c.Studies {
				st := &c.Studies[j]
				rows = append(rows, []string{
					st.ID.String(), c.Name, st.StudyName, st.StudyNumber, st.StudyDirector,
					fmt.Sprintf("%s~%s", st.StudyPeriodStart, st.StudyPeriodEnd),
					contactName(c, st.ContactID),
				})
			}
		}
	case "meetings":
		headers = []string{"ID", "회사명", "제목", "날짜", "참석자", "요약"}
		for i := range snapshot.Meetings {
			m := &snapshot.Meetings[i]
			rows = append(rows, []string{
				m.ID.String(), names[m.CompanyID], m.Title, m.Date, m.Attendees, m.Summary,
			})
		}
	case "tasks":
		headers = []string{"ID", "회사명", "태스크명", "시작일", "마감일", "상태", "담당자"}
		for i := range snapshot.Tasks {
			t := &snapshot.Tasks[i]
			rows = append(rows, []string{
				t.ID.String(), names[t.CompanyID], t.Name, t.StartDate, t.EndDate,
				string(t.Status), t.Assignee,
			})
		}
	default:
		return nil, ErrUnknownExportEntity
	}

	content, err := renderCSV(headers, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s export: %w", entity, err)
	}
	return &Export{Filename: entity + ".csv", Content: content}, nil
}

func contactName(c *domain.Company, contactID uuid.UUID) string {
	if contact := c.ContactByID(contactID); contact != nil {
		return contact.Name
	}
	return ""
}

func renderCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
