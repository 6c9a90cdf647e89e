// Package domain holds the persistent models and the request/response
// shapes of the API.
package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel carries the id and timestamps shared by all uuid-keyed
// entities.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the id so inserts work the same on sqlite and
// postgres.
func (m *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// TaskStatus values match the labels the frontend renders, spaces
// included.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusDelayed    TaskStatus = "Delayed"
	TaskStatusOnHold     TaskStatus = "On Hold"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusDelayed, TaskStatusOnHold:
		return true
	}
	return false
}

type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
)

// Company is the aggregate root: contacts, quotations, contracts and
// studies belong to it and are deleted with it. Meetings and tasks
// reference it weakly and survive its deletion.
type Company struct {
	BaseModel
	Name            string      `gorm:"size:200;not null;index" json:"name"`
	Address         string      `gorm:"size:500" json:"address"`
	Website         string      `gorm:"size:500" json:"website"`
	MainPhoneNumber string      `gorm:"size:50" json:"mainPhoneNumber"`
	Notes           string      `json:"notes"`
	Contacts        []Contact   `gorm:"constraint:OnDelete:CASCADE" json:"contacts"`
	Quotations      []Quotation `gorm:"constraint:OnDelete:CASCADE" json:"quotations"`
	Contracts       []Contract  `gorm:"constraint:OnDelete:CASCADE" json:"contracts"`
	Studies         []Study     `gorm:"constraint:OnDelete:CASCADE" json:"studies"`
}

// PrimaryContact returns the contact flagged primary, or the first
// contact, or nil.
func (c *Company) PrimaryContact() *Contact {
	for i := range c.Contacts {
		if c.Contacts[i].IsPrimary {
			return &c.Contacts[i]
		}
	}
	if len(c.Contacts) > 0 {
		return &c.Contacts[0]
	}
	return nil
}

// ContactByID looks a contact up among the company's loaded contacts.
func (c *Company) ContactByID(id uuid.UUID) *Contact {
	for i := range c.Contacts {
		if c.Contacts[i].ID == id {
			return &c.Contacts[i]
		}
	}
	return nil
}

// QuotationByID looks a quotation up among the company's loaded
// quotations.
func (c *Company) QuotationByID(id uuid.UUID) *Quotation {
	for i := range c.Quotations {
		if c.Quotations[i].ID == id {
			return &c.Quotations[i]
		}
	}
	return nil
}

type Contact struct {
	BaseModel
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index" json:"companyId"`
	Name       string    `gorm:"size:200;not null" json:"name"`
	Email      string    `gorm:"size:255" json:"email"`
	Phone      string    `gorm:"size:50" json:"phone"`
	IsPrimary  bool      `gorm:"not null;default:false" json:"isPrimary"`
	Department string    `gorm:"size:100" json:"department"`
	Fax        string    `gorm:"size:50" json:"fax"`
}

type Quotation struct {
	BaseModel
	CompanyID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"companyId"`
	ContactID       uuid.UUID    `gorm:"type:uuid" json:"contactId"`
	QuotationNumber string       `gorm:"size:100;not null" json:"quotationNumber"`
	QuotationName   string       `gorm:"size:200;not null" json:"quotationName"`
	QuotationAmount string       `gorm:"size:100;not null" json:"quotationAmount"`
	DiscountRate    string       `gorm:"size:20" json:"discountRate"`
	PaymentTerms    PaymentTerms `gorm:"type:text" json:"paymentTerms"`
}

// Contract dates are date-only ISO strings; Date columns would force a
// timezone on values the frontend treats as opaque labels.
type Contract struct {
	BaseModel
	CompanyID           uuid.UUID    `gorm:"type:uuid;not null;index" json:"companyId"`
	ContactID           uuid.UUID    `gorm:"type:uuid" json:"contactId"`
	QuotationID         *uuid.UUID   `gorm:"type:uuid" json:"quotationId"`
	ContractNumber      string       `gorm:"size:100;not null" json:"contractNumber"`
	ContractName        string       `gorm:"size:200;not null" json:"contractName"`
	ContractAmount      string       `gorm:"size:100;not null" json:"contractAmount"`
	ContractPeriodStart string       `gorm:"size:10" json:"contractPeriodStart"`
	ContractPeriodEnd   string       `gorm:"size:10" json:"contractPeriodEnd"`
	ContractSigningDate string       `gorm:"size:10" json:"contractSigningDate"`
	PaymentTerms        PaymentTerms `gorm:"type:text" json:"paymentTerms"`
	TaxInvoiceIssued    bool         `gorm:"not null;default:false" json:"taxInvoiceIssued"`
	TaxInvoiceIssueDate string       `gorm:"size:10" json:"taxInvoiceIssueDate"`
}

type Study struct {
	BaseModel
	CompanyID         uuid.UUID `gorm:"type:uuid;not null;index" json:"companyId"`
	ContactID         uuid.UUID `gorm:"type:uuid" json:"contactId"`
	StudyNumber       string    `gorm:"size:100;not null" json:"studyNumber"`
	StudyName         string    `gorm:"size:200;not null" json:"studyName"`
	StudyDirector     string    `gorm:"size:200" json:"studyDirector"`
	StudyPeriodStart  string    `gorm:"size:10" json:"studyPeriodStart"`
	StudyPeriodEnd    string    `gorm:"size:10" json:"studyPeriodEnd"`
	TestingStandards  string    `json:"testingStandards"`
	SubstanceInfo     string    `json:"substanceInfo"`
	SubmissionPurpose string    `json:"submissionPurpose"`
}

// Meeting.Date may carry a time part ("2025-06-20T14:00"); date views
// compare on the date prefix only.
type Meeting struct {
	BaseModel
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"companyId"`
	ContactID   *uuid.UUID `gorm:"type:uuid" json:"contactId"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Date        string     `gorm:"size:30;not null;index" json:"date"`
	Attendees   string     `json:"attendees"`
	Summary     string     `json:"summary"`
	ActionItems string     `json:"actionItems"`
}

type Task struct {
	BaseModel
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"companyId"`
	ContactID   *uuid.UUID `gorm:"type:uuid" json:"contactId"`
	Name        string     `gorm:"size:200;not null" json:"name"`
	Description string     `json:"description"`
	StartDate   string     `gorm:"size:10;not null" json:"startDate"`
	EndDate     string     `gorm:"size:10;not null;index" json:"endDate"`
	Status      TaskStatus `gorm:"size:20;not null;default:Pending;index" json:"status"`
	Assignee    string     `gorm:"size:200" json:"assignee"`
}

// Notification has a caller-chosen string id; overdue notices derive
// theirs from the task id.
type Notification struct {
	ID        string           `gorm:"size:100;primaryKey" json:"id"`
	Message   string           `gorm:"size:500;not null" json:"message"`
	Type      NotificationType `gorm:"size:20;not null" json:"type"`
	RelatedID string           `gorm:"size:100;index" json:"relatedId"`
	IsRead    bool             `gorm:"not null;default:false;index" json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

type User struct {
	BaseModel
	Username     string   `gorm:"size:100;not null;uniqueIndex" json:"username"`
	PasswordHash string   `gorm:"size:100;not null" json:"-"`
	Role         UserRole `gorm:"size:20;not null;default:user" json:"role"`
}
