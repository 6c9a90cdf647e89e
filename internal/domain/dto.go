package domain

import (
	"time"

	"github.com/google/uuid"
)

// --- Auth ---

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     UserRole  `json:"role"`
}

// --- Companies ---

type CreateCompanyRequest struct {
	Name            string                 `json:"name" validate:"required,min=1,max=200"`
	Address         string                 `json:"address" validate:"max=500"`
	Website         string                 `json:"website" validate:"max=500"`
	MainPhoneNumber string                 `json:"mainPhoneNumber" validate:"max=50"`
	Notes           string                 `json:"notes"`
	Contacts        []CreateContactRequest `json:"contacts" validate:"dive"`
}

type UpdateCompanyRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address         *string `json:"address" validate:"omitempty,max=500"`
	Website         *string `json:"website" validate:"omitempty,max=500"`
	MainPhoneNumber *string `json:"mainPhoneNumber" validate:"omitempty,max=50"`
	Notes           *string `json:"notes"`
}

type CreateContactRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Email      string `json:"email" validate:"omitempty,email,max=255"`
	Phone      string `json:"phone" validate:"max=50"`
	IsPrimary  bool   `json:"isPrimary"`
	Department string `json:"department" validate:"max=100"`
	Fax        string `json:"fax" validate:"max=50"`
}

type UpdateContactRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email      *string `json:"email" validate:"omitempty,email,max=255"`
	Phone      *string `json:"phone" validate:"omitempty,max=50"`
	IsPrimary  *bool   `json:"isPrimary"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Fax        *string `json:"fax" validate:"omitempty,max=50"`
}

type CreateQuotationRequest struct {
	ContactID       uuid.UUID    `json:"contactId"`
	QuotationNumber string       `json:"quotationNumber" validate:"required,max=100"`
	QuotationName   string       `json:"quotationName" validate:"required,max=200"`
	QuotationAmount string       `json:"quotationAmount" validate:"required,max=100"`
	DiscountRate    string       `json:"discountRate" validate:"max=20"`
	PaymentTerms    PaymentTerms `json:"paymentTerms"`
}

type UpdateQuotationRequest struct {
	ContactID       *uuid.UUID    `json:"contactId"`
	QuotationNumber *string       `json:"quotationNumber" validate:"omitempty,max=100"`
	QuotationName   *string       `json:"quotationName" validate:"omitempty,max=200"`
	QuotationAmount *string       `json:"quotationAmount" validate:"omitempty,max=100"`
	DiscountRate    *string       `json:"discountRate" validate:"omitempty,max=20"`
	PaymentTerms    *PaymentTerms `json:"paymentTerms"`
}

// CreateContractRequest creates a contract. When QuotationID is set and
// ContractAmount is empty, the amount is derived from the quotation
// (discount applied) and the payment terms are copied over.
type CreateContractRequest struct {
	ContactID           uuid.UUID    `json:"contactId"`
	QuotationID         *uuid.UUID   `json:"quotationId"`
	ContractNumber      string       `json:"contractNumber" validate:"required,max=100"`
	ContractName        string       `json:"contractName" validate:"required,max=200"`
	ContractAmount      string       `json:"contractAmount" validate:"max=100"`
	ContractPeriodStart string       `json:"contractPeriodStart" validate:"omitempty,datetime=2006-01-02"`
	ContractPeriodEnd   string       `json:"contractPeriodEnd" validate:"omitempty,datetime=2006-01-02"`
	ContractSigningDate string       `json:"contractSigningDate" validate:"omitempty,datetime=2006-01-02"`
	PaymentTerms        PaymentTerms `json:"paymentTerms"`
}

type UpdateContractRequest struct {
	ContactID           *uuid.UUID    `json:"contactId"`
	ContractNumber      *string       `json:"contractNumber" validate:"omitempty,max=100"`
	ContractName        *string       `json:"contractName" validate:"omitempty,max=200"`
	ContractAmount      *string       `json:"contractAmount" validate:"omitempty,max=100"`
	ContractPeriodStart *string       `json:"contractPeriodStart" validate:"omitempty,datetime=2006-01-02"`
	ContractPeriodEnd   *string       `json:"contractPeriodEnd" validate:"omitempty,datetime=2006-01-02"`
	ContractSigningDate *string       `json:"contractSigningDate" validate:"omitempty,datetime=2006-01-02"`
	PaymentTerms        *PaymentTerms `json:"paymentTerms"`
	TaxInvoiceIssued    *bool         `json:"taxInvoiceIssued"`
	TaxInvoiceIssueDate *string       `json:"taxInvoiceIssueDate" validate:"omitempty,datetime=2006-01-02"`
}

type CreateStudyRequest struct {
	ContactID         uuid.UUID `json:"contactId"`
	StudyNumber       string    `json:"studyNumber" validate:"required,max=100"`
	StudyName         string    `json:"studyName" validate:"required,max=200"`
	StudyDirector     string    `json:"studyDirector" validate:"max=200"`
	StudyPeriodStart  string    `json:"studyPeriodStart" validate:"omitempty,datetime=2006-01-02"`
	StudyPeriodEnd    string    `json:"studyPeriodEnd" validate:"omitempty,datetime=2006-01-02"`
	TestingStandards  string    `json:"testingStandards"`
	SubstanceInfo     string    `json:"substanceInfo"`
	SubmissionPurpose string    `json:"submissionPurpose"`
}

type UpdateStudyRequest struct {
	ContactID         *uuid.UUID `json:"contactId"`
	StudyNumber       *string    `json:"studyNumber" validate:"omitempty,max=100"`
	StudyName         *string    `json:"studyName" validate:"omitempty,max=200"`
	StudyDirector     *string    `json:"studyDirector" validate:"omitempty,max=200"`
	StudyPeriodStart  *string    `json:"studyPeriodStart" validate:"omitempty,datetime=2006-01-02"`
	StudyPeriodEnd    *string    `json:"studyPeriodEnd" validate:"omitempty,datetime=2006-01-02"`
	TestingStandards  *string    `json:"testingStandards"`
	SubstanceInfo     *string    `json:"substanceInfo"`
	SubmissionPurpose *string    `json:"submissionPurpose"`
}

// --- Meetings ---

type CreateMeetingRequest struct {
	CompanyID   uuid.UUID  `json:"companyId" validate:"required"`
	ContactID   *uuid.UUID `json:"contactId"`
	Title       string     `json:"title" validate:"required,max=200"`
	Date        string     `json:"date" validate:"required"`
	Attendees   string     `json:"attendees"`
	Summary     string     `json:"summary"`
	ActionItems string     `json:"actionItems"`
}

type UpdateMeetingRequest struct {
	ContactID   *uuid.UUID `json:"contactId"`
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Date        *string    `json:"date"`
	Attendees   *string    `json:"attendees"`
	Summary     *string    `json:"summary"`
	ActionItems *string    `json:"actionItems"`
}

// --- Tasks ---

type CreateTaskRequest struct {
	CompanyID   uuid.UUID  `json:"companyId" validate:"required"`
	ContactID   *uuid.UUID `json:"contactId"`
	Name        string     `json:"name" validate:"required,max=200"`
	Description string     `json:"description"`
	StartDate   string     `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string     `json:"endDate" validate:"required,datetime=2006-01-02"`
	Status      TaskStatus `json:"status" validate:"omitempty,oneof=Pending 'In Progress' Completed Delayed 'On Hold'"`
	Assignee    string     `json:"assignee" validate:"max=200"`
}

type UpdateTaskRequest struct {
	ContactID   *uuid.UUID  `json:"contactId"`
	Name        *string     `json:"name" validate:"omitempty,max=200"`
	Description *string     `json:"description"`
	StartDate   *string     `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string     `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Status      *TaskStatus `json:"status"`
	Assignee    *string     `json:"assignee" validate:"omitempty,max=200"`
}

// --- List parameters ---

// ClientListParams filters and orders the company list.
type ClientListParams struct {
	Search    string `json:"search"`
	SortBy    string `json:"sortBy" validate:"omitempty,oneof=name createdAt"`
	SortOrder string `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// --- Notifications ---

type NotificationCountResponse struct {
	Unread int64 `json:"unread"`
}
