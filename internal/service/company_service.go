package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/labcrm/crm-api/internal/derive"
	"github.com/labcrm/crm-api/internal/domain"
	"github.com/labcrm/crm-api/internal/finance"
	"github.com/labcrm/crm-api/internal/repository"
)

// CompanyService manages companies and their owned children.
type CompanyService struct {
	repo   *repository.CompanyRepository
	logger *zap.Logger
}

func NewCompanyService(repo *repository.CompanyRepository, logger *zap.Logger) *CompanyService {
	return &CompanyService{repo: repo, logger: logger}
}

// List returns companies filtered and sorted by the given parameters.
func (s *CompanyService) List(ctx context.Context, params domain.ClientListParams) ([]domain.Company, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return derive.FilterClients(companies, params), nil
}

func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

func (s *CompanyService) Create(ctx context.Context, req domain.CreateCompanyRequest) (*domain.Company, error) {
	company := &domain.Company{
		Name:            req.Name,
		Address:         req.Address,
		Website:         req.Website,
		MainPhoneNumber: req.MainPhoneNumber,
		Notes:           req.Notes,
	}
	for _, c := range req.Contacts {
		company.Contacts = append(company.Contacts, domain.Contact{
			Name:       c.Name,
			Email:      c.Email,
			Phone:      c.Phone,
			IsPrimary:  c.IsPrimary,
			Department: c.Department,
			Fax:        c.Fax,
		})
	}
	if err := s.repo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	s.logger.Info("created company", zap.String("company_id", company.ID.String()), zap.String("name", company.Name))
	return company, nil
}

func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateCompanyRequest) (*domain.Company, error) {
	company, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.Website != nil {
		company.Website = *req.Website
	}
	if req.MainPhoneNumber != nil {
		company.MainPhoneNumber = *req.MainPhoneNumber
	}
	if req.Notes != nil {
		company.Notes = *req.Notes
	}
	if err := s.repo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

// Delete removes a company and its owned children. Meetings and tasks
// that reference the company are left in place; derived views show
// them under the "Unknown" placeholder from then on.
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}
	s.logger.Info("deleted company", zap.String("company_id", id.String()))
	return nil
}

// --- Contacts ---

func (s *CompanyService) AddContact(ctx context.Context, companyID uuid.UUID, req domain.CreateContactRequest) (*domain.Contact, error) {
	if _, err := s.Get(ctx, companyID); err != nil {
		return nil, err
	}
	if req.IsPrimary {
		if err := s.repo.ClearPrimaryContacts(ctx, companyID); err != nil {
			return nil, fmt.Errorf("failed to clear primary contacts: %w", err)
		}
	}
	contact := &domain.Contact{
		CompanyID:  companyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		IsPrimary:  req.IsPrimary,
		Department: req.Department,
		Fax:        req.Fax,
	}
	if err := s.repo.CreateContact(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

func (s *CompanyService) UpdateContact(ctx context.Context, companyID, contactID uuid.UUID, req domain.UpdateContactRequest) (*domain.Contact, error) {
	contact, err := s.repo.FindContact(ctx, companyID, contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	if req.IsPrimary != nil && *req.IsPrimary && !contact.IsPrimary {
		if err := s.repo.ClearPrimaryContacts(ctx, companyID); err != nil {
			return nil, fmt.Errorf("failed to clear primary contacts: %w", err)
		}
	}
	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.IsPrimary != nil {
		contact.IsPrimary = *req.IsPrimary
	}
	if req.Department != nil {
		contact.Department = *req.Department
	}
	if req.Fax != nil {
		contact.Fax = *req.Fax
	}
	if err := s.repo.UpdateContact(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

func (s *CompanyService) DeleteContact(ctx context.Context, companyID, contactID uuid.UUID) error {
	if err := s.repo.DeleteContact(ctx, companyID, contactID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// --- Quotations ---

func (s *CompanyService) AddQuotation(ctx context.Context, companyID uuid.UUID, req domain.CreateQuotationRequest) (*domain.Quotation, error) {
	if _, err := s.Get(ctx, companyID); err != nil {
		return nil, err
	}
	quotation := &domain.Quotation{
		CompanyID:       companyID,
		ContactID:       req.ContactID,
		QuotationNumber: req.QuotationNumber,
		QuotationName:   req.QuotationName,
		QuotationAmount: req.QuotationAmount,
		DiscountRate:    req.DiscountRate,
		PaymentTerms:    req.PaymentTerms,
	}
	if err := s.repo.CreateQuotation(ctx, quotation); err != nil {
		return nil, fmt.Errorf("failed to create quotation: %w", err)
	}
	return quotation, nil
}

func (s *CompanyService) UpdateQuotation(ctx context.Context, companyID, quotationID uuid.UUID, req domain.UpdateQuotationRequest) (*domain.Quotation, error) {
	quotation, err := s.repo.FindQuotation(ctx, companyID, quotationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuotationNotFound
		}
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}
	if req.ContactID != nil {
		quotation.ContactID = *req.ContactID
	}
	if req.QuotationNumber != nil {
		quotation.QuotationNumber = *req.QuotationNumber
	}
	if req.QuotationName != nil {
		quotation.QuotationName = *req.QuotationName
	}
	if req.QuotationAmount != nil {
		quotation.QuotationAmount = *req.QuotationAmount
	}
	if req.DiscountRate != nil {
		quotation.DiscountRate = *req.DiscountRate
	}
	if req.PaymentTerms != nil {
		quotation.PaymentTerms = *req.PaymentTerms
	}
	if err := s.repo.UpdateQuotation(ctx, quotation); err != nil {
		return nil, fmt.Errorf("failed to update quotation: %w", err)
	}
	return quotation, nil
}

func (s *CompanyService) DeleteQuotation(ctx context.Context, companyID, quotationID uuid.UUID) error {
	if err := s.repo.DeleteQuotation(ctx, companyID, quotationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuotationNotFound
		}
		return fmt.Errorf("failed to delete quotation: %w", err)
	}
	return nil
}

// --- Contracts ---

// AddContract creates a contract. A contract created from a quotation
// takes the quotation's discounted amount and a copy of its payment
// terms; later edits to the quotation do not propagate.
func (s *CompanyService) AddContract(ctx context.Context, companyID uuid.UUID, req domain.CreateContractRequest) (*domain.Contract, error) {
	if _, err := s.Get(ctx, companyID); err != nil {
		return nil, err
	}
	contract := &domain.Contract{
		CompanyID:           companyID,
		ContactID:           req.ContactID,
		QuotationID:         req.QuotationID,
		ContractNumber:      req.ContractNumber,
		ContractName:        req.ContractName,
		ContractAmount:      req.ContractAmount,
		ContractPeriodStart: req.ContractPeriodStart,
		ContractPeriodEnd:   req.ContractPeriodEnd,
		ContractSigningDate: req.ContractSigningDate,
		PaymentTerms:        req.PaymentTerms,
	}
	if req.QuotationID != nil {
		quotation, err := s.repo.FindQuotation(ctx, companyID, *req.QuotationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrQuotationNotFound
			}
			return nil, fmt.Errorf("failed to get quotation: %w", err)
		}
		if contract.ContractAmount == "" {
			contract.ContractAmount = finance.DiscountedAmountString(quotation.QuotationAmount, quotation.DiscountRate)
		}
		if contract.PaymentTerms.IsZero() {
			contract.PaymentTerms = quotation.PaymentTerms
		}
	}
	if err := s.repo.CreateContract(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}
	s.logger.Info("created contract",
		zap.String("company_id", companyID.String()),
		zap.String("contract_number", contract.ContractNumber))
	return contract, nil
}

func (s *CompanyService) UpdateContract(ctx context.Context, companyID, contractID uuid.UUID, req domain.UpdateContractRequest) (*domain.Contract, error) {
	contract, err := s.repo.FindContract(ctx, companyID, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	if req.ContactID != nil {
		contract.ContactID = *req.ContactID
	}
	if req.ContractNumber != nil {
		contract.ContractNumber = *req.ContractNumber
	}
	if req.ContractName != nil {
		contract.ContractName = *req.ContractName
	}
	if req.ContractAmount != nil {
		contract.ContractAmount = *req.ContractAmount
	}
	if req.ContractPeriodStart != nil {
		contract.ContractPeriodStart = *req.ContractPeriodStart
	}
	if req.ContractPeriodEnd != nil {
		contract.ContractPeriodEnd = *req.ContractPeriodEnd
	}
	if req.ContractSigningDate != nil {
		contract.ContractSigningDate = *req.ContractSigningDate
	}
	if req.PaymentTerms != nil {
		contract.PaymentTerms = *req.PaymentTerms
	}
	if req.TaxInvoiceIssued != nil {
		contract.TaxInvoiceIssued = *req.TaxInvoiceIssued
	}
	if req.TaxInvoiceIssueDate != nil {
		contract.TaxInvoiceIssueDate = *req.TaxInvoiceIssueDate
	}
	if err := s.repo.UpdateContract(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to update contract: %w", err)
	}
	return contract, nil
}

func (s *CompanyService) DeleteContract(ctx context.Context, companyID, contractID uuid.UUID) error {
	if err := s.repo.DeleteContract(ctx, companyID, contractID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContractNotFound
		}
		return fmt.Errorf("failed to delete contract: %w", err)
	}
	return nil
}

// --- Studies ---

func (s *CompanyService) AddStudy(ctx context.Context, companyID uuid.UUID, req domain.CreateStudyRequest) (*domain.Study, error) {
	if _, err := s.Get(ctx, companyID); err != nil {
		return nil, err
	}
	study := &domain.Study{
		CompanyID:         companyID,
		ContactID:         req.ContactID,
		StudyNumber:       req.StudyNumber,
		StudyName:         req.StudyName,
		StudyDirector:     req.StudyDirector,
		StudyPeriodStart:  req.StudyPeriodStart,
		StudyPeriodEnd:    req.StudyPeriodEnd,
		TestingStandards:  req.TestingStandards,
		SubstanceInfo:     req.SubstanceInfo,
		SubmissionPurpose: req.SubmissionPurpose,
	}
	if err := s.repo.CreateStudy(ctx, study); err != nil {
		return nil, fmt.Errorf("failed to create study: %w", err)
	}
	return study, nil
}

func (s *CompanyService) UpdateStudy(ctx context.Context, companyID, studyID uuid.UUID, req domain.UpdateStudyRequest) (*domain.Study, error) {
	study, err := s.repo.FindStudy(ctx, companyID, studyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudyNotFound
		}
		return nil, fmt.Errorf("failed to get study: %w", err)
	}
	if req.ContactID != nil {
		study.ContactID = *req.ContactID
	}
	if req.StudyNumber != nil {
		study.StudyNumber = *req.StudyNumber
	}
	if req.StudyName != nil {
		study.StudyName = *req.StudyName
	}
	if req.StudyDirector != nil {
		study.StudyDirector = *req.StudyDirector
	}
	if req.StudyPeriodStart != nil {
		study.StudyPeriodStart = *req.StudyPeriodStart
	}
	if req.StudyPeriodEnd != nil {
		study.StudyPeriodEnd = *req.StudyPeriodEnd
	}
	if req.TestingStandards != nil {
		study.TestingStandards = *req.TestingStandards
	}
	if req.SubstanceInfo != nil {
		study.SubstanceInfo = *req.SubstanceInfo
	}
	if req.SubmissionPurpose != nil {
		study.SubmissionPurpose = *req.SubmissionPurpose
	}
	if err := s.repo.UpdateStudy(ctx, study); err != nil {
		return nil, fmt.Errorf("failed to update study: %w", err)
	}
	return study, nil
}

func (s *CompanyService) DeleteStudy(ctx context.Context, companyID, studyID uuid.UUID) error {
	if err := s.repo.DeleteStudy(ctx, companyID, studyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudyNotFound
		}
		return fmt.Errorf("failed to delete study: %w", err)
	}
	return nil
}
