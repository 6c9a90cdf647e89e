// Package repository contains the gorm data-access layer.
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/labcrm/crm-api/internal/domain"
)

// CompanyRepository persists companies and their owned children.
type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Contacts").
		Preload("Quotations").
		Preload("Contracts").
		Preload("Studies")
}

// FindAll returns every company with its children loaded.
func (r *CompanyRepository) FindAll(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	err := r.preloaded(ctx).Order("created_at").Find(&companies).Error
	return companies, err
}

// FindByID returns one company with its children loaded.
func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	if err := r.preloaded(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *CompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// Delete removes a company and, through the schema's cascade rules,
// its contacts, quotations, contracts and studies. Meetings and tasks
// that reference it stay behind.
func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// sqlite does not always enforce FK cascades, so the children
		// are removed explicitly.
		for _, model := range []interface{}{
			&domain.Contact{}, &domain.Quotation{}, &domain.Contract{}, &domain.Study{},
		} {
			if err := tx.Where("company_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&domain.Company{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *CompanyRepository) CreateContact(ctx context.Context, contact *domain.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *CompanyRepository) FindContact(ctx context.Context, companyID, contactID uuid.UUID) (*domain.Contact, error) {
	var contact domain.Contact
	err := r.db.WithContext(ctx).
		First(&contact, "id = ? AND company_id = ?", contactID, companyID).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *CompanyRepository) UpdateContact(ctx context.Context, contact *domain.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

func (r *CompanyRepository) DeleteContact(ctx context.Context, companyID, contactID uuid.UUID) error {
	return deleteChild(r.db.WithContext(ctx), &domain.Contact{}, companyID, contactID)
}

// ClearPrimaryContacts unsets the primary flag on every contact of a
// company, ahead of flagging a new primary.
func (r *CompanyRepository) ClearPrimaryContacts(ctx context.Context, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&domain.Contact{}).
		Where("company_id = ?", companyID).
		Update("is_primary", false).Error
}

func (r *CompanyRepository) CreateQuotation(ctx context.Context, quotation *domain.Quotation) error {
	return r.db.WithContext(ctx).Create(quotation).Error
}

func (r *CompanyRepository) FindQuotation(ctx context.Context, companyID, quotationID uuid.UUID) (*domain.Quotation, error) {
	var quotation domain.Quotation
	err := r.db.WithContext(ctx).
		First(&quotation, "id = ? AND company_id = ?", quotationID, companyID).Error
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

func (r *CompanyRepository) UpdateQuotation(ctx context.Context, quotation *domain.Quotation) error {
	return r.db.WithContext(ctx).Save(quotation).Error
}

func (r *CompanyRepository) DeleteQuotation(ctx context.Context, companyID, quotationID uuid.UUID) error {
	return deleteChild(r.db.WithContext(ctx), &domain.Quotation{}, companyID, quotationID)
}

func (r *CompanyRepository) CreateContract(ctx context.Context, contract *domain.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *CompanyRepository) FindContract(ctx context.Context, companyID, contractID uuid.UUID) (*domain.Contract, error) {
	var contract domain.Contract
	err := r.db.WithContext(ctx).
		First(&contract, "id = ? AND company_id = ?", contractID, companyID).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *CompanyRepository) UpdateContract(ctx context.Context, contract *domain.Contract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

func (r *CompanyRepository) DeleteContract(ctx context.Context, companyID, contractID uuid.UUID) error {
	return deleteChild(r.db.WithContext(ctx), &domain.Contract{}, companyID, contractID)
}

func (r *CompanyRepository) CreateStudy(ctx context.Context, study *domain.Study) error {
	return r.db.WithContext(ctx).Create(study).Error
}

func (r *CompanyRepository) FindStudy(ctx context.Context, companyID, studyID uuid.UUID) (*domain.Study, error) {
	var study domain.Study
	err := r.db.WithContext(ctx).
		First(&study, "id = ? AND company_id = ?", studyID, companyID).Error
	if err != nil {
		return nil, err
	}
	return &study, nil
}

func (r *CompanyRepository) UpdateStudy(ctx context.Context, study *domain.Study) error {
	return r.db.WithContext(ctx).Save(study).Error
}

func (r *CompanyRepository) DeleteStudy(ctx context.Context, companyID, studyID uuid.UUID) error {
	return deleteChild(r.db.WithContext(ctx), &domain.Study{}, companyID, studyID)
}

func deleteChild(tx *gorm.DB, model interface{}, companyID, id uuid.UUID) error {
	res := tx.Where("id = ? AND company_id = ?", id, companyID).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
