package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labcrm/crm-api/internal/domain"
)

func TestCompanyCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, err := env.companies.Create(ctx, domain.CreateCompanyRequest{
		Name:    "한국바이오",
		Address: "서울시 강남구",
		Contacts: []domain.CreateContactRequest{
			{Name: "김담당", Email: "kim@example.com", IsPrimary: true},
		},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, company.ID)
	require.Len(t, company.Contacts, 1)

	got, err := env.companies.Get(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "한국바이오", got.Name)
	require.Len(t, got.Contacts, 1)
	assert.Equal(t, "김담당", got.Contacts[0].Name)

	newName := "한국바이오텍"
	updated, err := env.companies.Update(ctx, company.ID, domain.UpdateCompanyRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)

	require.NoError(t, env.companies.Delete(ctx, company.ID))
	_, err = env.companies.Get(ctx, company.ID)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestCompanyDeleteCascadesToChildrenOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, err := env.companies.Create(ctx, domain.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = env.companies.AddQuotation(ctx, company.ID, domain.CreateQuotationRequest{
		QuotationNumber: "2025-06-001",
		QuotationName:   "견적",
		QuotationAmount: "1,000,000",
	})
	require.NoError(t, err)

	meeting, err := env.meetings.Create(ctx, domain.CreateMeetingRequest{
		CompanyID: company.ID,
		Title:     "킥오프",
		Date:      "2025-06-20",
	})
	require.NoError(t, err)

	task, err := env.tasks.Create(ctx, domain.CreateTaskRequest{
		CompanyID: company.ID,
		Name:      "보고서",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	require.NoError(t, err)

	require.NoError(t, env.companies.Delete(ctx, company.ID))

	// Owned children are gone with the company.
	var quotationCount int64
	env.db.Model(&domain.Quotation{}).Count(&quotationCount)
	assert.Zero(t, quotationCount)

	// Meetings and tasks survive as orphans.
	_, err = env.meetings.Get(ctx, meeting.ID)
	assert.NoError(t, err)
	_, err = env.tasks.Get(ctx, task.ID)
	assert.NoError(t, err)

	// Derived views show them under the placeholder name.
	d, err := env.dashboard.Dashboard(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, d.UpcomingTasks)
	assert.Equal(t, "Unknown", d.UpcomingTasks[0].CompanyName)
}

func TestContractFromQuotationCopiesDiscountedAmount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, err := env.companies.Create(ctx, domain.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	quotation, err := env.companies.AddQuotation(ctx, company.ID, domain.CreateQuotationRequest{
		QuotationNumber: "2025-06-001",
		QuotationName:   "견적",
		QuotationAmount: "1,000,000",
		DiscountRate:    "10",
		PaymentTerms:    domain.NewStructuredTerms("450,000", nil, "450,000"),
	})
	require.NoError(t, err)

	contract, err := env.companies.AddContract(ctx, company.ID, domain.CreateContractRequest{
		QuotationID:    &quotation.ID,
		ContractNumber: "C-2025-001",
		ContractName:   "계약",
	})
	require.NoError(t, err)
	assert.Equal(t, "900000", contract.ContractAmount)
	require.NotNil(t, contract.PaymentTerms.Structured)
	assert.Equal(t, "450,000", contract.PaymentTerms.Structured.Advance)

	// One-time copy: changing the quotation afterwards leaves the
	// contract untouched.
	newAmount := "2,000,000"
	_, err = env.companies.UpdateQuotation(ctx, company.ID, quotation.ID, domain.UpdateQuotationRequest{
		QuotationAmount: &newAmount,
	})
	require.NoError(t, err)

	got, err := env.companies.Get(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, got.Contracts, 1)
	assert.Equal(t, "900000", got.Contracts[0].ContractAmount)
}

func TestContractWithExplicitAmountIgnoresQuotation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, err := env.companies.Create(ctx, domain.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	quotation, err := env.companies.AddQuotation(ctx, company.ID, domain.CreateQuotationRequest{
		QuotationNumber: "2025-06-001",
		QuotationName:   "견적",
		QuotationAmount: "1,000,000",
		DiscountRate:    "10",
	})
	require.NoError(t, err)

	contract, err := env.companies.AddContract(ctx, company.ID, domain.CreateContractRequest{
		QuotationID:    &quotation.ID,
		ContractNumber: "C-2025-002",
		ContractName:   "계약",
		ContractAmount: "1,234,567",
	})
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", contract.ContractAmount)
}

func TestAddContactPrimaryFlagMovesOver(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, err := env.companies.Create(ctx, domain.CreateCompanyRequest{
		Name:     "Acme",
		Contacts: []domain.CreateContactRequest{{Name: "first", IsPrimary: true}},
	})
	require.NoError(t, err)

	_, err = env.companies.AddContact(ctx, company.ID, domain.CreateContactRequest{
		Name: "second", IsPrimary: true,
	})
	require.NoError(t, err)

	got, err := env.companies.Get(ctx, company.ID)
	require.NoError(t, err)
	primaries := 0
	for _, c := range got.Contacts {
		if c.IsPrimary {
			primaries++
			assert.Equal(t, "second", c.Name)
		}
	}
	assert.Equal(t, 1, primaries)
}

func TestCompanyListSearchAndSort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, name := range []string{"banana", "Apple", "apricot"} {
		_, err := env.companies.Create(ctx, domain.CreateCompanyRequest{Name: name})
		require.NoError(t, err)
	}

	got, err := env.companies.List(ctx, domain.ClientListParams{Search: "ap"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = env.companies.List(ctx, domain.ClientListParams{SortBy: "name", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "banana", got[0].Name)
}
