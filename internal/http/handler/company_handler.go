package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/labcrm/crm-api/internal/domain"
	"github.com/labcrm/crm-api/internal/mapper"
	"github.com/labcrm/crm-api/internal/service"
)

// CompanyHandler serves companies and their nested children.
type CompanyHandler struct {
	svc    *service.CompanyService
	logger *zap.Logger
}

func NewCompanyHandler(svc *service.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{svc: svc, logger: logger}
}

// List supports ?search=, ?sortBy=name|createdAt and ?sortOrder=asc|desc.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	params := domain.ClientListParams{
		Search:    r.URL.Query().Get("search"),
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
	}
	if err := validate.Struct(&params); err != nil {
		respondError(w, http.StatusBadRequest, "Bad Request", "invalid list parameters")
		return
	}
	companies, err := h.svc.List(r.Context(), params)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, mapper.ToClientSummaries(companies))
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	company, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	company, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, company)
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	var req domain.UpdateCompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	company, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Contacts ---

func (h *CompanyHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	var req domain.CreateContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	contact, err := h.svc.AddContact(r.Context(), companyID, req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, contact)
}

func (h *CompanyHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	contactID, ok := pathUUID(w, r, "contactID")
	if !ok {
		return
	}
	var req domain.UpdateContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	contact, err := h.svc.UpdateContact(r.Context(), companyID, contactID, req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, contact)
}

func (h *CompanyHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	contactID, ok := pathUUID(w, r, "contactID")
	if !ok {
		return
	}
	if err := h.svc.DeleteContact(r.Context(), companyID, contactID); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Quotations ---

func (h *CompanyHandler) AddQuotation(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	var req domain.CreateQuotationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	quotation, err := h.svc.AddQuotation(r.Context(), companyID, req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, quotation)
}

func (h *CompanyHandler) UpdateQuotation(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	quotationID, ok := pathUUID(w, r, "quotationID")
	if !ok {
		return
	}
	var req domain.UpdateQuotationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	quotation, err := h.svc.UpdateQuotation(r.Context(), companyID, quotationID, req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, quotation)
}

func (h *CompanyHandler) DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	quotationID, ok := pathUUID(w, r, "quotationID")
	if !ok {
		return
	}
	if err := h.svc.DeleteQuotation(r.Context(), companyID, quotationID); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Contracts ---

func (h *CompanyHandler) AddContract(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	var req domain.CreateContractRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	contract, err := h.svc.AddContract(r.Context(), companyID, req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, contract)
}

func (h *CompanyHandler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	contractID, ok := pathUUID(w, r, "contractID")
	if !ok {
		return
	}
	var req domain.UpdateContractRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	contract, err := h.svc.UpdateContract(r.Context(), companyID, contractID, req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, contract)
}

func (h *CompanyHandler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	contractID, ok := pathUUID(w, r, "contractID")
	if !ok {
		return
	}
	if err := h.svc.DeleteContract(r.Context(), companyID, contractID); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Studies ---

func (h *CompanyHandler) AddStudy(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	var req domain.CreateStudyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	study, err := h.svc.AddStudy(r.Context(), companyID, req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, study)
}

func (h *CompanyHandler) UpdateStudy(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	studyID, ok := pathUUID(w, r, "studyID")
	if !ok {
		return
	}
	var req domain.UpdateStudyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	study, err := h.svc.UpdateStudy(r.Context(), companyID, studyID, req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, study)
}

func (h *CompanyHandler) DeleteStudy(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "companyID")
	if !ok {
		return
	}
	studyID, ok := pathUUID(w, r, "studyID")
	if !ok {
		return
	}
	if err := h.svc.DeleteStudy(r.Context(), companyID, studyID); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
