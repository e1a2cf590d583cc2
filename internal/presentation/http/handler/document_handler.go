package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/application/service"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/internal/presentation/http/dto/response"
)

// DocumentHandler handles HTTP requests for one document kind. The same
// handler type serves invoices, quotations, purchases and the rest; routes
// register one instance per kind.
type DocumentHandler struct {
	documentService *service.DocumentService
	kind            enum.DocumentKind
	label           string
}

// NewDocumentHandler creates a document handler bound to one kind
func NewDocumentHandler(documentService *service.DocumentService, kind enum.DocumentKind) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		kind:            kind,
		label:           kind.String(),
	}
}

// DocumentLineRequest represents one line in a document request body. Any
// net_amount or totals the client sends are ignored; the server recomputes
// everything from these fields.
type DocumentLineRequest struct {
	ItemID          *string `json:"item_id"`
	Name            string  `json:"name" binding:"required"`
	Description     *string `json:"description"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	TaxPercent      float64 `json:"tax_percent"`
}

// DocumentRequest represents the create/update document request body
type DocumentRequest struct {
	CompanyID    *string               `json:"company_id"`
	CustomerID   *string               `json:"customer_id"`
	VendorID     *string               `json:"vendor_id"`
	DocumentDate string                `json:"document_date" binding:"required"`
	DueDate      *string               `json:"due_date"`
	Status       int                   `json:"status"`
	Notes        *string               `json:"notes"`
	Lines        []DocumentLineRequest `json:"lines" binding:"required,min=1"`
}

// UpdateStatusRequest represents the status patch request body
type UpdateStatusRequest struct {
	Status int `json:"status" binding:"min=0"`
}

// List handles listing documents of this handler's kind
// @Summary List documents
// @Description Get documents of one kind with pagination and filtering
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query int false "Status filter"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
func (h *DocumentHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var status *enum.DocumentStatus
	if s := c.Query("status"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || !enum.DocumentStatus(parsed).Valid() {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		st := enum.DocumentStatus(parsed)
		status = &st
	}

	startDate, err := parseDateQuery(c, "startDate")
	if err != nil {
		response.BadRequest(c, "Invalid startDate. Use YYYY-MM-DD")
		return
	}
	endDate, err := parseDateQuery(c, "endDate")
	if err != nil {
		response.BadRequest(c, "Invalid endDate. Use YYYY-MM-DD")
		return
	}
	customerID, err := parseUUIDQuery(c, "customer_id")
	if err != nil {
		response.BadRequest(c, "Invalid customer_id filter")
		return
	}
	vendorID, err := parseUUIDQuery(c, "vendor_id")
	if err != nil {
		response.BadRequest(c, "Invalid vendor_id filter")
		return
	}

	result, err := h.documentService.ListDocuments(c.Request.Context(), &service.ListDocumentsInput{
		UserID:     *userID,
		Kind:       h.kind,
		Pagination: getPagination(c),
		Search:     c.Query("search"),
		Status:     status,
		CustomerID: customerID,
		VendorID:   vendorID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, h.label+"s retrieved successfully", result)
}

// Get handles getting a single document
func (h *DocumentHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+h.label+" ID")
		return
	}

	document, err := h.documentService.GetDocument(c.Request.Context(), *userID, id, h.kind)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.label+" retrieved successfully", document)
}

// Create handles creating a document
func (h *DocumentHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := h.buildInput(*userID, &req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	document, err := h.documentService.CreateDocument(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, h.label+" created successfully", document)
}

// Update handles updating a document
func (h *DocumentHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+h.label+" ID")
		return
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := h.buildInput(*userID, &req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	document, err := h.documentService.UpdateDocument(c.Request.Context(), &service.UpdateDocumentInput{
		UserID:       input.UserID,
		ID:           id,
		Kind:         input.Kind,
		CompanyID:    input.CompanyID,
		CustomerID:   input.CustomerID,
		VendorID:     input.VendorID,
		DocumentDate: input.DocumentDate,
		DueDate:      input.DueDate,
		Status:       input.Status,
		Notes:        input.Notes,
		Lines:        input.Lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.label+" updated successfully", document)
}

// Delete handles deleting a document
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+h.label+" ID")
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), *userID, id, h.kind); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// UpdateStatus handles patching a document's status
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+h.label+" ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.documentService.UpdateDocumentStatus(c.Request.Context(), *userID, id, h.kind, enum.DocumentStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.label+" status updated successfully", nil)
}

func (h *DocumentHandler) buildInput(userID uuid.UUID, req *DocumentRequest) (*service.CreateDocumentInput, error) {
	documentDate, err := time.Parse("2006-01-02", req.DocumentDate)
	if err != nil {
		return nil, errInvalidDate("document_date")
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, errInvalidDate("due_date")
		}
		dueDate = &parsed
	}

	companyID, err := parseOptionalUUID(req.CompanyID)
	if err != nil {
		return nil, errInvalidID("company_id")
	}
	customerID, err := parseOptionalUUID(req.CustomerID)
	if err != nil {
		return nil, errInvalidID("customer_id")
	}
	vendorID, err := parseOptionalUUID(req.VendorID)
	if err != nil {
		return nil, errInvalidID("vendor_id")
	}

	lines := make([]service.DocumentLineInput, len(req.Lines))
	for i, line := range req.Lines {
		itemID, err := parseOptionalUUID(line.ItemID)
		if err != nil {
			return nil, errInvalidID("item_id")
		}
		lines[i] = service.DocumentLineInput{
			ItemID:          itemID,
			Name:            line.Name,
			Description:     line.Description,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			DiscountPercent: line.DiscountPercent,
			TaxPercent:      line.TaxPercent,
		}
	}

	return &service.CreateDocumentInput{
		UserID:       userID,
		Kind:         h.kind,
		CompanyID:    companyID,
		CustomerID:   customerID,
		VendorID:     vendorID,
		DocumentDate: documentDate,
		DueDate:      dueDate,
		Status:       enum.DocumentStatus(req.Status),
		Notes:        req.Notes,
		Lines:        lines,
	}, nil
}
