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

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PaymentRequest represents the create/update payment request body
type PaymentRequest struct {
	CustomerID    *string `json:"customer_id"`
	VendorID      *string `json:"vendor_id"`
	DocumentID    *string `json:"document_id"`
	BankAccountID *string `json:"bank_account_id"`
	Direction     int     `json:"direction"`
	Mode          int     `json:"mode"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate   string  `json:"payment_date" binding:"required"`
	Reference     *string `json:"reference"`
	Notes         *string `json:"notes"`
}

func (r *PaymentRequest) toInput(userID uuid.UUID) (*service.PaymentInput, error) {
	paymentDate, err := time.Parse("2006-01-02", r.PaymentDate)
	if err != nil {
		return nil, errInvalidDate("payment_date")
	}
	customerID, err := parseOptionalUUID(r.CustomerID)
	if err != nil {
		return nil, errInvalidID("customer_id")
	}
	vendorID, err := parseOptionalUUID(r.VendorID)
	if err != nil {
		return nil, errInvalidID("vendor_id")
	}
	documentID, err := parseOptionalUUID(r.DocumentID)
	if err != nil {
		return nil, errInvalidID("document_id")
	}
	bankAccountID, err := parseOptionalUUID(r.BankAccountID)
	if err != nil {
		return nil, errInvalidID("bank_account_id")
	}
	return &service.PaymentInput{
		UserID:        userID,
		CustomerID:    customerID,
		VendorID:      vendorID,
		DocumentID:    documentID,
		BankAccountID: bankAccountID,
		Direction:     enum.PaymentDirection(r.Direction),
		Mode:          enum.PaymentMode(r.Mode),
		Amount:        r.Amount,
		PaymentDate:   paymentDate,
		Reference:     r.Reference,
		Notes:         r.Notes,
	}, nil
}

// List handles listing payments
func (h *PaymentHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var direction *enum.PaymentDirection
	if d := c.Query("direction"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || !enum.PaymentDirection(parsed).Valid() {
			response.BadRequest(c, "Invalid direction filter")
			return
		}
		dir := enum.PaymentDirection(parsed)
		direction = &dir
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

	result, err := h.paymentService.ListPayments(c.Request.Context(), &service.ListPaymentsInput{
		UserID:     *userID,
		Pagination: getPagination(c),
		Search:     c.Query("search"),
		Direction:  direction,
		CustomerID: customerID,
		VendorID:   vendorID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payments retrieved successfully", result)
}

// Get handles getting a single payment
func (h *PaymentHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", payment)
}

// Create handles recording a payment
func (h *PaymentHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := req.toInput(*userID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", payment)
}

// Update handles updating a payment
func (h *PaymentHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := req.toInput(*userID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment updated successfully", payment)
}

// Delete handles deleting a payment
func (h *PaymentHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
