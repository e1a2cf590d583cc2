package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/application/service"
	"github.com/swiftbill/swiftbill-api/internal/presentation/http/dto/response"
)

// BankAccountHandler handles bank account HTTP requests
type BankAccountHandler struct {
	bankAccountService *service.BankAccountService
}

// NewBankAccountHandler creates a new bank account handler
func NewBankAccountHandler(bankAccountService *service.BankAccountService) *BankAccountHandler {
	return &BankAccountHandler{bankAccountService: bankAccountService}
}

// BankAccountRequest represents the create/update bank account request body
type BankAccountRequest struct {
	BankName       string  `json:"bank_name" binding:"required"`
	AccountNumber  string  `json:"account_number" binding:"required"`
	AccountHolder  string  `json:"account_holder"`
	IFSC           *string `json:"ifsc"`
	OpeningBalance float64 `json:"opening_balance"`
	IsDefault      bool    `json:"is_default"`
}

func (r *BankAccountRequest) toInput(userID uuid.UUID) *service.BankAccountInput {
	return &service.BankAccountInput{
		UserID:         userID,
		BankName:       r.BankName,
		AccountNumber:  r.AccountNumber,
		AccountHolder:  r.AccountHolder,
		IFSC:           r.IFSC,
		OpeningBalance: r.OpeningBalance,
		IsDefault:      r.IsDefault,
	}
}

// List handles listing bank accounts
func (h *BankAccountHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.bankAccountService.ListBankAccounts(c.Request.Context(), *userID, getPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bank accounts retrieved successfully", result)
}

// Get handles getting a single bank account
func (h *BankAccountHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bank account ID")
		return
	}

	account, err := h.bankAccountService.GetBankAccount(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bank account retrieved successfully", account)
}

// Create handles creating a bank account
func (h *BankAccountHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req BankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	account, err := h.bankAccountService.CreateBankAccount(c.Request.Context(), req.toInput(*userID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bank account created successfully", account)
}

// Update handles updating a bank account
func (h *BankAccountHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bank account ID")
		return
	}

	var req BankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	account, err := h.bankAccountService.UpdateBankAccount(c.Request.Context(), id, req.toInput(*userID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bank account updated successfully", account)
}

// Delete handles deleting a bank account
func (h *BankAccountHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bank account ID")
		return
	}

	if err := h.bankAccountService.DeleteBankAccount(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// SetDefault handles marking a bank account as default
func (h *BankAccountHandler) SetDefault(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bank account ID")
		return
	}

	if err := h.bankAccountService.SetDefaultBankAccount(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Default bank account updated successfully", nil)
}
