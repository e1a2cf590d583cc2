package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/swiftbill/swiftbill-api/internal/application/service"
	"github.com/swiftbill/swiftbill-api/internal/presentation/http/dto/response"
)

// ChatbotHandler handles chatbot query HTTP requests
type ChatbotHandler struct {
	chatbotService *service.ChatbotService
}

// NewChatbotHandler creates a new chatbot handler
func NewChatbotHandler(chatbotService *service.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbotService: chatbotService}
}

// ChatbotQueryRequest represents the chatbot query request body
type ChatbotQueryRequest struct {
	Question string `json:"question" binding:"required"`
}

// Query handles a chatbot question
// @Summary Chatbot query
// @Description Answer a plain-text business question from the user's data
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ChatbotQueryRequest true "Question"
// @Success 200 {object} response.APIResponse
// @Router /chatbot/query [post]
func (h *ChatbotHandler) Query(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req ChatbotQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	answer, err := h.chatbotService.Query(c.Request.Context(), *userID, req.Question)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Query answered successfully", answer)
}
