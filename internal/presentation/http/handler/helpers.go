package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// getPagination parses page/per_page/limit query parameters
func getPagination(c *gin.Context) *pagination.Params {
	params := pagination.Default()
	if p, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = p
	}
	if pp, err := strconv.Atoi(c.Query("per_page")); err == nil {
		params.PerPage = pp
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil {
		params.Limit = l
	}
	params.Validate()
	return params
}

// parseDateQuery parses a YYYY-MM-DD query parameter, nil when absent
func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// parseUUIDQuery parses a UUID query parameter, nil when absent
func parseUUIDQuery(c *gin.Context, name string) (*uuid.UUID, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func errInvalidDate(field string) error {
	return errors.New("Invalid " + field + ". Use YYYY-MM-DD")
}

func errInvalidID(field string) error {
	return errors.New("Invalid " + field)
}

// parseOptionalUUID parses an optional UUID string from a request body
func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
