// Package handler contains the Gin HTTP handlers for the public site
// API and the admin panel. Every response uses the same envelope:
// success plus either data or message, with count/total/page/pages on
// list endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"cloudpillers-api/internal/auth"
	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/logger"
	"cloudpillers-api/internal/middleware"
	"cloudpillers-api/internal/service"
)

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondDataMessage(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{"success": true, "data": data, "message": message})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func respondList[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(items), "data": items})
}

func respondPage[T any](c *gin.Context, items []T, page service.PageInfo) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"total":   page.Total,
		"page":    page.Page,
		"pages":   page.Pages,
		"data":    items,
	})
}

func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondError maps domain errors onto the response envelope.
// notFoundMessage customizes the 404 wording per resource.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	var validationErrs validation.Errors
	var validationErr validation.Error
	switch {
	case errors.As(err, &validationErrs):
		respondFail(c, http.StatusBadRequest, validationErrs.Error())
	case errors.As(err, &validationErr):
		respondFail(c, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		if notFoundMessage == "" {
			notFoundMessage = "Resource not found"
		}
		respondFail(c, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondFail(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		respondFail(c, http.StatusUnauthorized, "Not authorized to access this route")
	case errors.Is(err, domain.ErrConflict):
		respondFail(c, http.StatusBadRequest, "Duplicate field value entered")
	case errors.Is(err, domain.ErrSelfDelete):
		respondFail(c, http.StatusBadRequest, "You cannot delete your own account")
	case errors.Is(err, domain.ErrAlreadySubscribed):
		respondFail(c, http.StatusBadRequest, "Email is already subscribed")
	default:
		logger.Error("Request failed",
			"request_id", middleware.GetRequestID(c),
			"path", c.FullPath(),
			"error", err,
		)
		respondFail(c, http.StatusInternalServerError, "Server Error")
	}
}

// pathID returns the :id route parameter, rejecting values that are not
// UUIDs before they reach the database.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondFail(c, http.StatusBadRequest, "id must be a valid UUID")
		return "", false
	}
	return id, true
}

func bindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
