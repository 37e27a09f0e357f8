package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driventix/service-hotel/internal/platform/domain"
)

// Success writes a 200 with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest writes a 400 with an error message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// NotFound writes a 404 with an error message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// Paginated writes a 200 with items plus pagination metadata.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// Error maps a domain error kind to its HTTP status. Errors that carry no
// recognized kind fall through to 402: the upstream booking contract maps
// every unclassified failure to "payment required", and clients depend on it.
func Error(c *gin.Context, err error) {
	status := http.StatusPaymentRequired

	switch domain.KindOf(err) {
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindPaymentRequired:
		status = http.StatusPaymentRequired
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindUnauthorized:
		status = http.StatusUnauthorized
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindConflict, domain.KindInvalidState:
		status = http.StatusConflict
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
