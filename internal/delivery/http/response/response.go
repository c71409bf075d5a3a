package response

import (
	"github.com/FarazAhsan11/candidate-management/internal/domain"
	"github.com/FarazAhsan11/candidate-management/pkg/validation"

	"github.com/gin-gonic/gin"
)

// The wire shapes are fixed by the dashboard client: flat objects keyed by
// message/candidate/errors, not a generic envelope.

// Message sends a bare {message} response.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// Candidate sends a {message, candidate} response.
func Candidate(c *gin.Context, code int, message string, candidate *domain.Candidate) {
	c.JSON(code, gin.H{
		"message":   message,
		"candidate": candidate,
	})
}

// ValidationError sends the 400 shape {message, errors: [{path, message}]}.
func ValidationError(c *gin.Context, message string, issues []validation.FieldIssue) {
	c.JSON(400, gin.H{
		"message": message,
		"errors":  issues,
	})
}

// Error sends {message} or, when detail is non-empty, {message, error}.
func Error(c *gin.Context, code int, message, detail string) {
	if detail == "" {
		c.JSON(code, gin.H{"message": message})
		return
	}
	c.JSON(code, gin.H{"message": message, "error": detail})
}
