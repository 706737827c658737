package response

import "github.com/gin-gonic/gin"

// Error writes the single-message error shape used across the API:
// {"error": "..."}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ValidationErrors writes field-level validation detail:
// {"errors": {"field": ["msg", ...]}}.
func ValidationErrors(c *gin.Context, statusCode int, errs map[string][]string) {
	c.JSON(statusCode, gin.H{"errors": errs})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
