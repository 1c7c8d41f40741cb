package response

import (
	"github.com/gin-gonic/gin"
)

// Thin helpers that pin down the wire shapes of the API:
// success bodies carry {"message": ...}, failures {"error": ...}, and
// validation failures are the raw field-keyed map.

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func FieldErrors(c *gin.Context, status int, fields map[string]string) {
	c.JSON(status, fields)
}
