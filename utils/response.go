package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends the standard {status, message, data} envelope
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONPage sends the envelope for a paged list, with the match count before paging
func JSONPage(c *gin.Context, status int, data any, total int, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
		"total":   total,
	})
}

// JSONError sends the error envelope
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
