package response

import (
	"github.com/gin-gonic/gin"
)

// Success menulis body sukses apa adanya, mis. gin.H{"user": u}.
// Bentuk body mengikuti kontrak API klien: {user}, {users}, {records}, dst.
func Success(c *gin.Context, status int, data gin.H) {
	c.JSON(status, data)
}

// Error menulis body error seragam: {code, message, details?}
func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	body := gin.H{
		"code":    errorCode,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}
