package v1

import (
	"strconv"

	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name, label string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.BadRequest("Invalid " + label)
	}
	return id, nil
}

func currentUserID(c *gin.Context) (int64, error) {
	id, ok := c.Request.Context().Value(domain.KeyUserID).(int64)
	if !ok {
		return 0, apperror.Unauthorized("User not authenticated")
	}
	return id, nil
}
