package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/examportal/backend/internal/model"
)

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}
