package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/examportal/backend/internal/model"
	"github.com/examportal/backend/internal/service"
)

type ExamHandler struct {
	svc *service.ExamService
}

func NewExamHandler(svc *service.ExamService) *ExamHandler {
	return &ExamHandler{svc: svc}
}

func (h *ExamHandler) List(c *gin.Context) {
	exams, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.ExamListResponse{Exams: exams})
}

type createExamRequest struct {
	Name string `json:"name"`
}

func (h *ExamHandler) Create(c *gin.Context) {
	var req createExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, model.NewHTTPError(http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data."))
		return
	}

	exam, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ExamCreateResponse{Exam: *exam})
}
