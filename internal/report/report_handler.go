package report

import (
	"net/http"

	"github.com/Netosantos999/controle-ponto-app/internal/shared/apperror"
	"github.com/Netosantos999/controle-ponto-app/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) WorkedHours(c *gin.Context) {
	resp, err := h.service.WorkedHours(
		c.Request.Context(),
		c.Param("id"),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Overtime(c *gin.Context) {
	resp, err := h.service.Overtime(
		c.Request.Context(),
		c.Param("id"),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) OvertimeSummary(c *gin.Context) {
	resp, err := h.service.OvertimeSummary(
		c.Request.Context(),
		c.Param("id"),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) OvertimeAll(c *gin.Context) {
	resp, err := h.service.OvertimeAll(
		c.Request.Context(),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Absences(c *gin.Context) {
	resp, err := h.service.Absences(
		c.Request.Context(),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
