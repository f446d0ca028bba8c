package holiday

import (
	"net/http"
	"strconv"
	"time"

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

func (h *Handler) ListYear(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil || year < 1970 || year > 2200 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Ano inválido", nil)
		return
	}

	resp, err := h.service.ListYear(c.Request.Context(), year)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListCustom(c *gin.Context) {
	resp, err := h.service.ListCustom(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddCustom(c *gin.Context) {
	var req UpsertHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Entrada inválida", apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AddCustom(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) RemoveCustom(c *gin.Context) {
	if err := h.service.RemoveCustom(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) ListIgnored(c *gin.Context) {
	resp, err := h.service.ListIgnored(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddIgnored(c *gin.Context) {
	var req UpsertHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Entrada inválida", apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AddIgnored(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) RemoveIgnored(c *gin.Context) {
	if err := h.service.RemoveIgnored(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
