package auth

import (
	"errors"
	"net/http"
	"strconv"

	"urbanmobility/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/supplier/:id", h.AuthenticateSupplier)
}

func (h *Handler) AuthenticateSupplier(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid account ID")
		return
	}

	confirmation, err := h.service.AuthenticateSupplier(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You don't have the supplier role!")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to authenticate supplier")
		}
		return
	}

	response.Message(c, http.StatusOK, confirmation)
}
