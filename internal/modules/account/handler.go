package account

import (
	"errors"
	"net/http"
	"strconv"

	"urbanmobility/internal/pkg/response"
	"urbanmobility/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/account", h.CreateAccount)
	rg.GET("/account", h.GetAllAccounts)
	rg.GET("/account/:id", h.GetAccountByID)
	rg.PUT("/account/:id", h.UpdateAccount)
	rg.DELETE("/account/:id", h.DeleteAccount)
}

func (h *Handler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	// Blank usernames never reach the service.
	if fields := validator.Validate(req); fields != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username is required")
		return
	}

	a, err := h.service.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		respondAccountError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, a)
}

func (h *Handler) GetAccountByID(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondAccountError(c, err)
		return
	}

	// An unknown id yields an empty payload, not a 404.
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) GetAllAccounts(c *gin.Context) {
	accounts, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondAccountError(c, err)
		return
	}

	response.Success(c, http.StatusOK, accounts)
}

func (h *Handler) UpdateAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		respondAccountError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondAccountError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Account was deleted successfully")
}

func accountID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid account ID")
		return 0, false
	}
	return id, true
}

func respondAccountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUsernameExists):
		response.Error(c, http.StatusConflict, "USERNAME_EXISTS",
			"This username already exists. Try another username.")
	case errors.Is(err, ErrInvalidPhone):
		response.Error(c, http.StatusBadRequest, "INVALID_PHONE",
			"Phone number must be exactly 10 digits")
	case errors.Is(err, ErrInvalidCard):
		response.Error(c, http.StatusBadRequest, "INVALID_CARD_NUMBER",
			"Payment info must be a 16 digit card number")
	case errors.Is(err, ErrEmptyUsername), errors.Is(err, ErrEmptyUpdate):
		response.Error(c, http.StatusBadRequest, "INVALID_ACCOUNT_DATA", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to process account request")
	}
}
