package api

import (
	"errors"
	"net/http"

	reqdto "barberbook/internal/handler/dto/request"
	resdto "barberbook/internal/handler/dto/response"
	"barberbook/internal/handler/httperr"
	"barberbook/internal/handler/middleware"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary User login
// @Description Login against the external auth endpoint and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	ident, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		case errors.Is(err, errs.ErrLoginFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, errs.ErrTransport):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking service is unreachable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		User: resdto.FromIdentity(ident),
	})
}

// @Summary User registration
// @Description Register a new account with the external auth endpoint
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	ident, err := h.authCommands.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		case errors.Is(err, errs.ErrRegistrationFailed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Registration was rejected", nil)
		case errors.Is(err, errs.ErrTransport):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking service is unreachable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIdentity(ident))
}

// @Summary User logout
// @Description Destroy the session and forget the persisted token
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authCommands.Logout()
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get the identity of the active session
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotLoggedIn, "Not authenticated", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromIdentity(ident))
}
