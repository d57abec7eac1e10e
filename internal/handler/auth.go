package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/examportal/backend/internal/model"
	"github.com/examportal/backend/internal/service"
	"github.com/examportal/backend/internal/validator"
)

type AuthHandler struct {
	svc      *service.AuthService
	validate *validator.Validator
}

func NewAuthHandler(svc *service.AuthService, validate *validator.Validator) *AuthHandler {
	return &AuthHandler{svc: svc, validate: validate}
}

// Signup registers a new user and returns its id with an immediate access
// token.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, model.NewHTTPError(http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data."))
		return
	}

	if err := h.validate.ValidateSignup(req); err != nil {
		abortWithError(c, err)
		return
	}

	resp, err := h.svc.Signup(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login authenticates by email or phone and issues an access token plus a
// refresh token. The refresh token is also set as an http-only cookie
// scoped to the refresh path.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, model.NewHTTPError(http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data."))
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.setRefreshCookie(c, resp.RefreshToken)
	c.JSON(http.StatusOK, resp)
}

// Refresh exchanges a refresh token, taken from the request body or from
// the cookie set at login, for a new access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if c.Request.Method == http.MethodPost {
		_ = c.ShouldBindJSON(&req)
	}
	if req.RefreshToken == "" {
		req.RefreshToken, _ = c.Cookie(h.svc.CookieConfig().Name)
	}

	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout invalidates the stored refresh token and clears the cookie.
// Idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie(h.svc.CookieConfig().Name)
	if err := h.svc.Logout(c.Request.Context(), refreshToken); err != nil {
		abortWithError(c, err)
		return
	}

	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, model.LogoutResponse{Msg: "Logged out!"})
}

// GetUser is a bearer-protected probe used by clients to check whether
// their token is still good.
func (h *AuthHandler) GetUser(c *gin.Context) {
	c.String(http.StatusOK, "Success.")
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	cfg := h.svc.CookieConfig()
	c.SetCookie(cfg.Name, token, cfg.MaxAge, cfg.Path, "", false, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	cfg := h.svc.CookieConfig()
	c.SetCookie(cfg.Name, "", -1, cfg.Path, "", false, true)
}
