package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
	"github.com/BruksfildServices01/barbearia-api/internal/usecase/account"
)

// CookieConfig controls the session cookie set on register and login.
type CookieConfig struct {
	MaxAge int
	Secure bool
}

type AuthHandler struct {
	register *account.Register
	login    *account.Login
	logout   *account.Logout
	me       *account.GetMe
	confirm  *account.ConfirmEmail
	cookie   CookieConfig
}

func NewAuthHandler(
	register *account.Register,
	login *account.Login,
	logout *account.Logout,
	me *account.GetMe,
	confirm *account.ConfirmEmail,
	cookie CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		logout:   logout,
		me:       me,
		confirm:  confirm,
		cookie:   cookie,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"nome" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"telefone" binding:"max=20"`
	Password string `json:"senha" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

type sessionResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	Data    dto.UserView `json:"data"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bind(c, &req) {
		return
	}

	session, err := h.register.Execute(c.Request.Context(), account.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.writeSession(c, http.StatusCreated, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bind(c, &req) {
		return
	}

	session, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.writeSession(c, http.StatusOK, session)
}

// Logout clears the cookie and, when the request carried a valid token,
// revokes it.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), middleware.ClaimsFrom(c)); err != nil {
		log.WithError(err).Warn("token revocation failed")
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.cookie.Secure, true)
	httpresp.OK(c, gin.H{})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.me.Execute(c.Request.Context(), identity(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, user)
}

func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	if err := h.confirm.Execute(c.Request.Context(), c.Param("token")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"message": "E-mail confirmado com sucesso."})
}

func (h *AuthHandler) writeSession(c *gin.Context, status int, s *account.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, s.Token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)

	c.JSON(status, sessionResponse{
		Success: true,
		Token:   s.Token,
		Data:    s.User,
	})
}
