package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/middleware"
	"github.com/lshigami/studydash/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Log in
// @Description Exchange a username and password for an API token. Repeated logins return the same token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Username and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Username and password required"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Username and password required"})
		return
	}
	resp, err := ctrl.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyToken godoc
// @Summary Verify a token
// @Tags auth
// @Produce json
// @Security TokenAuth
// @Success 200 {object} dto.VerifyTokenResponse
// @Failure 401 {object} dto.VerifyTokenResponse
// @Router /verify-token [post]
func (ctrl *AuthController) VerifyToken(c *gin.Context) {
	key := middleware.TokenFromHeader(c.GetHeader("Authorization"))
	user, err := ctrl.authService.Authenticate(c.Request.Context(), key)
	if err != nil {
		if !errors.Is(err, service.ErrUnauthorized) {
			log.Error().Err(err).Msg("Token verification failed")
		}
		c.JSON(http.StatusUnauthorized, dto.VerifyTokenResponse{Valid: false})
		return
	}
	c.JSON(http.StatusOK, dto.VerifyTokenResponse{Valid: true, Username: user.Username})
}

// Logout godoc
// @Summary Log out
// @Description Delete the presented token. Succeeds whether or not the token exists.
// @Tags auth
// @Produce json
// @Security TokenAuth
// @Success 200 {object} dto.MessageResponse
// @Router /logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	key := middleware.TokenFromHeader(c.GetHeader("Authorization"))
	if err := ctrl.authService.Logout(c.Request.Context(), key); err != nil {
		log.Error().Err(err).Msg("Logout failed")
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}
