package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/attendance_bot/internal/apperrors"
	portssvc "github.com/SscSPs/attendance_bot/internal/core/ports/services"
	"github.com/SscSPs/attendance_bot/internal/dto"
	"github.com/SscSPs/attendance_bot/internal/middleware"
	"github.com/SscSPs/attendance_bot/internal/platform/config"
	"github.com/SscSPs/attendance_bot/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserReaderSvc
	passwordHash string
	jwtSecret    string
	jwtDuration  time.Duration
	jwtIssuer    string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserReaderSvc, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		passwordHash: cfg.AdminPasswordHash,
		jwtSecret:    cfg.JWTSecret,
		jwtDuration:  cfg.JWTExpiryDuration,
		jwtIssuer:    cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserReaderSvc) error {
	h := NewAuthHandler(userService, cfg)

	limiterInstance, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(limiterInstance), h.Login)
	}
	return nil
}

// Login godoc
// @Summary Admin login
// @Description Authenticates an admin by chat user id and the shared admin password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, h.passwordHash) {
		logger.Warn("Admin login with wrong password", slog.String("user_id", req.UserID))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid user id or password"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotRegistered) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid user id or password"})
			return
		}
		logger.Error("Failed to resolve user during login", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "Failed to resolve user"})
		return
	}
	if !user.IsAdmin() {
		logger.Warn("Non-admin attempted admin login", slog.String("user_id", req.UserID))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid user id or password"})
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Admin logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
