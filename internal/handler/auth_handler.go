package handler

import (
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/middleware"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// RefreshCookieName holds the refresh token for browser clients
const RefreshCookieName = "fitkit-refresh-token"

// AuthHandler handles authentication and profile endpoints
type AuthHandler struct {
	authService        *service.AuthService
	tokenService       *service.TokenService
	refreshTokenExpiry time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, tokenService *service.TokenService, refreshTokenExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:        authService,
		tokenService:       tokenService,
		refreshTokenExpiry: refreshTokenExpiry,
	}
}

type registerRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=50"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=6"`
	Age           int     `json:"age" validate:"required,gte=13,lte=120"`
	Weight        float64 `json:"weight" validate:"required,gte=30,lte=300"`
	Height        float64 `json:"height" validate:"required,gte=100,lte=250"`
	Gender        string  `json:"gender" validate:"omitempty,oneof=male female"`
	ActivityLevel string  `json:"activityLevel" validate:"required,oneof=sedentary light moderate active very_active"`
	Goal          string  `json:"goal" validate:"required,oneof=loss maintain gain"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type profileRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=2,max=50"`
	Age           *int     `json:"age" validate:"omitempty,gte=13,lte=120"`
	Weight        *float64 `json:"weight" validate:"omitempty,gte=30,lte=300"`
	Height        *float64 `json:"height" validate:"omitempty,gte=100,lte=250"`
	Gender        *string  `json:"gender" validate:"omitempty,oneof=male female"`
	ActivityLevel *string  `json:"activityLevel" validate:"omitempty,oneof=sedentary light moderate active very_active"`
	Goal          *string  `json:"goal" validate:"omitempty,oneof=loss maintain gain"`
}

func clientInfo(c *fiber.Ctx) service.ClientInfo {
	return service.ClientInfo{UserAgent: c.Get(fiber.HeaderUserAgent), IPAddress: c.IP()}
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	res, err := h.authService.Register(c.UserContext(), service.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Age:           req.Age,
		WeightKg:      req.Weight,
		HeightCm:      req.Height,
		Gender:        domain.Gender(req.Gender),
		ActivityLevel: domain.ActivityLevel(req.ActivityLevel),
		Goal:          domain.Goal(req.Goal),
	}, clientInfo(c))
	if err != nil {
		return handleError(c, err)
	}

	h.setRefreshCookie(c, res.Tokens.RefreshToken, time.Now().Add(h.refreshTokenExpiry))
	return ok(c, fiber.StatusCreated, res, "User registered successfully")
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	res, err := h.authService.Login(c.UserContext(), req.Email, req.Password, clientInfo(c))
	if err != nil {
		return handleError(c, err)
	}

	h.setRefreshCookie(c, res.Tokens.RefreshToken, time.Now().Add(h.refreshTokenExpiry))
	return ok(c, fiber.StatusOK, res, "Login successful")
}

// Refresh handles POST /api/auth/refresh. The token comes from the body or
// the refresh cookie.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	token := h.presentedRefreshToken(c)
	if token == "" {
		return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, "Missing refresh token")
	}

	pair, err := h.tokenService.Refresh(c.UserContext(), token, clientInfo(c))
	if err != nil {
		return handleError(c, err)
	}

	h.setRefreshCookie(c, pair.RefreshToken, time.Now().Add(h.refreshTokenExpiry))
	return ok(c, fiber.StatusOK, pair, "")
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := h.presentedRefreshToken(c); token != "" {
		if err := h.authService.Logout(c.UserContext(), token); err != nil {
			return handleError(c, err)
		}
	}
	h.setRefreshCookie(c, "", time.Unix(0, 0))
	return ok(c, fiber.StatusOK, nil, "Logged out")
}

// LogoutAll handles POST /api/auth/logout-all
func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	if err := h.authService.LogoutAll(c.UserContext(), middleware.GetUserID(c)); err != nil {
		return handleError(c, err)
	}
	h.setRefreshCookie(c, "", time.Unix(0, 0))
	return ok(c, fiber.StatusOK, nil, "Logged out from all devices")
}

func (h *AuthHandler) presentedRefreshToken(c *fiber.Ctx) string {
	var req refreshRequest
	if len(c.Body()) > 0 {
		_ = c.BodyParser(&req)
	}
	if req.RefreshToken != "" {
		return req.RefreshToken
	}
	return c.Cookies(RefreshCookieName)
}

// GetProfile handles GET /api/auth/profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.authService.GetProfile(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, user, "")
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	upd := service.ProfileUpdate{
		Name:     req.Name,
		Age:      req.Age,
		WeightKg: req.Weight,
		HeightCm: req.Height,
	}
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		upd.Gender = &g
	}
	if req.ActivityLevel != nil {
		a := domain.ActivityLevel(*req.ActivityLevel)
		upd.ActivityLevel = &a
	}
	if req.Goal != nil {
		g := domain.Goal(*req.Goal)
		upd.Goal = &g
	}

	user, err := h.authService.UpdateProfile(c.UserContext(), middleware.GetUserID(c), upd)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, user, "Profile updated")
}
