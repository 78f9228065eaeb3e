package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/eventku/eventku-api/internal/dto"
	"github.com/eventku/eventku-api/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
	g.POST("/register", h.Register)
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.svc.Register(c.Request().Context(), service.RegisterInput{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PromotorName: req.PromotorName,
	})
	if err != nil {
		if errors.Is(err, service.ErrIdentityTaken) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "registration failed").SetInternal(err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"username": user.Username})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.svc.Login(c.Request().Context(), req.UsernameEmail, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "login failed").SetInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed").SetInternal(err)
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken: result.AccessToken,
		Title:       "Login successful",
		Description: fmt.Sprintf("Welcome back, %s", result.User.Username),
	})
}
