package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/eventku/eventku-api/internal/dto"
	"github.com/eventku/eventku-api/internal/middleware"
	"github.com/eventku/eventku-api/internal/service"
	"github.com/eventku/eventku-api/pkg/token"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	svc    service.UserService
	signer *token.Signer
}

func NewUserHandler(svc service.UserService, signer *token.Signer) *UserHandler {
	return &UserHandler{svc: svc, signer: signer}
}

func (h *UserHandler) RegisterRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.PATCH("/:username", h.UpdateProfile, auth)
}

// UpdateProfile edits the authenticated user's own profile and returns a
// freshly issued access token for the client to store.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	username := c.Param("username")

	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.Username != username {
		return echo.NewHTTPError(http.StatusForbidden, "cannot edit another user's profile")
	}

	var in service.UpdateProfileInput
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body").SetInternal(err)
	}
	if v, ok := params["firstname"]; ok && len(v) > 0 {
		in.FirstName = &v[0]
	}
	if v, ok := params["lastname"]; ok && len(v) > 0 {
		in.LastName = &v[0]
	}

	if fh, err := c.FormFile("avatar"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "cannot read avatar upload").SetInternal(err)
		}
		defer f.Close()
		in.Avatar, err = io.ReadAll(f)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "cannot read avatar upload").SetInternal(err)
		}
		in.AvatarField = "avatar"
	}

	user, err := h.svc.UpdateProfile(c.Request().Context(), username, in)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update profile").SetInternal(err)
	}

	var promotorID string
	if user.Promotor != nil {
		promotorID = user.Promotor.ID
	}
	accessToken, err := h.signer.Sign(user.ID, user.Username, promotorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue token").SetInternal(err)
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken: accessToken,
		Title:       "Profile updated",
		Description: "Your profile changes have been saved",
	})
}
