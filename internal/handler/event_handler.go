package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/eventku/eventku-api/internal/dto"
	"github.com/eventku/eventku-api/internal/middleware"
	"github.com/eventku/eventku-api/internal/service"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.POST("", h.CreateEvent, auth)
	g.GET("", h.ListEvents)
	g.GET("/category/:category", h.ListEventsByCategory)
	g.GET("/:slug", h.GetEventDetail)
	g.PUT("/:id", h.EditEvent, auth)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.PromotorID == "" {
		return echo.NewHTTPError(http.StatusForbidden, "only promotors can create events")
	}

	in := service.CreateEventInput{
		Title:           req.Title,
		StartAt:         req.StartAt,
		EndAt:           req.EndAt,
		Location:        req.Location,
		Description:     req.Description,
		City:            req.City,
		VenueType:       req.VenueType,
		Category:        req.Category,
		UseVoucher:      req.UseVoucher == "true",
		PromotorID:      claims.PromotorID,
		RegularPrice:    req.PriceReguler,
		RegularCapacity: req.CapacityReguler,
		VIPPrice:        req.PriceVip,
		VIPCapacity:     req.CapacityVip,
	}

	if fh, err := c.FormFile("poster"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "cannot read poster upload").SetInternal(err)
		}
		defer f.Close()
		in.Poster, err = io.ReadAll(f)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "cannot read poster upload").SetInternal(err)
		}
		in.PosterField = "poster"
	}

	title, err := h.svc.CreateEvent(c.Request().Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleTaken):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrVIPPriceTooLow),
			errors.Is(err, service.ErrNegativeCapacity):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to create event").SetInternal(err)
		}
	}

	return c.JSON(http.StatusCreated, dto.CreateEventResponse{Title: title})
}

func (h *EventHandler) EditEvent(c echo.Context) error {
	id := c.Param("id")

	var req dto.EditEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}

	in := service.EditEventInput{
		Slug:        req.Slug,
		Title:       req.Title,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		City:        req.City,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
		VenueType:   req.VenueType,
	}

	if err := h.svc.EditEvent(c.Request().Context(), id, in); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to edit event").SetInternal(err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list events").SetInternal(err)
	}

	resp := make([]dto.EventSummaryResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToEventSummaryResponse(&e)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) ListEventsByCategory(c echo.Context) error {
	events, err := h.svc.ListEventsByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list events").SetInternal(err)
	}

	resp := make([]dto.EventSummaryResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToEventSummaryResponse(&e)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) GetEventDetail(c echo.Context) error {
	event, err := h.svc.GetEventBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch event").SetInternal(err)
	}

	return c.JSON(http.StatusOK, dto.ToEventDetailResponse(event))
}
