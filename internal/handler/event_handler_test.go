package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eventku/eventku-api/internal/dto"
	"github.com/eventku/eventku-api/internal/models"
	"github.com/eventku/eventku-api/internal/service"
	"github.com/eventku/eventku-api/pkg/token"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock EventService ---

type mockEventService struct {
	createFn         func(ctx context.Context, in service.CreateEventInput) (string, error)
	editFn           func(ctx context.Context, id string, in service.EditEventInput) error
	listFn           func(ctx context.Context) ([]models.Event, error)
	listByCategoryFn func(ctx context.Context, category string) ([]models.Event, error)
	getBySlugFn      func(ctx context.Context, slug string) (*models.Event, error)
}

func (m *mockEventService) CreateEvent(ctx context.Context, in service.CreateEventInput) (string, error) {
	return m.createFn(ctx, in)
}
func (m *mockEventService) EditEvent(ctx context.Context, id string, in service.EditEventInput) error {
	return m.editFn(ctx, id, in)
}
func (m *mockEventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return m.listFn(ctx)
}
func (m *mockEventService) ListEventsByCategory(ctx context.Context, category string) ([]models.Event, error) {
	return m.listByCategoryFn(ctx, category)
}
func (m *mockEventService) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	return m.getBySlugFn(ctx, slug)
}

// --- Helpers ---

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func createEventFields() map[string]string {
	return map[string]string{
		"title":           "Java Jazz Festival",
		"startAt":         "2026-09-12T19:00:00Z",
		"endAt":           "2026-09-12T23:00:00Z",
		"location":        "JIExpo Kemayoran",
		"description":     "Annual jazz festival",
		"city":            "Jakarta",
		"venueType":       "INDOOR",
		"category":        "MUSIC",
		"useVoucher":      "true",
		"priceReguler":    "150000",
		"capacityReguler": "500",
	}
}

func multipartBody(t *testing.T, fields map[string]string, fileField string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, "poster.png")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func promotorClaims() *token.Claims {
	return &token.Claims{UserID: "user-1", Username: "budi", PromotorID: "promotor-1"}
}

// --- Tests ---

func TestCreateEvent_Handler_Success(t *testing.T) {
	var got service.CreateEventInput
	svc := &mockEventService{
		createFn: func(ctx context.Context, in service.CreateEventInput) (string, error) {
			got = in
			return in.Title, nil
		},
	}

	e := newEcho()
	body, contentType := multipartBody(t, createEventFields(), "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("claims", promotorClaims())

	h := NewEventHandler(svc)
	err := h.CreateEvent(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.CreateEventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Java Jazz Festival", resp.Title)

	assert.Equal(t, "promotor-1", got.PromotorID)
	assert.True(t, got.UseVoucher)
	assert.Equal(t, 150000, got.RegularPrice)
	assert.Equal(t, 500, got.RegularCapacity)
	assert.Nil(t, got.VIPPrice)
	assert.Nil(t, got.Poster)
}

func TestCreateEvent_Handler_WithVIPAndPoster(t *testing.T) {
	var got service.CreateEventInput
	svc := &mockEventService{
		createFn: func(ctx context.Context, in service.CreateEventInput) (string, error) {
			got = in
			return in.Title, nil
		},
	}

	fields := createEventFields()
	fields["priceVip"] = "300000"
	fields["capacityVip"] = "50"
	poster := []byte("fake image bytes")

	e := newEcho()
	body, contentType := multipartBody(t, fields, "poster", poster)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("claims", promotorClaims())

	h := NewEventHandler(svc)
	err := h.CreateEvent(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, got.VIPPrice)
	assert.Equal(t, 300000, *got.VIPPrice)
	require.NotNil(t, got.VIPCapacity)
	assert.Equal(t, 50, *got.VIPCapacity)
	assert.Equal(t, poster, got.Poster)
}

func TestCreateEvent_Handler_DuplicateTitle(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, in service.CreateEventInput) (string, error) {
			return "", service.ErrTitleTaken
		},
	}

	e := newEcho()
	body, contentType := multipartBody(t, createEventFields(), "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("claims", promotorClaims())

	h := NewEventHandler(svc)
	err := h.CreateEvent(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCreateEvent_Handler_VIPPriceTooLow(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, in service.CreateEventInput) (string, error) {
			return "", service.ErrVIPPriceTooLow
		},
	}

	fields := createEventFields()
	fields["priceVip"] = "999"
	fields["capacityVip"] = "50"

	e := newEcho()
	body, contentType := multipartBody(t, fields, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("claims", promotorClaims())

	h := NewEventHandler(svc)
	err := h.CreateEvent(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
}

func TestCreateEvent_Handler_NotAPromotor(t *testing.T) {
	e := newEcho()
	body, contentType := multipartBody(t, createEventFields(), "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("claims", &token.Claims{UserID: "user-2", Username: "siti"})

	h := NewEventHandler(&mockEventService{})
	err := h.CreateEvent(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestCreateEvent_Handler_MissingTitle(t *testing.T) {
	fields := createEventFields()
	delete(fields, "title")

	e := newEcho()
	body, contentType := multipartBody(t, fields, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("claims", promotorClaims())

	h := NewEventHandler(&mockEventService{})
	err := h.CreateEvent(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestEditEvent_Handler_Success(t *testing.T) {
	var gotID string
	var gotIn service.EditEventInput
	svc := &mockEventService{
		editFn: func(ctx context.Context, id string, in service.EditEventInput) error {
			gotID = id
			gotIn = in
			return nil
		},
	}

	e := newEcho()
	body := `{"title":"New Title"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/events/ev-1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ev-1")

	h := NewEventHandler(svc)
	err := h.EditEvent(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ev-1", gotID)
	require.NotNil(t, gotIn.Title)
	assert.Equal(t, "New Title", *gotIn.Title)
	assert.Nil(t, gotIn.Slug)
	assert.Nil(t, gotIn.StartAt)
}

func TestEditEvent_Handler_NotFound(t *testing.T) {
	svc := &mockEventService{
		editFn: func(ctx context.Context, id string, in service.EditEventInput) error {
			return service.ErrEventNotFound
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/events/missing", strings.NewReader(`{"city":"Bandung"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	h := NewEventHandler(svc)
	err := h.EditEvent(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func sampleEvent() models.Event {
	return models.Event{
		ID:       "ev-1",
		Slug:     "java-jazz-festival-abc123",
		Title:    "Java Jazz Festival",
		StartAt:  time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC),
		EndAt:    time.Date(2026, 9, 12, 23, 0, 0, 0, time.UTC),
		Category: "MUSIC",
		Poster:   &models.Image{Name: "event_poster-poster-xyz"},
		Promotor: &models.Promotor{ID: "promotor-1", PromotorName: "Java Festival Production"},
		Tickets: []models.Ticket{
			{ID: "tk-1", Type: models.TicketReguler, Price: 150000, Capacity: 500, EventID: "ev-1"},
		},
	}
}

func TestListEvents_Handler_Success(t *testing.T) {
	svc := &mockEventService{
		listFn: func(ctx context.Context) ([]models.Event, error) {
			return []models.Event{sampleEvent()}, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewEventHandler(svc)
	err := h.ListEvents(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.EventSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Java Jazz Festival", resp[0].Title)
	require.NotNil(t, resp[0].Poster)
	assert.Equal(t, "event_poster-poster-xyz", resp[0].Poster.Name)
	require.NotNil(t, resp[0].Promotor)
	assert.Equal(t, "Java Festival Production", resp[0].Promotor.PromotorName)
	require.Len(t, resp[0].Tickets, 1)
	assert.Equal(t, models.TicketReguler, resp[0].Tickets[0].Type)
}

func TestListEventsByCategory_Handler_PassesParam(t *testing.T) {
	var gotCategory string
	svc := &mockEventService{
		listByCategoryFn: func(ctx context.Context, category string) ([]models.Event, error) {
			gotCategory = category
			return []models.Event{}, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/category/music", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category")
	c.SetParamValues("music")

	h := NewEventHandler(svc)
	err := h.ListEventsByCategory(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "music", gotCategory)
}

func TestGetEventDetail_Handler_Success(t *testing.T) {
	event := sampleEvent()
	svc := &mockEventService{
		getBySlugFn: func(ctx context.Context, slug string) (*models.Event, error) {
			assert.Equal(t, event.Slug, slug)
			return &event, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/"+event.Slug, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues(event.Slug)

	h := NewEventHandler(svc)
	err := h.GetEventDetail(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.EventDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Java Jazz Festival", resp.Title)
	require.NotNil(t, resp.Promotor)
	assert.Equal(t, "promotor-1", resp.Promotor.ID)
	require.Len(t, resp.Tickets, 1)
	assert.Equal(t, "ev-1", resp.Tickets[0].EventID)
}

func TestGetEventDetail_Handler_NotFound(t *testing.T) {
	svc := &mockEventService{
		getBySlugFn: func(ctx context.Context, slug string) (*models.Event, error) {
			return nil, service.ErrEventNotFound
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("nope")

	h := NewEventHandler(svc)
	err := h.GetEventDetail(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestListEvents_Handler_Error(t *testing.T) {
	svc := &mockEventService{
		listFn: func(ctx context.Context) ([]models.Event, error) {
			return nil, errors.New("db error")
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewEventHandler(svc)
	err := h.ListEvents(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}
