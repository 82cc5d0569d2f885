package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/1739467001-svg/kaiyan/internal/handler/dto"
	hmocks "github.com/1739467001-svg/kaiyan/internal/handler/mocks"
	"github.com/1739467001-svg/kaiyan/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testServices struct {
	catalog   *hmocks.MockCatalogSvc
	booking   *hmocks.MockBookingSvc
	session   *hmocks.MockSessionSvc
	locale    *hmocks.MockLocaleSvc
	dashboard *hmocks.MockDashboardSvc
}

func setupRouter(t *testing.T) (*testServices, http.Handler) {
	t.Helper()
	svcs := &testServices{
		catalog:   hmocks.NewMockCatalogSvc(t),
		booking:   hmocks.NewMockBookingSvc(t),
		session:   hmocks.NewMockSessionSvc(t),
		locale:    hmocks.NewMockLocaleSvc(t),
		dashboard: hmocks.NewMockDashboardSvc(t),
	}

	h := NewHandler(svcs.catalog, svcs.booking, svcs.session, svcs.locale, svcs.dashboard)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/activities", h.BrowseActivities)
		api.GET("/activities/:id", h.GetActivity)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
		api.GET("/language", h.GetLanguage)
		api.POST("/language/toggle", h.ToggleLanguage)
		api.GET("/translations", h.ListTranslations)

		api.GET("/booking", h.GetBookingState)
		api.POST("/booking/select", h.SelectItem)
		api.POST("/booking/form", h.OpenBookingForm)
		api.POST("/booking/submit", h.SubmitBooking)
		api.POST("/booking/cancel", h.CancelBookingForm)
		api.POST("/booking/close", h.CloseBookingFlow)

		api.GET("/orders", h.ListOrders)
		api.GET("/orders/:id/ticket", h.GetTicket)

		admin := api.Group("/admin")
		{
			admin.POST("/login", h.AdminLogin)
			admin.POST("/logout", h.AdminLogout)
			admin.POST("/activities", h.CreateActivity)
			admin.DELETE("/activities/:id", h.DeleteActivity)
			admin.POST("/venues", h.CreateVenue)
			admin.DELETE("/venues/:id", h.DeleteVenue)
			admin.GET("/dashboard", h.Dashboard)
		}
	}

	return svcs, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Catalog ---

func TestHandler_BrowseActivities(t *testing.T) {
	svcs, r := setupRouter(t)

	activities := []*domain.Activity{
		{ID: "a1", Title: "亲子自然探索营", Theme: domain.ThemeNature, Price: 299},
	}
	svcs.catalog.EXPECT().BrowseActivities(mock.Anything, "自然", "nature").Return(activities, nil)

	w := doJSON(t, r, http.MethodGet, "/api/activities?query=%E8%87%AA%E7%84%B6&theme=nature", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ActivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "a1", resp[0].ID)
}

func TestHandler_BrowseActivities_UnknownTheme(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.catalog.EXPECT().BrowseActivities(mock.Anything, "", "cooking").
		Return(nil, domain.ErrValidation)

	w := doJSON(t, r, http.MethodGet, "/api/activities?theme=cooking", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetActivity_NotFound(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.catalog.EXPECT().GetActivity(mock.Anything, "ghost").Return(nil, domain.ErrActivityNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/activities/ghost", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListVenues(t *testing.T) {
	svcs, r := setupRouter(t)

	venues := []*domain.Venue{{ID: "v1", Name: "阳光多功能厅", IsAvailable: true}}
	svcs.catalog.EXPECT().ListVenues(mock.Anything).Return(venues, nil)

	w := doJSON(t, r, http.MethodGet, "/api/venues", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.True(t, resp[0].IsAvailable)
}

// --- Language ---

func TestHandler_ToggleLanguage(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.locale.EXPECT().Toggle(mock.Anything).Return(domain.LanguageEN, nil)

	w := doJSON(t, r, http.MethodPost, "/api/language/toggle", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LanguageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "en", resp.Language)
}

// --- Booking flow ---

func TestHandler_GetBookingState_MissingSession(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/booking", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SelectItem(t *testing.T) {
	svcs, r := setupRouter(t)

	snap := &service.FlowSnapshot{
		State:      service.FlowItemSelected,
		Screen:     domain.Screen{Name: domain.ScreenActivityDetail, ItemID: "a1"},
		ItemType:   domain.OrderTypeActivity,
		ItemID:     "a1",
		ItemTitle:  "亲子自然探索营",
		ItemAmount: 299,
	}
	svcs.booking.EXPECT().Select(mock.Anything, "s1", domain.OrderTypeActivity, "a1").Return(snap, nil)

	w := doJSON(t, r, http.MethodPost, "/api/booking/select",
		dto.SelectItemRequest{Type: "activity", ItemID: "a1"},
		map[string]string{SessionIDHeader: "s1"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.FlowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "item_selected", resp.State)
	assert.Equal(t, domain.ScreenActivityDetail, resp.Screen.Name)
}

func TestHandler_SelectItem_RejectsUnknownType(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/select",
		dto.SelectItemRequest{Type: "hotel", ItemID: "a1"},
		map[string]string{SessionIDHeader: "s1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitBooking(t *testing.T) {
	svcs, r := setupRouter(t)

	order := &domain.Order{
		ID:     "ORD-1",
		Type:   domain.OrderTypeActivity,
		ItemID: "a1",
		Title:  "亲子自然探索营",
		Amount: 299,
		Status: domain.OrderStatusPendingParticipation,
	}
	svcs.booking.EXPECT().
		Submit(mock.Anything, "s1", service.SubmitBookingInput{Name: "张三", Phone: "123"}).
		Return(order, nil)

	w := doJSON(t, r, http.MethodPost, "/api/booking/submit",
		dto.SubmitBookingRequest{Name: "张三", Phone: "123"},
		map[string]string{SessionIDHeader: "s1"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ORD-1", resp.ID)
	assert.Equal(t, "pending_participation", resp.Status)
}

func TestHandler_SubmitBooking_WrongState(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.booking.EXPECT().
		Submit(mock.Anything, "s1", mock.Anything).
		Return(nil, domain.ErrFlowConflict)

	w := doJSON(t, r, http.MethodPost, "/api/booking/submit",
		dto.SubmitBookingRequest{Name: "n", Phone: "p"},
		map[string]string{SessionIDHeader: "s1"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBookingForm_NoFlow(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.booking.EXPECT().CancelForm(mock.Anything, "s1").Return(nil, domain.ErrNoBookingFlow)

	w := doJSON(t, r, http.MethodPost, "/api/booking/cancel", nil,
		map[string]string{SessionIDHeader: "s1"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Orders ---

func TestHandler_GetTicket(t *testing.T) {
	svcs, r := setupRouter(t)

	order := &domain.Order{ID: "ORD-1", Status: domain.OrderStatusPendingParticipation}
	svcs.booking.EXPECT().OrderByID(mock.Anything, "ORD-1").Return(order, nil)
	svcs.locale.EXPECT().Translate(mock.Anything, "status.pending_participation").Return("待参与")

	w := doJSON(t, r, http.MethodGet, "/api/orders/ORD-1/ticket", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "待参与", resp.StatusLabel)
	assert.Equal(t, dto.OrganizerPhone, resp.OrganizerPhone)
	assert.Equal(t, dto.OrganizerWeChat, resp.OrganizerWeChat)
}

func TestHandler_GetTicket_NotFound(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.booking.EXPECT().OrderByID(mock.Anything, "ORD-404").Return(nil, domain.ErrOrderNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/orders/ORD-404/ticket", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Admin ---

func TestHandler_AdminLogin_Success(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.session.EXPECT().Authenticate(mock.Anything, "admin", "admin").Return("tok-1", nil)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login",
		dto.LoginRequest{Username: "admin", Password: "admin"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok-1", resp.Token)
}

func TestHandler_AdminLogin_InvalidCredentials(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.session.EXPECT().Authenticate(mock.Anything, "admin", "wrong").
		Return("", domain.ErrInvalidCredentials)
	svcs.locale.EXPECT().Translate(mock.Anything, "login.error").Return("用户名或密码错误")

	w := doJSON(t, r, http.MethodPost, "/api/admin/login",
		dto.LoginRequest{Username: "admin", Password: "wrong"}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "用户名或密码错误", resp.Error)
}

func TestHandler_CreateActivity(t *testing.T) {
	svcs, r := setupRouter(t)

	activity := &domain.Activity{ID: "new", Title: "恐龙化石挖掘体验", Theme: domain.ThemeScience, Price: 188}
	svcs.catalog.EXPECT().AddActivity(mock.Anything, mock.Anything).Return(activity, nil)

	w := doJSON(t, r, http.MethodPost, "/api/admin/activities",
		dto.CreateActivityRequest{Title: "恐龙化石挖掘体验", Price: 188, Theme: "science"}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ActivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "new", resp.ID)
}

func TestHandler_CreateActivity_MissingTitle(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/activities",
		dto.CreateActivityRequest{Price: 188, Theme: "science"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteActivity(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.catalog.EXPECT().RemoveActivity(mock.Anything, "a1").Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/activities/a1", nil, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Dashboard(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.dashboard.EXPECT().Stats(mock.Anything).Return(&domain.DashboardStats{
		Revenue: "¥28,450",
		Signups: 156,
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/admin/dashboard", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 156, resp.Signups)
}
