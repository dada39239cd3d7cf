package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"timeboard/internal/display"
	"timeboard/internal/models"
	"timeboard/internal/service"
	"timeboard/internal/timer"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockPanel struct {
	value     models.PanelValue
	lastField service.Field
	lastDir   timer.Direction
	lastText  [3]string
	adjusts   int
}

func (m *mockPanel) Adjust(field service.Field, dir timer.Direction) models.PanelValue {
	m.adjusts++
	m.lastField, m.lastDir = field, dir
	return m.value
}
func (m *mockPanel) SetPanel(h, mi, s int) models.PanelValue {
	m.value = models.PanelValue{Hours: h, Minutes: mi, Seconds: s}
	return m.value
}
func (m *mockPanel) SetPanelText(h, mi, s string) models.PanelValue {
	m.lastText = [3]string{h, mi, s}
	return m.value
}
func (m *mockPanel) PanelValue() models.PanelValue { return m.value }

type mockCountdown struct {
	state        models.TimerState
	loadCalls    []int64
	panelLoads   int
	toggleCalled int
}

func (m *mockCountdown) Load(ctx context.Context, ms int64) models.TimerState {
	m.loadCalls = append(m.loadCalls, ms)
	return m.state
}
func (m *mockCountdown) LoadFromPanel(ctx context.Context) models.TimerState {
	m.panelLoads++
	return m.state
}
func (m *mockCountdown) Toggle(ctx context.Context) models.TimerState {
	m.toggleCalled++
	return m.state
}
func (m *mockCountdown) Advance(ctx context.Context, now time.Time) bool { return false }

type mockMonitoring struct {
	state models.TimerState
	err   error
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.TimerState, error) {
	return m.state, m.err
}

type mockSnapshots struct {
	saveResult service.SaveResult
	saveErr    error
	snap       models.Snapshot
	getErr     error
	panel      models.PanelValue
	restoreErr error
	lastKey    string
}

func (m *mockSnapshots) SaveSnapshot(ctx context.Context, key string) (service.SaveResult, error) {
	m.lastKey = key
	return m.saveResult, m.saveErr
}
func (m *mockSnapshots) RestoreSnapshot(ctx context.Context, key string) (models.PanelValue, error) {
	m.lastKey = key
	return m.panel, m.restoreErr
}
func (m *mockSnapshots) GetSnapshot(ctx context.Context, key string) (models.Snapshot, error) {
	m.lastKey = key
	return m.snap, m.getErr
}

type mockBoard struct {
	visible bool
}

func (m *mockBoard) ToggleBoard() bool  { m.visible = !m.visible; return m.visible }
func (m *mockBoard) BoardVisible() bool { return m.visible }

type mockInput struct {
	state  models.TimerState
	err    error
	events []service.InputEvent
}

func (m *mockInput) Dispatch(ctx context.Context, ev service.InputEvent) (models.TimerState, error) {
	m.events = append(m.events, ev)
	return m.state, m.err
}

type mockEventLog struct {
	resp  []models.TimerEvent
	err   error
	calls int
	last  service.LogFilter
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.TimerEvent, error) {
	m.calls++
	m.last = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	return newTestRouterWithHub(s, nil)
}

func newTestRouterWithHub(s *service.Service, hub *display.Hub) *gin.Engine {
	h := NewHandler(s, hub, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// authedRequest builds a request carrying a bearer token.
func authedRequest(method, target, body string) *http.Request {
	req := newRequest(method, target, body)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}

func newRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}
