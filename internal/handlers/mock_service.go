package handlers

import (
	"context"
	"net/http"

	"tabata_timer/internal/models"
	"tabata_timer/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	enabled       bool
	genTokenToken string
	genTokenErr   error
	parseSubject  string
	parseErr      error

	lastPin        string
	lastParseToken string
}

func (m *mockAuth) Enabled() bool { return m.enabled }
func (m *mockAuth) GenerateToken(pin string) (string, error) {
	m.lastPin = pin
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseSubject, m.parseErr
}

type mockSession struct {
	snap    service.SessionSnapshot
	err     error // returned by Select and the commands
	snapErr error // returned by Snapshot
	cueSent bool
	updates chan service.SessionUpdate

	calls      []string
	lastSelect service.SelectParams
}

func (m *mockSession) Select(ctx context.Context, p service.SelectParams) (service.SessionSnapshot, error) {
	m.calls = append(m.calls, "select")
	m.lastSelect = p
	return m.snap, m.err
}
func (m *mockSession) command(name string) (service.SessionSnapshot, error) {
	m.calls = append(m.calls, name)
	return m.snap, m.err
}
func (m *mockSession) Start(ctx context.Context) (service.SessionSnapshot, error) {
	return m.command("start")
}
func (m *mockSession) Pause(ctx context.Context) (service.SessionSnapshot, error) {
	return m.command("pause")
}
func (m *mockSession) Stop(ctx context.Context) (service.SessionSnapshot, error) {
	return m.command("stop")
}
func (m *mockSession) Reset(ctx context.Context) (service.SessionSnapshot, error) {
	return m.command("reset")
}
func (m *mockSession) Resync(ctx context.Context) (service.SessionSnapshot, error) {
	return m.command("resync")
}
func (m *mockSession) Snapshot() (service.SessionSnapshot, error) {
	return m.snap, m.snapErr
}
func (m *mockSession) Subscribe(int) (<-chan service.SessionUpdate, func()) {
	if m.updates == nil {
		m.updates = make(chan service.SessionUpdate)
	}
	return m.updates, func() {}
}
func (m *mockSession) TestCue() bool { return m.cueSent }

type mockWorkouts struct {
	list      []service.WorkoutSummary
	item      service.WorkoutSummary
	err       error
	export    []byte
	importErr error

	lastQuery  string
	lastSort   string
	lastID     string
	lastImport []byte
}

func (m *mockWorkouts) List(query, sort string) []service.WorkoutSummary {
	m.lastQuery, m.lastSort = query, sort
	return m.list
}
func (m *mockWorkouts) Get(id string) (service.WorkoutSummary, error) {
	m.lastID = id
	return m.item, m.err
}
func (m *mockWorkouts) Export(id string) ([]byte, error) {
	m.lastID = id
	return m.export, m.err
}
func (m *mockWorkouts) Import(data []byte) (service.WorkoutSummary, error) {
	m.lastImport = data
	return m.item, m.importErr
}

type mockProgress struct {
	summary service.ProgressSummary
	records map[string]models.WorkoutProgress
	resetID string
	cleared bool
}

func (m *mockProgress) Summary() service.ProgressSummary { return m.summary }
func (m *mockProgress) Get(id string) (models.WorkoutProgress, bool) {
	rec, ok := m.records[id]
	return rec, ok
}
func (m *mockProgress) ResetProgress(ctx context.Context, id string) { m.resetID = id }
func (m *mockProgress) ClearAll(ctx context.Context)                 { m.cleared = true }

type mockAudio struct {
	settings   models.AudioSettings
	lastUpdate service.AudioUpdate
}

func (m *mockAudio) Get() models.AudioSettings { return m.settings }
func (m *mockAudio) Update(ctx context.Context, u service.AudioUpdate) models.AudioSettings {
	m.lastUpdate = u
	if u.Enabled != nil {
		m.settings.Enabled = *u.Enabled
	}
	if u.Volume != nil {
		m.settings.Volume = *u.Volume
	}
	return m.settings
}

type mockEventLog struct {
	resp       []models.SessionEvent
	err        error
	lastFilter service.LogFilter
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.SessionEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	if s.Authorization == nil {
		s.Authorization = &mockAuth{}
	}
	h := NewHandler(s, nil)
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
