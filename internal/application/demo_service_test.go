package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Maryncell/iabot-landing-page/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.DemoSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*domain.DemoSession)}
}

func (m *memSessionStore) Get(id string) (*domain.DemoSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *memSessionStore) Save(s *domain.DemoSession) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
}

func (m *memSessionStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

type memLeadRepo struct {
	mu    sync.Mutex
	leads []domain.Lead
}

func (m *memLeadRepo) Save(_ context.Context, lead *domain.Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	lead.ID = int64(len(m.leads) + 1)
	m.leads = append(m.leads, *lead)
	return nil
}

func (m *memLeadRepo) List(_ context.Context) ([]domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Lead(nil), m.leads...), nil
}

func newTestDemoService(leads *memLeadRepo) *DemoService {
	return NewDemoService(newMemSessionStore(), leads, nil, nil, 500*time.Millisecond)
}

func TestToggleDemoOnStartsWithSingleWelcomeMessage(t *testing.T) {
	svc := newTestDemoService(&memLeadRepo{})

	resp, err := svc.ToggleDemo(nil, true)
	require.NoError(t, err)

	assert.True(t, resp.State.Active)
	assert.Equal(t, domain.StepAskBusinessType, resp.State.Step)

	session := svc.GetSession(resp.SessionID)
	require.NotNil(t, session)
	require.Len(t, session.Messages, 1)
	assert.Equal(t, "bot", session.Messages[0].Sender)
	assert.Equal(t, resp.Reply, session.Messages[0].Text)
}

func TestProcessTurnAppendsUserAndBotMessages(t *testing.T) {
	svc := newTestDemoService(&memLeadRepo{})

	start, err := svc.ToggleDemo(nil, true)
	require.NoError(t, err)

	resp, err := svc.ProcessTurn(domain.DemoChatRequest{
		SessionID:   &start.SessionID,
		Message:     "servicios",
		DemoEnabled: true,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StepSelectScenario, resp.State.Step)
	assert.Equal(t, 500, resp.TypingDelayMs)

	session := svc.GetSession(resp.SessionID)
	require.NotNil(t, session)
	require.Len(t, session.Messages, 3) // bienvenida + usuario + bot
	assert.Equal(t, "user", session.Messages[1].Sender)
	assert.Equal(t, "servicios", session.Messages[1].Text)
	assert.Equal(t, "bot", session.Messages[2].Sender)
}

func TestFullDemoWalkthroughCapturesLead(t *testing.T) {
	leads := &memLeadRepo{}
	svc := newTestDemoService(leads)

	start, err := svc.ToggleDemo(nil, true)
	require.NoError(t, err)
	sessionID := start.SessionID

	turno := func(msg string) *domain.DemoChatResponse {
		resp, err := svc.ProcessTurn(domain.DemoChatRequest{
			SessionID:   &sessionID,
			Message:     msg,
			DemoEnabled: true,
		})
		require.NoError(t, err, "mensaje %q", msg)
		return resp
	}

	turno("servicios")
	turno("agendamiento de turnos")
	turno("quiero esto para mi negocio")
	resp := turno("Soy Ana, ana@minegocio.com")

	assert.Equal(t, domain.StepDemoEnd, resp.State.Step)

	saved, err := leads.List(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Ana", saved[0].Nombre)
	assert.Equal(t, "ana@minegocio.com", saved[0].Email)
	assert.Equal(t, "servicios", saved[0].Vertical)
	assert.Equal(t, "agendamiento", saved[0].Scenario)

	// Un mensaje más en el cierre no duplica el lead.
	turno("gracias")
	saved, err = leads.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestProcessTurnWithDemoDisabledFallsBackToSmallTalk(t *testing.T) {
	svc := newTestDemoService(&memLeadRepo{})

	resp, err := svc.ProcessTurn(domain.DemoChatRequest{
		Message:     "hola",
		DemoEnabled: false,
	})
	require.NoError(t, err)

	assert.False(t, resp.State.Active)
	assert.NotEmpty(t, resp.Reply)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "iniciar demo", resp.Suggestions[0].Value)
}

func TestProcessTurnRejectsEmptyMessage(t *testing.T) {
	svc := newTestDemoService(&memLeadRepo{})

	_, err := svc.ProcessTurn(domain.DemoChatRequest{Message: ""})
	assert.Error(t, err)
}

func TestProcessTurnHonorsRateLimit(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 1)
	svc := NewDemoService(newMemSessionStore(), &memLeadRepo{}, nil, limiter, 0)

	start, err := svc.ToggleDemo(nil, true)
	require.NoError(t, err)

	_, err = svc.ProcessTurn(domain.DemoChatRequest{
		SessionID:   &start.SessionID,
		Message:     "servicios",
		DemoEnabled: true,
	})
	require.NoError(t, err)

	_, err = svc.ProcessTurn(domain.DemoChatRequest{
		SessionID:   &start.SessionID,
		Message:     "precios",
		DemoEnabled: true,
	})
	assert.Error(t, err)
}

func TestResetSessionClearsTranscript(t *testing.T) {
	svc := newTestDemoService(&memLeadRepo{})

	start, err := svc.ToggleDemo(nil, true)
	require.NoError(t, err)

	_, err = svc.ProcessTurn(domain.DemoChatRequest{
		SessionID:   &start.SessionID,
		Message:     "ventas",
		DemoEnabled: true,
	})
	require.NoError(t, err)

	session, err := svc.ResetSession(start.SessionID)
	require.NoError(t, err)

	assert.Equal(t, domain.InitialDialogueState(), session.State)
	assert.Empty(t, session.Messages)

	_, err = svc.ResetSession("no-existe")
	assert.Error(t, err)
}
