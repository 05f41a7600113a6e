package application

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Maryncell/iabot-landing-page/internal/domain"
	"github.com/Maryncell/iabot-landing-page/internal/email"
	"github.com/google/uuid"
)

// DemoService orquesta las sesiones de la demo guionada: busca o crea
// la sesión, corre el resolver, persiste el lead cuando la demo termina
// y arma los chips para el siguiente turno.
type DemoService struct {
	sessions    domain.SessionStore
	leadRepo    domain.LeadRepository
	emailClient *email.Client
	limiter     *RateLimiter
	typingDelay time.Duration

	// Un lock por sesión: los turnos de una misma sesión se procesan en
	// orden de llegada, los de sesiones distintas no se bloquean entre sí.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDemoService(
	sessions domain.SessionStore,
	leadRepo domain.LeadRepository,
	emailClient *email.Client,
	limiter *RateLimiter,
	typingDelay time.Duration,
) *DemoService {
	return &DemoService{
		sessions:    sessions,
		leadRepo:    leadRepo,
		emailClient: emailClient,
		limiter:     limiter,
		typingDelay: typingDelay,
		locks:       make(map[string]*sync.Mutex),
	}
}

// ProcessTurn ejecuta un turno completo de la conversación: mensaje del
// usuario adentro, respuesta del bot y chips afuera.
func (s *DemoService) ProcessTurn(req domain.DemoChatRequest) (*domain.DemoChatResponse, error) {
	if req.Message == "" {
		return nil, fmt.Errorf("el mensaje no puede estar vacío")
	}

	session := s.getOrCreateSession(req.SessionID)

	if s.limiter != nil {
		if ok, err := s.limiter.Allow(session.ID); !ok {
			return nil, err
		}
	}

	lock := s.sessionLock(session.ID)
	lock.Lock()
	defer lock.Unlock()

	// Releer bajo el lock: otro turno de la misma sesión pudo haber
	// avanzado el estado mientras esperábamos.
	if current, ok := s.sessions.Get(session.ID); ok {
		session = current
	}

	state := session.State
	if !req.DemoEnabled {
		// Con el switch de la demo apagado el guion no responde, pero la
		// frase de arranque explícita sí puede encenderla.
		state.Active = false
	}

	prevStep := state.Step
	reply, nextState := Resolve(state, req.Message)

	session.Messages = append(session.Messages,
		domain.ChatMessage{Sender: "user", Text: req.Message},
		domain.ChatMessage{Sender: "bot", Text: reply},
	)
	session.State = nextState
	session.Turn++
	session.UpdatedAt = time.Now()
	s.sessions.Save(session)

	if nextState.Step == domain.StepDemoEnd && prevStep != domain.StepDemoEnd {
		s.captureLead(session)
	}

	return &domain.DemoChatResponse{
		SessionID:     session.ID,
		Reply:         reply,
		Suggestions:   Suggestions(nextState),
		State:         nextState,
		TypingDelayMs: int(s.typingDelay / time.Millisecond),
	}, nil
}

// ToggleDemo prende o apaga la demo. Al encenderla, el transcript
// arranca con exactamente un mensaje de bienvenida del bot.
func (s *DemoService) ToggleDemo(sessionID *string, enabled bool) (*domain.DemoChatResponse, error) {
	session := s.getOrCreateSession(sessionID)

	lock := s.sessionLock(session.ID)
	lock.Lock()
	defer lock.Unlock()

	if current, ok := s.sessions.Get(session.ID); ok {
		session = current
	}

	var reply string
	if enabled {
		session.State = domain.ActivatedDialogueState()
		session.Messages = []domain.ChatMessage{{Sender: "bot", Text: replyWelcome}}
		reply = replyWelcome
	} else {
		session.State = domain.InitialDialogueState()
		session.Messages = nil
	}
	session.Turn++
	session.UpdatedAt = time.Now()
	s.sessions.Save(session)

	return &domain.DemoChatResponse{
		SessionID:     session.ID,
		Reply:         reply,
		Suggestions:   Suggestions(session.State),
		State:         session.State,
		TypingDelayMs: int(s.typingDelay / time.Millisecond),
	}, nil
}

// ResetSession vuelve la sesión a su estado inicial inactivo y limpia el log.
func (s *DemoService) ResetSession(sessionID string) (*domain.DemoSession, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("sesión %s no encontrada", sessionID)
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session.State = domain.InitialDialogueState()
	session.Messages = nil
	session.Turn++
	session.UpdatedAt = time.Now()
	s.sessions.Save(session)
	return session, nil
}

// GetSession devuelve el transcript y estado de una sesión, o nil si no existe.
func (s *DemoService) GetSession(sessionID string) *domain.DemoSession {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil
	}
	return session
}

func (s *DemoService) getOrCreateSession(sessionID *string) *domain.DemoSession {
	if sessionID != nil && *sessionID != "" {
		if session, ok := s.sessions.Get(*sessionID); ok {
			return session
		}
	}

	session := &domain.DemoSession{
		ID:        uuid.New().String(),
		State:     domain.InitialDialogueState(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.sessions.Save(session)
	return session
}

func (s *DemoService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

// captureLead persiste el lead capturado al cierre de la demo y avisa
// por email. Ningún fallo acá corta la conversación: se loguea y listo.
func (s *DemoService) captureLead(session *domain.DemoSession) {
	nombre := session.State.ContextData["nombre"]
	correo := session.State.ContextData["email"]
	if correo == "" {
		return
	}

	lead := &domain.Lead{
		Nombre:    nombre,
		Email:     correo,
		Vertical:  string(session.State.Vertical),
		Scenario:  session.State.Scenario,
		CreatedAt: time.Now(),
	}

	if s.leadRepo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.leadRepo.Save(ctx, lead); err != nil {
			log.Printf("[DemoService] error guardando lead %s: %v", correo, err)
		}
	}

	if s.emailClient != nil {
		if err := s.emailClient.SendLeadNotification(nombre, correo, string(session.State.Vertical), session.State.Scenario); err != nil {
			log.Printf("[DemoService] error notificando lead %s: %v", correo, err)
		}
	}

	log.Printf("[DemoService] lead capturado: %s <%s> (rubro=%s tema=%s)",
		nombre, correo, session.State.Vertical, session.State.Scenario)
}
