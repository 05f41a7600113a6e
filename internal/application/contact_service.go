package application

import (
	"context"
	"fmt"
	"log"

	"github.com/Maryncell/iabot-landing-page/internal/domain"
	"github.com/Maryncell/iabot-landing-page/internal/email"
	"github.com/Maryncell/iabot-landing-page/internal/infrastructure/repository"
)

// ContactService procesa los envíos del formulario de contacto de la
// landing: valida, persiste y notifica por email al equipo comercial.
type ContactService struct {
	repo        repository.ContactRepository
	emailClient *email.Client
	validator   *Validator
}

func NewContactService(repo repository.ContactRepository, emailClient *email.Client) *ContactService {
	return &ContactService{
		repo:        repo,
		emailClient: emailClient,
		validator:   &Validator{},
	}
}

func (s *ContactService) Create(ctx context.Context, req domain.CreateContactRequest) (int64, error) {
	if err := s.validator.ValidateName(req.Name, "nombre"); err != nil {
		return 0, err
	}
	if err := s.validator.ValidateEmail(req.Email); err != nil {
		return 0, err
	}
	if req.Phone != "" {
		if err := s.validator.ValidatePhone(req.Phone); err != nil {
			return 0, err
		}
	}

	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("error guardando contacto: %w", err)
	}

	// El email es cortesía: si falla, el formulario ya quedó guardado.
	if s.emailClient != nil {
		if err := s.emailClient.SendContactNotification(req); err != nil {
			log.Printf("[ContactService] error enviando notificación de contacto: %v", err)
		}
	}

	return id, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) UpdateEstado(ctx context.Context, id int64, estado domain.EstadoFormulario) error {
	if estado != domain.EstadoNuevo && estado != domain.EstadoRespondido {
		return fmt.Errorf("estado '%s' no válido", estado)
	}
	return s.repo.UpdateEstado(ctx, id, estado)
}
