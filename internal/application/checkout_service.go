package application

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Maryncell/iabot-landing-page/internal/domain"
)

// CheckoutItem es una línea del checkout hospedado (plan o add-on).
type CheckoutItem struct {
	Nombre         string
	PrecioCentavos int64
}

// CheckoutProvider crea sesiones en el procesador de pagos hospedado y
// devuelve su identificador. La implementación concreta vive en
// internal/payments.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, customerEmail string, items []CheckoutItem) (string, error)
}

// CheckoutService arma la sesión de pago para un plan más sus add-ons.
// El total se recalcula siempre contra el catálogo: el TotalPrice que
// manda el front es solo referencia.
type CheckoutService struct {
	catalog   domain.CatalogRepository
	provider  CheckoutProvider
	validator *Validator
}

func NewCheckoutService(catalog domain.CatalogRepository, provider CheckoutProvider) *CheckoutService {
	return &CheckoutService{
		catalog:   catalog,
		provider:  provider,
		validator: &Validator{},
	}
}

func (s *CheckoutService) CreateSession(ctx context.Context, req domain.CreateCheckoutSessionRequest) (*domain.CreateCheckoutSessionResponse, error) {
	if err := s.validator.ValidateEmail(req.Email); err != nil {
		return nil, err
	}

	planName := normalizePlanName(req.Plan)
	if planName == "" {
		return nil, fmt.Errorf("el plan es requerido")
	}

	plan, err := s.catalog.GetPlanByName(ctx, planName)
	if err != nil {
		return nil, fmt.Errorf("error buscando plan '%s': %w", planName, err)
	}
	if plan == nil {
		return nil, fmt.Errorf("el plan '%s' no existe", planName)
	}

	features, err := s.catalog.GetFeaturesByIDs(ctx, req.SelectedFeaturesIds)
	if err != nil {
		return nil, fmt.Errorf("error buscando features: %w", err)
	}
	if len(features) != len(req.SelectedFeaturesIds) {
		return nil, fmt.Errorf("algún add-on seleccionado no existe")
	}

	items := make([]CheckoutItem, 0, len(features)+1)
	items = append(items, CheckoutItem{
		Nombre:         "Plan " + plan.Nombre,
		PrecioCentavos: toCents(plan.Precio),
	})
	total := plan.Precio
	for _, f := range features {
		items = append(items, CheckoutItem{
			Nombre:         f.Nombre,
			PrecioCentavos: toCents(f.Precio),
		})
		total += f.Precio
	}

	if req.TotalPrice > 0 && req.TotalPrice != total {
		log.Printf("[CheckoutService] total del front (%.2f) difiere del calculado (%.2f); se usa el calculado",
			req.TotalPrice, total)
	}

	sessionID, err := s.provider.CreateSession(ctx, req.Email, items)
	if err != nil {
		return nil, fmt.Errorf("error creando sesión de pago: %w", err)
	}

	return &domain.CreateCheckoutSessionResponse{ID: sessionID}, nil
}

// normalizePlanName saca el sufijo de precio que arrastra el select del
// front ("Avanzado ($149/mes)" -> "Avanzado").
func normalizePlanName(plan string) string {
	if idx := strings.Index(plan, "("); idx >= 0 {
		plan = plan[:idx]
	}
	return strings.TrimSpace(plan)
}

func toCents(price float64) int64 {
	return int64(price*100 + 0.5)
}
