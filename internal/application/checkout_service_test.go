package application

import (
	"context"
	"testing"

	"github.com/Maryncell/iabot-landing-page/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCatalogRepo struct {
	plans    []domain.Plan
	features []domain.Feature
}

func (m *memCatalogRepo) ListPlans(context.Context) ([]domain.Plan, error) {
	return m.plans, nil
}

func (m *memCatalogRepo) ListFeatures(context.Context) ([]domain.Feature, error) {
	return m.features, nil
}

func (m *memCatalogRepo) GetPlanByName(_ context.Context, nombre string) (*domain.Plan, error) {
	for _, p := range m.plans {
		if p.Nombre == nombre {
			plan := p
			return &plan, nil
		}
	}
	return nil, nil
}

func (m *memCatalogRepo) GetFeaturesByIDs(_ context.Context, ids []int) ([]domain.Feature, error) {
	var out []domain.Feature
	for _, id := range ids {
		for _, f := range m.features {
			if f.ID == id {
				out = append(out, f)
			}
		}
	}
	return out, nil
}

type fakeCheckoutProvider struct {
	email string
	items []CheckoutItem
}

func (f *fakeCheckoutProvider) CreateSession(_ context.Context, email string, items []CheckoutItem) (string, error) {
	f.email = email
	f.items = items
	return "cs_test_123", nil
}

func testCatalog() *memCatalogRepo {
	return &memCatalogRepo{
		plans: []domain.Plan{
			{ID: 1, Nombre: "Básico", Precio: 49},
			{ID: 2, Nombre: "Avanzado", Precio: 149},
		},
		features: []domain.Feature{
			{ID: 10, Nombre: "Integración WhatsApp", Precio: 20},
			{ID: 11, Nombre: "Reportes avanzados", Precio: 15},
		},
	}
}

func TestCreateCheckoutSessionRecomputesTotal(t *testing.T) {
	provider := &fakeCheckoutProvider{}
	svc := NewCheckoutService(testCatalog(), provider)

	resp, err := svc.CreateSession(context.Background(), domain.CreateCheckoutSessionRequest{
		Plan:                "Avanzado ($149/mes)",
		SelectedFeaturesIds: []int{10, 11},
		Email:               "cliente@test.com",
		TotalPrice:          9999, // el total del front se ignora
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_123", resp.ID)
	assert.Equal(t, "cliente@test.com", provider.email)

	require.Len(t, provider.items, 3)
	assert.Equal(t, "Plan Avanzado", provider.items[0].Nombre)
	assert.Equal(t, int64(14900), provider.items[0].PrecioCentavos)
	assert.Equal(t, int64(2000), provider.items[1].PrecioCentavos)
	assert.Equal(t, int64(1500), provider.items[2].PrecioCentavos)
}

func TestCreateCheckoutSessionUnknownPlan(t *testing.T) {
	svc := NewCheckoutService(testCatalog(), &fakeCheckoutProvider{})

	_, err := svc.CreateSession(context.Background(), domain.CreateCheckoutSessionRequest{
		Plan:  "Interestelar",
		Email: "cliente@test.com",
	})
	assert.Error(t, err)
}

func TestCreateCheckoutSessionUnknownFeature(t *testing.T) {
	svc := NewCheckoutService(testCatalog(), &fakeCheckoutProvider{})

	_, err := svc.CreateSession(context.Background(), domain.CreateCheckoutSessionRequest{
		Plan:                "Básico",
		SelectedFeaturesIds: []int{999},
		Email:               "cliente@test.com",
	})
	assert.Error(t, err)
}

func TestCreateCheckoutSessionInvalidEmail(t *testing.T) {
	svc := NewCheckoutService(testCatalog(), &fakeCheckoutProvider{})

	_, err := svc.CreateSession(context.Background(), domain.CreateCheckoutSessionRequest{
		Plan:  "Básico",
		Email: "no-es-un-email",
	})
	assert.Error(t, err)
}
