package domain

import "context"

// Plan es una fila del catálogo de planes. Descripcion lleva las
// viñetas separadas por saltos de línea, tal como las consume el front.
type Plan struct {
	ID          int     `json:"id"`
	Nombre      string  `json:"nombre"`
	Precio      float64 `json:"precio"`
	Descripcion string  `json:"descripcion"`
}

// Feature es un add-on contratable junto a un plan.
type Feature struct {
	ID          int     `json:"id"`
	Nombre      string  `json:"nombre"`
	Precio      float64 `json:"precio"`
	Descripcion string  `json:"descripcion"`
}

type CatalogRepository interface {
	ListPlans(ctx context.Context) ([]Plan, error)
	ListFeatures(ctx context.Context) ([]Feature, error)
	GetPlanByName(ctx context.Context, nombre string) (*Plan, error)
	GetFeaturesByIDs(ctx context.Context, ids []int) ([]Feature, error)
}
