package repository

import (
	"context"
	"database/sql"

	"github.com/Maryncell/iabot-landing-page/internal/domain"
	"github.com/lib/pq"
)

type catalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) domain.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT plan_id, name, price, description
		FROM plan ORDER BY price ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		var p domain.Plan
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Precio, &p.Descripcion); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *catalogRepository) ListFeatures(ctx context.Context) ([]domain.Feature, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT feature_id, name, price, description
		FROM feature ORDER BY price ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var features []domain.Feature
	for rows.Next() {
		var f domain.Feature
		if err := rows.Scan(&f.ID, &f.Nombre, &f.Precio, &f.Descripcion); err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, rows.Err()
}

func (r *catalogRepository) GetPlanByName(ctx context.Context, nombre string) (*domain.Plan, error) {
	var p domain.Plan
	err := r.db.QueryRowContext(ctx, `
		SELECT plan_id, name, price, description
		FROM plan WHERE LOWER(name) = LOWER($1)`, nombre).
		Scan(&p.ID, &p.Nombre, &p.Precio, &p.Descripcion)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepository) GetFeaturesByIDs(ctx context.Context, ids []int) ([]domain.Feature, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT feature_id, name, price, description
		FROM feature WHERE feature_id = ANY($1) ORDER BY price ASC`,
		pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var features []domain.Feature
	for rows.Next() {
		var f domain.Feature
		if err := rows.Scan(&f.ID, &f.Nombre, &f.Precio, &f.Descripcion); err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, rows.Err()
}
