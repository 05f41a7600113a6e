package repository

import (
	"context"
	"database/sql"

	"github.com/Maryncell/iabot-landing-page/internal/domain"
)

type leadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) domain.LeadRepository {
	return &leadRepository{db: db}
}

// Save inserta el lead capturado por la demo. Si el email ya existe se
// actualiza el rubro/tema: el mismo visitante puede recorrer la demo
// más de una vez.
func (r *leadRepository) Save(ctx context.Context, lead *domain.Lead) error {
	query := `
		INSERT INTO lead (name, email, vertical, scenario, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, vertical = EXCLUDED.vertical, scenario = EXCLUDED.scenario
		RETURNING lead_id
	`

	return r.db.QueryRowContext(ctx, query,
		lead.Nombre, lead.Email, lead.Vertical, lead.Scenario, lead.CreatedAt,
	).Scan(&lead.ID)
}

func (r *leadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT lead_id, name, email, vertical, scenario, created_at
		FROM lead ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		var l domain.Lead
		if err := rows.Scan(&l.ID, &l.Nombre, &l.Email, &l.Vertical, &l.Scenario, &l.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}
