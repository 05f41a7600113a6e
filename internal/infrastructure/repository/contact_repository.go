package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Maryncell/iabot-landing-page/internal/domain"
	"github.com/lib/pq"
)

type ContactRepository interface {
	Create(ctx context.Context, c domain.CreateContactRequest) (int64, error)
	List(ctx context.Context) ([]domain.Contact, error)
	UpdateEstado(ctx context.Context, id int64, estado domain.EstadoFormulario) error
}

type contactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, req domain.CreateContactRequest) (int64, error) {
	query := `
		INSERT INTO contact_form (name, email, phone, plan, message, selected_features, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'Nuevo')
		RETURNING form_id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		req.Name, req.Email, req.Phone, req.Plan, req.Message,
		pq.Array(req.SelectedFeatures), req.TotalPrice,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *contactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT form_id, name, email, phone, plan, message, selected_features, total_price, status, sent_date, response_date
		FROM contact_form ORDER BY sent_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		var features pq.StringArray
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.Plan, &c.Message,
			&features, &c.TotalPrice, &c.Estado, &c.FechaEnvio, &c.FechaRespuesta,
		); err != nil {
			return nil, err
		}
		c.SelectedFeatures = features
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *contactRepository) UpdateEstado(ctx context.Context, id int64, estado domain.EstadoFormulario) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contact_form SET status=$1, response_date=NOW() WHERE form_id=$2`,
		estado, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("el formulario %d no existe", id)
	}
	return nil
}
