package court

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Richard-klement/va-squash-constantia/internal/db"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAllCourts(ctx context.Context) ([]Court, error) {
	query := `
		SELECT id, name, active, created_at
		FROM courts
		WHERE active = 1
		ORDER BY id ASC
	`

	var courts []Court
	err := r.db.SelectContext(ctx, &courts, query)
	if err != nil {
		return nil, err
	}

	return courts, nil
}

func (r *repository) GetCourtByID(ctx context.Context, id int) (*Court, error) {
	query := `
		SELECT id, name, active, created_at
		FROM courts
		WHERE id = ?
	`

	var court Court
	err := r.db.GetContext(ctx, &court, query, id)
	if err != nil {
		return nil, err
	}

	return &court, nil
}

func (r *repository) CourtExists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM courts WHERE id = ? AND active = 1)`

	return db.Exists(ctx, r.db, query, id)
}
