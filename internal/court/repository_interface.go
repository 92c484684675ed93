package court

import "context"

type Repository interface {
	GetAllCourts(ctx context.Context) ([]Court, error)
	GetCourtByID(ctx context.Context, id int) (*Court, error)
	CourtExists(ctx context.Context, id int) (bool, error)
}
