package gift

import (
	"context"
	"database/sql"
	"go-gift-api/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=gift_repo.go -destination=../mock/gift/gift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository
	Create(ctx context.Context, params dbgen.CreateGiftParams) (dbgen.Gift, error)
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.Gift, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dbgen.Gift, error)
	Update(ctx context.Context, params dbgen.UpdateGiftParams) (dbgen.Gift, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) WithTx(tx dbgen.DBTX) Repository {
	if sqlTx, ok := tx.(*sql.Tx); ok {
		return &repository{
			queries: r.queries.WithTx(sqlTx),
		}
	}
	return r
}

func (r *repository) Create(ctx context.Context, params dbgen.CreateGiftParams) (dbgen.Gift, error) {
	return r.queries.CreateGift(ctx, params)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (dbgen.Gift, error) {
	return r.queries.GetGiftByID(ctx, id)
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dbgen.Gift, error) {
	return r.queries.ListGiftsByUser(ctx, userID)
}

func (r *repository) Update(ctx context.Context, params dbgen.UpdateGiftParams) (dbgen.Gift, error) {
	return r.queries.UpdateGift(ctx, params)
}

// Delete removes the gift; wishlist_gifts rows go with it (ON DELETE CASCADE).
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.queries.DeleteGift(ctx, id)
}
