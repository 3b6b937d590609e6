package reviewrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gearxp/internal/domain"
	"github.com/GlebRadaev/gearxp/internal/pg"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create inserts the review. A second review of the same product by the same
// user yields domain.ErrAlreadyExists.
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
        INSERT INTO reviews (user_id, product_id, rating, title, content, author_name, images, verified_purchase, xp_awarded, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		review.UserID, review.ProductID, review.Rating, review.Title, review.Content,
		review.AuthorName, review.Images, review.VerifiedPurchase, review.XPAwarded, review.CreatedAt,
	).Scan(&review.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrAlreadyExists
		}
		zap.L().Error("can't save review", zap.String("user_id", review.UserID.String()), zap.Error(err))
		return nil, err
	}
	return review, nil
}
