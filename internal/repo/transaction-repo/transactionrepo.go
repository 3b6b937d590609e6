package transactionrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gearxp/internal/domain"
	"github.com/GlebRadaev/gearxp/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, tx *domain.XPTransaction) (*domain.XPTransaction, error) {
	query := `
		INSERT INTO xp_transactions (user_id, amount, action, description, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, tx.UserID, tx.Amount, tx.Action, tx.Description, tx.ReferenceID, tx.CreatedAt).Scan(&tx.ID)
	if err != nil {
		zap.L().Error("can't save xp transaction", zap.String("user_id", tx.UserID.String()), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]domain.XPTransaction, error) {
	query := `
        SELECT id, user_id, amount, action, description, reference_id, created_at
        FROM xp_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch xp transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.XPTransaction
	for rows.Next() {
		var tx domain.XPTransaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Action, &tx.Description, &tx.ReferenceID, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan xp transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate xp transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
