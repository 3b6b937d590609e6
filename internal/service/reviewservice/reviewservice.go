package reviewservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gearxp/internal/domain"
	"github.com/GlebRadaev/gearxp/internal/pg"
)

type Repo interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
}

type PurchaseRepo interface {
	HasPurchasedProduct(ctx context.Context, userID uuid.UUID, productID string) (bool, error)
}

type Awarder interface {
	Award(ctx context.Context, grant domain.XPGrant) (*domain.XPAward, error)
}

const (
	VerifiedReviewXP   int64 = 50
	UnverifiedReviewXP int64 = 25
	MaxImages                = 5
)

var (
	ErrMissingFields   = errors.New("productId, title, content and authorName are required")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrTooManyImages   = fmt.Errorf("at most %d images are allowed", MaxImages)
	ErrAlreadyReviewed = errors.New("you have already reviewed this product")
)

type Service struct {
	tx        pg.TXManager
	repo      Repo
	purchases PurchaseRepo
	awarder   Awarder
	now       func() time.Time
}

func New(tx pg.TXManager, repo Repo, purchases PurchaseRepo, awarder Awarder) *Service {
	return &Service{
		tx:        tx,
		repo:      repo,
		purchases: purchases,
		awarder:   awarder,
		now:       time.Now,
	}
}

func validate(in *domain.ReviewInput) error {
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.AuthorName = strings.TrimSpace(in.AuthorName)

	if in.ProductID == "" || in.Title == "" || in.Content == "" || in.AuthorName == "" {
		return ErrMissingFields
	}
	if in.Rating < 1 || in.Rating > 5 {
		return ErrInvalidRating
	}
	if len(in.Images) > MaxImages {
		return ErrTooManyImages
	}
	return nil
}

// Submit stores the review and grants its XP in one transaction, so neither
// exists without the other.
func (s *Service) Submit(ctx context.Context, in domain.ReviewInput) (*domain.ReviewResult, error) {
	if err := validate(&in); err != nil {
		return nil, err
	}

	verified, err := s.purchases.HasPurchasedProduct(ctx, in.UserID, in.ProductID)
	if err != nil {
		return nil, err
	}
	xp := UnverifiedReviewXP
	if verified {
		xp = VerifiedReviewXP
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}

	var result *domain.ReviewResult
	err = s.tx.Begin(ctx, func(ctx context.Context) error {
		award, err := s.awarder.Award(ctx, domain.XPGrant{
			UserID:      in.UserID,
			Email:       in.Email,
			Action:      domain.ActionReview,
			Amount:      xp,
			Description: fmt.Sprintf("Review of %s", in.ProductID),
			ReferenceID: in.ProductID,
			Boost:       true,
			Delta:       domain.ProfileDelta{Reviews: 1},
		})
		if err != nil {
			return err
		}

		review, err := s.repo.Create(ctx, &domain.Review{
			UserID:           in.UserID,
			ProductID:        in.ProductID,
			Rating:           in.Rating,
			Title:            in.Title,
			Content:          in.Content,
			AuthorName:       in.AuthorName,
			Images:           images,
			VerifiedPurchase: verified,
			XPAwarded:        award.FinalXP,
			CreatedAt:        s.now(),
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			return ErrAlreadyReviewed
		}
		if err != nil {
			return err
		}

		result = &domain.ReviewResult{
			ReviewID:         review.ID,
			XPAwarded:        award.FinalXP,
			VerifiedPurchase: verified,
			LeveledUp:        award.LeveledUp,
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyReviewed) {
			zap.L().Error("failed to submit review",
				zap.String("user_id", in.UserID.String()),
				zap.String("product_id", in.ProductID),
				zap.Error(err))
		}
		return nil, err
	}
	return result, nil
}
