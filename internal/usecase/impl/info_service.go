package impl

import (
	"context"
	"math"

	"coderr/internal/domain/entity"
	"coderr/internal/domain/repository"
	"coderr/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// infoService implements the InfoUsecase interface.
type infoService struct {
	userRepo   repository.UserRepository
	offerRepo  repository.OfferRepository
	reviewRepo repository.ReviewRepository
}

// InfoServiceParams holds dependencies for infoService, injected by Fx.
type InfoServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	OfferRepo  repository.OfferRepository
	ReviewRepo repository.ReviewRepository
}

// NewInfoService is the constructor for infoService.
func NewInfoService(params InfoServiceParams) usecase.InfoUsecase {
	return &infoService{
		userRepo:   params.UserRepo,
		offerRepo:  params.OfferRepo,
		reviewRepo: params.ReviewRepo,
	}
}

// BaseInfo aggregates the public platform statistics.
func (srv *infoService) BaseInfo(ctx context.Context) (*usecase.BaseInfoOutput, error) {
	reviewCount, err := srv.reviewRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count reviews")
	}

	avgRating, err := srv.reviewRepo.AverageRating(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute average rating")
	}

	businessCount, err := srv.userRepo.CountByProfileType(ctx, entity.ProfileTypeBusiness)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count business profiles")
	}

	offerCount, err := srv.offerRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count offers")
	}

	return &usecase.BaseInfoOutput{
		ReviewCount:          reviewCount,
		AverageRating:        math.Round(avgRating*10) / 10,
		BusinessProfileCount: businessCount,
		OfferCount:           offerCount,
	}, nil
}
