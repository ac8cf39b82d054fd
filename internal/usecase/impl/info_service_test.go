package impl

import (
	"context"
	"testing"

	"coderr/internal/domain/entity"
	mockRepo "coderr/internal/mocks/repository"
	"coderr/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInfoService(
	userRepo *mockRepo.MockUserRepository,
	offerRepo *mockRepo.MockOfferRepository,
	reviewRepo *mockRepo.MockReviewRepository,
) usecase.InfoUsecase {
	return NewInfoService(InfoServiceParams{
		UserRepo:   userRepo,
		OfferRepo:  offerRepo,
		ReviewRepo: reviewRepo,
	})
}

func TestInfoService_BaseInfo(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := newInfoService(userRepo, offerRepo, reviewRepo)

	ctx := context.Background()

	reviewRepo.EXPECT().Count(ctx).Return(int64(10), nil)
	reviewRepo.EXPECT().AverageRating(ctx).Return(4.2666, nil)
	userRepo.EXPECT().CountByProfileType(ctx, entity.ProfileTypeBusiness).Return(int64(45), nil)
	offerRepo.EXPECT().Count(ctx).Return(int64(150), nil)

	output, err := service.BaseInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), output.ReviewCount)
	assert.Equal(t, 4.3, output.AverageRating)
	assert.Equal(t, int64(45), output.BusinessProfileCount)
	assert.Equal(t, int64(150), output.OfferCount)
}

func TestInfoService_BaseInfo_NoReviews(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := newInfoService(userRepo, offerRepo, reviewRepo)

	ctx := context.Background()

	reviewRepo.EXPECT().Count(ctx).Return(int64(0), nil)
	reviewRepo.EXPECT().AverageRating(ctx).Return(0.0, nil)
	userRepo.EXPECT().CountByProfileType(ctx, entity.ProfileTypeBusiness).Return(int64(0), nil)
	offerRepo.EXPECT().Count(ctx).Return(int64(0), nil)

	output, err := service.BaseInfo(ctx)
	require.NoError(t, err)
	assert.Zero(t, output.ReviewCount)
	assert.Zero(t, output.AverageRating)
}
