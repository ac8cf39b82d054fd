package impl

import (
	"context"
	"testing"

	"coderr/internal/domain/entity"
	"coderr/internal/domain/guard"
	"coderr/internal/domain/repository"
	mockRepo "coderr/internal/mocks/repository"
	"coderr/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOfferService(
	txManager *mockRepo.MockTransactionManager,
	offerRepo *mockRepo.MockOfferRepository,
	userRepo *mockRepo.MockUserRepository,
) usecase.OfferUsecase {
	return NewOfferService(OfferServiceParams{
		TxManager:  txManager,
		OfferRepo:  offerRepo,
		UserRepo:   userRepo,
		Reconciler: guard.NewOfferReconciler(),
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})
}

func intPtr(i int) *int {
	return &i
}

func offerTypePtr(t entity.OfferType) *entity.OfferType {
	return &t
}

func threeTierDrafts() []guard.DetailDraft {
	return []guard.DetailDraft{
		{Title: "Basic", Revisions: 2, DeliveryTimeInDays: 5, Price: 100, Features: []string{"Logo"}, OfferType: entity.OfferTypeBasic},
		{Title: "Standard", Revisions: 5, DeliveryTimeInDays: 7, Price: 200, Features: []string{"Logo", "Flyer"}, OfferType: entity.OfferTypeStandard},
		{Title: "Premium", Revisions: 10, DeliveryTimeInDays: 10, Price: 500, Features: []string{"Logo", "Flyer", "Website"}, OfferType: entity.OfferTypePremium},
	}
}

func TestOfferService_CreateOffer(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txOfferRepo := mockRepo.NewMockOfferRepository(t)
	factory.EXPECT().OfferRepo().Return(txOfferRepo)

	txManager := passthroughTxManager(t, factory)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOfferService(txManager, offerRepo, userRepo)

	ctx := context.Background()
	actor := newBusinessUser()

	userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	txOfferRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(offer *entity.Offer) bool {
			return offer.UserID == actor.ID && len(offer.Details) == 3
		})).
		Return(nil)

	offer, err := service.CreateOffer(ctx, actor.ID, usecase.CreateOfferInput{
		Title:       "Logo Design",
		Description: "Professional logo design",
		Details:     threeTierDrafts(),
	})
	require.NoError(t, err)
	assert.Equal(t, actor.ID, offer.UserID)
	assert.Len(t, offer.Details, 3)
}

func TestOfferService_CreateOffer_NotBusiness(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOfferService(txManager, offerRepo, userRepo)

	ctx := context.Background()
	actor := newCustomerUser()

	userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	_, err := service.CreateOffer(ctx, actor.ID, usecase.CreateOfferInput{
		Title:   "Logo Design",
		Details: threeTierDrafts(),
	})
	requireErrorCode(t, err, "NOT_BUSINESS")
}

func TestOfferService_CreateOffer_WrongDetailCount(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOfferService(txManager, offerRepo, userRepo)

	ctx := context.Background()
	actor := newBusinessUser()

	userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	_, err := service.CreateOffer(ctx, actor.ID, usecase.CreateOfferInput{
		Title:   "Logo Design",
		Details: threeTierDrafts()[:2],
	})
	requireErrorCode(t, err, "WRONG_DETAIL_COUNT")
}

func TestOfferService_GetOffer_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOfferService(txManager, offerRepo, userRepo)

	ctx := context.Background()
	unknownID := uuid.New()

	offerRepo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrOfferNotFound)

	_, err := service.GetOffer(ctx, unknownID)
	requireErrorCode(t, err, "NOT_FOUND")
}

func TestOfferService_GetOfferDetail_Invalid(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOfferService(txManager, offerRepo, userRepo)

	ctx := context.Background()
	unknownID := uuid.New()

	offerRepo.EXPECT().FindDetailByID(ctx, unknownID).Return(nil, repository.ErrOfferDetailNotFound)

	_, err := service.GetOfferDetail(ctx, unknownID)
	requireErrorCode(t, err, "OFFER_DETAIL_ID_INVALID")
}

func TestOfferService_ListOffers_ClampsPaging(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOfferService(txManager, offerRepo, userRepo)

	ctx := context.Background()
	owner := newBusinessUser()
	offers := []*entity.Offer{newOfferFor(owner.ID)}

	offerRepo.EXPECT().
		List(ctx, repository.OfferFilter{
			Search:   "logo",
			Ordering: "min_price",
			Page:     1,
			PageSize: 100,
		}).
		Return(offers, int64(1), nil)

	output, err := service.ListOffers(ctx, usecase.ListOffersInput{
		Search:   "logo",
		Ordering: "min_price",
		Page:     0,
		PageSize: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Total)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 100, output.PageSize)
	assert.Len(t, output.Offers, 1)
}

func TestOfferService_ListOffers_DefaultPageSize(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOfferService(txManager, offerRepo, userRepo)

	ctx := context.Background()

	offerRepo.EXPECT().
		List(ctx, repository.OfferFilter{Page: 1, PageSize: 6}).
		Return([]*entity.Offer{}, int64(0), nil)

	output, err := service.ListOffers(ctx, usecase.ListOffersInput{})
	require.NoError(t, err)
	assert.Equal(t, 6, output.PageSize)
}

func TestOfferService_UpdateOffer(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txOfferRepo := mockRepo.NewMockOfferRepository(t)
	factory.EXPECT().OfferRepo().Return(txOfferRepo)

	txManager := passthroughTxManager(t, factory)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOfferService(txManager, offerRepo, userRepo)

	ctx := context.Background()
	owner := newBusinessUser()
	offer := newOfferFor(owner.ID)

	txOfferRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)
	txOfferRepo.EXPECT().Update(ctx, offer).Return(nil)

	updated, err := service.UpdateOffer(ctx, owner.ID, offer.ID, guard.OfferPatch{
		Title: strPtr("New Title"),
		Details: []guard.DetailPatch{
			{
				OfferType: offerTypePtr(entity.OfferTypeBasic),
				Price:     intPtr(150),
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, 150, updated.DetailByType(entity.OfferTypeBasic).Price)
}

func TestOfferService_UpdateOffer_DetailNotFound(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txOfferRepo := mockRepo.NewMockOfferRepository(t)
	factory.EXPECT().OfferRepo().Return(txOfferRepo)

	txManager := passthroughTxManager(t, factory)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOfferService(txManager, offerRepo, userRepo)

	ctx := context.Background()
	owner := newBusinessUser()
	offer := newOfferFor(owner.ID)
	offer.Details = offer.Details[:2] // premium tier missing

	txOfferRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	_, err := service.UpdateOffer(ctx, owner.ID, offer.ID, guard.OfferPatch{
		Details: []guard.DetailPatch{
			{
				OfferType: offerTypePtr(entity.OfferTypePremium),
				Price:     intPtr(600),
			},
		},
	})
	requireErrorCode(t, err, "DETAIL_NOT_FOUND")
}

func TestOfferService_DeleteOffer_NotOwner(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txOfferRepo := mockRepo.NewMockOfferRepository(t)
	factory.EXPECT().OfferRepo().Return(txOfferRepo)

	txManager := passthroughTxManager(t, factory)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOfferService(txManager, offerRepo, userRepo)

	ctx := context.Background()
	owner := newBusinessUser()
	offer := newOfferFor(owner.ID)
	stranger := uuid.New()

	txOfferRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	err := service.DeleteOffer(ctx, stranger, offer.ID)
	requireErrorCode(t, err, "NOT_OWNER")
}

func TestOfferService_DeleteOffer(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txOfferRepo := mockRepo.NewMockOfferRepository(t)
	factory.EXPECT().OfferRepo().Return(txOfferRepo)

	txManager := passthroughTxManager(t, factory)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOfferService(txManager, offerRepo, userRepo)

	ctx := context.Background()
	owner := newBusinessUser()
	offer := newOfferFor(owner.ID)

	txOfferRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)
	txOfferRepo.EXPECT().Delete(ctx, offer.ID).Return(nil)

	err := service.DeleteOffer(ctx, owner.ID, offer.ID)
	require.NoError(t, err)
}
