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

func newOrderService(
	txManager *mockRepo.MockTransactionManager,
	orderRepo *mockRepo.MockOrderRepository,
	userRepo *mockRepo.MockUserRepository,
) usecase.OrderUsecase {
	return NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Machine:   guard.NewOrderStatusMachine(nil, nil),
		Logger:    newDiscardLogger(),
	})
}

func statusPtr(s entity.OrderStatus) *entity.OrderStatus {
	return &s
}

func newOrderBetween(customerID, businessID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:             uuid.New(),
		CustomerUserID: customerID,
		BusinessUserID: businessID,
		OfferDetailID:  uuid.New(),
		Status:         entity.OrderStatusInProgress,
		Title:          "Basic",
		Revisions:      2,
		Price:          100,
		OfferType:      entity.OfferTypeBasic,
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txOfferRepo := mockRepo.NewMockOfferRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().OfferRepo().Return(txOfferRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)

	txManager := passthroughTxManager(t, factory)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(txManager, orderRepo, userRepo)

	ctx := context.Background()
	customer := newCustomerUser()
	business := newBusinessUser()
	offer := newOfferFor(business.ID)
	detail := &offer.Details[0]

	txUserRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	txOfferRepo.EXPECT().FindDetailByID(ctx, detail.ID).Return(detail, nil)
	txOfferRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := service.CreateOrder(ctx, customer.ID, detail.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, order.CustomerUserID)
	assert.Equal(t, business.ID, order.BusinessUserID)
	assert.Equal(t, detail.ID, order.OfferDetailID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, detail.Price, order.Price)
	assert.Equal(t, detail.Title, order.Title)
}

func TestOrderService_CreateOrder_NotCustomer(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txManager := passthroughTxManager(t, factory)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(txManager, orderRepo, userRepo)

	ctx := context.Background()
	business := newBusinessUser()

	txUserRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := service.CreateOrder(ctx, business.ID, uuid.New())
	requireErrorCode(t, err, "NOT_CUSTOMER")
}

func TestOrderService_CreateOrder_UnknownDetail(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txOfferRepo := mockRepo.NewMockOfferRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().OfferRepo().Return(txOfferRepo)

	txManager := passthroughTxManager(t, factory)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(txManager, orderRepo, userRepo)

	ctx := context.Background()
	customer := newCustomerUser()
	unknownID := uuid.New()

	txUserRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	txOfferRepo.EXPECT().FindDetailByID(ctx, unknownID).Return(nil, repository.ErrOfferDetailNotFound)

	_, err := service.CreateOrder(ctx, customer.ID, unknownID)
	requireErrorCode(t, err, "OFFER_DETAIL_ID_INVALID")
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txManager := passthroughTxManager(t, factory)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(txManager, orderRepo, userRepo)

	ctx := context.Background()
	customer := newCustomerUser()
	business := newBusinessUser()
	order := newOrderBetween(customer.ID, business.ID)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txUserRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	txOrderRepo.EXPECT().Update(ctx, order).Return(nil)

	updated, err := service.UpdateOrderStatus(ctx, business.ID, order.ID, guard.OrderStatusPatch{
		Status: statusPtr(entity.OrderStatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, updated.Status)
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txManager := passthroughTxManager(t, factory)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(txManager, orderRepo, userRepo)

	ctx := context.Background()
	customer := newCustomerUser()
	business := newBusinessUser()
	order := newOrderBetween(customer.ID, business.ID)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txUserRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := service.UpdateOrderStatus(ctx, business.ID, order.ID, guard.OrderStatusPatch{
		Status: statusPtr(entity.OrderStatus("archived")),
	})
	requireErrorCode(t, err, "UNKNOWN_STATUS")
}

func TestOrderService_UpdateOrderStatus_OrderClosed(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txManager := passthroughTxManager(t, factory)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(txManager, orderRepo, userRepo)

	ctx := context.Background()
	customer := newCustomerUser()
	business := newBusinessUser()
	order := newOrderBetween(customer.ID, business.ID)
	order.Status = entity.OrderStatusCancelled

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txUserRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := service.UpdateOrderStatus(ctx, business.ID, order.ID, guard.OrderStatusPatch{
		Status: statusPtr(entity.OrderStatusInProgress),
	})
	requireErrorCode(t, err, "ORDER_CLOSED")
}

func TestOrderService_UpdateOrderStatus_CustomerForbidden(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txManager := passthroughTxManager(t, factory)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(txManager, orderRepo, userRepo)

	ctx := context.Background()
	customer := newCustomerUser()
	business := newBusinessUser()
	order := newOrderBetween(customer.ID, business.ID)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txUserRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	_, err := service.UpdateOrderStatus(ctx, customer.ID, order.ID, guard.OrderStatusPatch{
		Status: statusPtr(entity.OrderStatusCompleted),
	})
	requireErrorCode(t, err, "FORBIDDEN")
}

func TestOrderService_ListOrders(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(txManager, orderRepo, userRepo)

	ctx := context.Background()
	customer := newCustomerUser()
	business := newBusinessUser()
	orders := []*entity.Order{newOrderBetween(customer.ID, business.ID)}

	orderRepo.EXPECT().ListByUser(ctx, customer.ID).Return(orders, nil)

	got, err := service.ListOrders(ctx, customer.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOrderService_CountInProgress(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(txManager, orderRepo, userRepo)

	ctx := context.Background()
	business := newBusinessUser()

	userRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	orderRepo.EXPECT().
		CountByBusinessAndStatus(ctx, business.ID, entity.OrderStatusInProgress).
		Return(int64(4), nil)

	count, err := service.CountInProgress(ctx, business.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestOrderService_CountCompleted_NotBusiness(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(txManager, orderRepo, userRepo)

	ctx := context.Background()
	customer := newCustomerUser()

	userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	_, err := service.CountCompleted(ctx, customer.ID)
	requireErrorCode(t, err, "USER_NOT_FOUND")
}
