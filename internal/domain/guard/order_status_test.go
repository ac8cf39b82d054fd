package guard

import (
	"testing"

	"coderr/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderBetween(customer, business *entity.User, status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		CustomerUserID: customer.ID,
		BusinessUserID: business.ID,
		Status:         status,
	}
}

func TestOrderStatusMachine_Transition_Success(t *testing.T) {
	m := NewOrderStatusMachine(nil, nil)
	customer := customerUser()
	business := businessUser()
	order := orderBetween(customer, business, entity.OrderStatusPending)

	err := m.Transition(business, order, OrderStatusPatch{Status: ptr(entity.OrderStatusInProgress)})

	require.NoError(t, err)
}

func TestOrderStatusMachine_Transition_NoAdjacencyRule(t *testing.T) {
	// Any recognized label is a legal target from a non-terminal source.
	m := NewOrderStatusMachine(nil, nil)
	customer := customerUser()
	business := businessUser()

	for _, target := range entity.DefaultOrderStatuses() {
		order := orderBetween(customer, business, entity.OrderStatusPending)
		err := m.Transition(business, order, OrderStatusPatch{Status: ptr(target)})
		assert.NoError(t, err, "pending -> %s", target)
	}
}

func TestOrderStatusMachine_Transition_ForbiddenFields(t *testing.T) {
	m := NewOrderStatusMachine(nil, nil)
	customer := customerUser()
	business := businessUser()
	order := orderBetween(customer, business, entity.OrderStatusPending)

	// payload {status: "completed", price: 10}
	err := m.Transition(business, order, OrderStatusPatch{
		Status: ptr(entity.OrderStatusCompleted),
		Extra:  []string{"price"},
	})

	requireErrorCode(t, err, "FORBIDDEN_FIELDS")
}

func TestOrderStatusMachine_Transition_EmptyUpdate(t *testing.T) {
	m := NewOrderStatusMachine(nil, nil)
	customer := customerUser()
	business := businessUser()
	order := orderBetween(customer, business, entity.OrderStatusPending)

	err := m.Transition(business, order, OrderStatusPatch{})

	requireErrorCode(t, err, "EMPTY_UPDATE")
}

func TestOrderStatusMachine_Transition_UnknownStatus(t *testing.T) {
	m := NewOrderStatusMachine(nil, nil)
	customer := customerUser()
	business := businessUser()
	order := orderBetween(customer, business, entity.OrderStatusPending)

	err := m.Transition(business, order, OrderStatusPatch{Status: ptr(entity.OrderStatus("archived"))})

	requireErrorCode(t, err, "UNKNOWN_STATUS")
}

func TestOrderStatusMachine_Transition_TerminalSource(t *testing.T) {
	m := NewOrderStatusMachine(nil, nil)
	customer := customerUser()
	business := businessUser()

	for _, source := range []entity.OrderStatus{entity.OrderStatusCompleted, entity.OrderStatusCancelled} {
		order := orderBetween(customer, business, source)
		err := m.Transition(business, order, OrderStatusPatch{Status: ptr(entity.OrderStatusPending)})
		requireErrorCode(t, err, "ORDER_CLOSED")
	}
}

func TestOrderStatusMachine_Transition_NotAParty(t *testing.T) {
	m := NewOrderStatusMachine(nil, nil)
	order := orderBetween(customerUser(), businessUser(), entity.OrderStatusPending)

	err := m.Transition(businessUser(), order, OrderStatusPatch{Status: ptr(entity.OrderStatusCompleted)})

	requireErrorCode(t, err, "NOT_OWNER")
}

func TestOrderStatusMachine_Transition_ActorPolicy(t *testing.T) {
	customer := customerUser()
	business := businessUser()
	order := orderBetween(customer, business, entity.OrderStatusPending)

	// Default policy: business only.
	m := NewOrderStatusMachine(nil, nil)
	err := m.Transition(customer, order, OrderStatusPatch{Status: ptr(entity.OrderStatusCancelled)})
	requireErrorCode(t, err, "FORBIDDEN")

	// Either party when configured so.
	m = NewOrderStatusMachine(nil, []entity.ProfileType{entity.ProfileTypeBusiness, entity.ProfileTypeCustomer})
	err = m.Transition(customer, order, OrderStatusPatch{Status: ptr(entity.OrderStatusCancelled)})
	require.NoError(t, err)
}

func TestOrderStatusMachine_ConfiguredLabels(t *testing.T) {
	customer := customerUser()
	business := businessUser()
	order := orderBetween(customer, business, entity.OrderStatusPending)

	m := NewOrderStatusMachine([]entity.OrderStatus{entity.OrderStatusPending, "archived"}, nil)

	err := m.Transition(business, order, OrderStatusPatch{Status: ptr(entity.OrderStatus("archived"))})
	require.NoError(t, err)

	err = m.Transition(business, order, OrderStatusPatch{Status: ptr(entity.OrderStatusCompleted)})
	requireErrorCode(t, err, "UNKNOWN_STATUS")
}
