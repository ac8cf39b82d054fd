package guard

import (
	"fmt"
	"strings"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
)

// OrderStatusPatch is the typed form of an order status update payload.
// Extra holds the names of any supplied fields other than status; a status
// patch must touch the status field and nothing else.
type OrderStatusPatch struct {
	Status *entity.OrderStatus
	Extra  []string
}

// OrderStatusMachine enforces legal order status transitions and actor
// eligibility. The recognized label set and the profile types allowed to
// move an order are deployment configuration, not hardwired rules.
//
// The machine deliberately does not enforce adjacency between non-terminal
// labels: any recognized label is a legal target from any non-terminal
// source. Terminal labels accept no further transitions.
type OrderStatusMachine struct {
	recognized map[entity.OrderStatus]struct{}
	actors     map[entity.ProfileType]struct{}
	actorList  string
	initial    entity.OrderStatus
}

// NewOrderStatusMachine builds a status machine over the given label set
// and the profile types eligible to perform transitions. Empty slices fall
// back to the default labels and to business-only transitions.
func NewOrderStatusMachine(statuses []entity.OrderStatus, actors []entity.ProfileType) *OrderStatusMachine {
	if len(statuses) == 0 {
		statuses = entity.DefaultOrderStatuses()
	}
	if len(actors) == 0 {
		actors = []entity.ProfileType{entity.ProfileTypeBusiness}
	}

	m := &OrderStatusMachine{
		recognized: make(map[entity.OrderStatus]struct{}, len(statuses)),
		actors:     make(map[entity.ProfileType]struct{}, len(actors)),
		initial:    statuses[0],
	}
	for _, s := range statuses {
		m.recognized[s] = struct{}{}
	}
	names := make([]string, 0, len(actors))
	for _, a := range actors {
		m.actors[a] = struct{}{}
		names = append(names, a.String())
	}
	m.actorList = strings.Join(names, ", ")

	return m
}

// InitialStatus returns the label every new order starts in, the first of
// the configured set.
func (m *OrderStatusMachine) InitialStatus() entity.OrderStatus {
	return m.initial
}

// Transition decides whether the actor may move the order to the status
// carried by the patch. The checks run in payload order: forbidden fields,
// empty payload, label recognition, terminal source, actor eligibility.
func (m *OrderStatusMachine) Transition(actor *entity.User, order *entity.Order, patch OrderStatusPatch) error {
	if len(patch.Extra) > 0 {
		return domainerrors.ErrForbiddenFields.WithDetails("fields: " + strings.Join(patch.Extra, ", "))
	}

	if patch.Status == nil {
		return domainerrors.ErrEmptyUpdate
	}

	if _, ok := m.recognized[*patch.Status]; !ok {
		return domainerrors.ErrUnknownStatus.WithDetails(fmt.Sprintf("status %q", *patch.Status))
	}

	if order.Status.IsTerminal() {
		return domainerrors.ErrOrderClosed.WithDetails(fmt.Sprintf("current status %q", order.Status))
	}

	if actor.ID != order.CustomerUserID && actor.ID != order.BusinessUserID {
		return domainerrors.ErrNotOwner.WrapMessage("actor is not a party to this order")
	}

	if actor.Profile == nil {
		return domainerrors.ErrForbidden.WrapMessage("actor has no profile")
	}
	if _, ok := m.actors[actor.Profile.Type]; !ok {
		return domainerrors.ErrForbidden.WithDetails("order status may be changed by: " + m.actorList)
	}

	return nil
}
