// Package queries contains read operations in the CQRS architecture.
// Query handlers fetch backend state and shape it into display-ready view
// models: status labels and colors, formatted prices and dates, and the
// per-viewer action list computed by the shared action policy.
package queries

import (
	"errors"

	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/model/order"
	"courierapp/internal/core/domain/services"
	"courierapp/internal/pkg/errs"
	"courierapp/internal/pkg/format"

	"github.com/samber/lo"
)

// ActionView is one button the rendering layer should offer for an order.
// Confirm tells it to ask before submitting; the dispatcher independently
// refuses unconfirmed destructive actions.
type ActionView struct {
	Key     string
	Label   string
	Kind    string
	Confirm bool
}

// OrderSummary is the list-row view of an order.
//
// StatusUnknown marks orders whose backend status is outside the known
// enumeration: they render with the unknown label and neutral color, and
// offer no actions.
type OrderSummary struct {
	ID            string
	Status        string
	StatusLabel   string
	StatusColor   string
	StatusUnknown bool
	Description   string
	Address       string
	CustomerName  string
	CustomerPhone string
	Price         string
	ScheduledAt   string
	Actions       []ActionView
	Pending       bool
}

// NewOrderSummaryForViewer shapes a single backend-confirmed snapshot into a
// list-row view for the given viewer. The dispatch endpoint uses it to return
// the re-rendered row after a mutation; Pending is false because the mutation
// has completed by then.
func NewOrderSummaryForViewer(o order.Order, viewerID *kernel.UUID) (OrderSummary, error) {
	return newOrderSummary(services.NewActionPolicy(), false, o, viewerID)
}

func newActionView(a services.Action) ActionView {
	return ActionView{
		Key:     a.Key,
		Label:   a.Label,
		Kind:    string(a.Kind),
		Confirm: a.ConfirmRequired || a.ConfirmHint,
	}
}

// actionViews computes the viewer's permitted actions for an order. An
// unknown status yields (nil, true): display only, nothing offered.
func actionViews(
	policy services.ActionPolicy,
	o *order.Order,
	viewerID *kernel.UUID,
) ([]ActionView, bool, error) {
	actions, err := policy.ActionsFor(o, viewerID)
	if errors.Is(err, errs.ErrInvalidState) {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return lo.Map(actions, func(a services.Action, _ int) ActionView {
		return newActionView(a)
	}), false, nil
}

func newOrderSummary(
	policy services.ActionPolicy,
	pending bool,
	o order.Order,
	viewerID *kernel.UUID,
) (OrderSummary, error) {
	actions, statusUnknown, err := actionViews(policy, &o, viewerID)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:            o.ID.String(),
		Status:        o.Status.String(),
		StatusLabel:   o.Status.Label(),
		StatusColor:   o.Status.Color(),
		StatusUnknown: statusUnknown,
		Description:   o.Description,
		Address:       o.Address,
		CustomerName:  o.Customer.Name,
		CustomerPhone: format.Phone(o.Customer.Phone),
		Price:         o.Price.FormatGrouped(),
		ScheduledAt:   format.DateTime(o.ScheduledAt),
		Actions:       actions,
		Pending:       pending,
	}, nil
}
