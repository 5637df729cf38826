package commands

import (
	"context"
	"errors"

	"taxidispatch/internal/pkg/errs"
)

// DetachChannelCommandHandler handles detaching dispatch channels from routes.
type DetachChannelCommandHandler struct {
	uowFactory GeoUoWFactory
}

// NewDetachChannelCommandHandler creates a handler for channel detachment.
func NewDetachChannelCommandHandler(uowFactory GeoUoWFactory) DetachChannelCommandHandler {
	return DetachChannelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the channel detachment command.
// Detaching a channel the route does not carry fails with
// route.ErrChannelNotAttached.
func (h DetachChannelCommandHandler) Handle(ctx context.Context, cmd DetachChannelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()

	aggregate, err := routeRepo.Get(ctx, cmd.RouteID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRouteNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.DetachChannel(cmd.ChannelID()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
