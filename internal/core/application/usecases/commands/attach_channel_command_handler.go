package commands

import (
	"context"
	"errors"

	"taxidispatch/internal/core/domain/model/route"
	"taxidispatch/internal/pkg/errs"
)

// AttachChannelCommandHandler handles attaching dispatch channels to routes.
type AttachChannelCommandHandler struct {
	uowFactory GeoUoWFactory
}

// NewAttachChannelCommandHandler creates a handler for channel attachment.
func NewAttachChannelCommandHandler(uowFactory GeoUoWFactory) AttachChannelCommandHandler {
	return AttachChannelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the channel attachment command.
// Attaching an already attached channel fails with
// route.ErrChannelAlreadyAttached and changes nothing.
func (h AttachChannelCommandHandler) Handle(ctx context.Context, cmd AttachChannelCommand) error {
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

	channel, err := route.NewChannel(cmd.ChannelID(), cmd.ChannelName())
	if err != nil {
		return err
	}

	if err = aggregate.AttachChannel(channel); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
