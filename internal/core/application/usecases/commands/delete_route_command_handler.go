package commands

import (
	"context"
	"errors"

	"taxidispatch/internal/pkg/errs"
)

var ErrRouteNotFound = errors.New("route not found")

// DeleteRouteCommandHandler handles removing a route from the route index.
type DeleteRouteCommandHandler struct {
	uowFactory GeoUoWFactory
}

// NewDeleteRouteCommandHandler creates a handler for route deletion.
func NewDeleteRouteCommandHandler(uowFactory GeoUoWFactory) DeleteRouteCommandHandler {
	return DeleteRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route deletion command.
func (h DeleteRouteCommandHandler) Handle(ctx context.Context, cmd DeleteRouteCommand) error {
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

	if _, err := routeRepo.Get(ctx, cmd.RouteID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrRouteNotFound
		}
		return err
	}

	if err := routeRepo.Delete(ctx, cmd.RouteID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
