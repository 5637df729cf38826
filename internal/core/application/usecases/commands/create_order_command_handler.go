package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"taxidispatch/internal/core/domain/model/geo"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/core/domain/model/route"
	"taxidispatch/internal/core/domain/services"
	"taxidispatch/internal/core/ports"
	"taxidispatch/internal/pkg/errs"
)

var ErrRegionNotFound = errors.New("region not found")

// CreateOrderCommandHandler handles the business logic for order creation.
// Snapshots the geography names, records the order as pending, resolves the
// dispatch channels through the matcher and posts the announcement.
//
// Posting is fire-and-forget relative to the ledger: the order exists once
// the first transaction commits, and a failed announcement only costs the
// posted-message reference.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a Notifier for
// channel announcements.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order creation command.
//
// First transaction: resolve the geography snapshot, record the pending order
// and collect the matched channels. Then post to every matched channel.
// Second transaction: store the single posted channel/message reference, when
// posting yielded one.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, channels, err := h.recordOrder(ctx, cmd)
	if err != nil {
		return err
	}

	if len(channels) == 0 {
		slog.Info("order has no matching dispatch channels",
			"orderId", newOrder.ID().String())
		return nil
	}

	channelID, messageRef, err := h.notifier.PostOrder(ctx, newOrder, channels)
	if err != nil {
		slog.Warn("failed to post order to dispatch channels",
			"orderId", newOrder.ID().String(), "error", err)
		return nil
	}
	if channelID == "" {
		return nil
	}

	if err := h.recordPostedMessage(ctx, newOrder.ID(), channelID, messageRef); err != nil {
		slog.Warn("failed to store posted message reference",
			"orderId", newOrder.ID().String(), "error", err)
	}
	return nil
}

func (h CreateOrderCommandHandler) recordOrder(ctx context.Context, cmd CreateOrderCommand) (*order.Order, []route.Channel, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	geoRepo := uow.GeoRepository()

	from, err := h.resolvePlace(ctx, geoRepo, cmd.FromRegionID(), cmd.FromDistrictID())
	if err != nil {
		return nil, nil, err
	}
	to, err := h.resolvePlace(ctx, geoRepo, cmd.ToRegionID(), cmd.ToDistrictID())
	if err != nil {
		return nil, nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.RequesterID(), cmd.RequesterLabel(),
		from, to,
		cmd.Phone(),
		cmd.Comment(),
		time.Now(),
	)
	if err != nil {
		return nil, nil, err
	}

	routes, err := uow.RouteRepository().GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	channels, err := services.NewDispatchMatcher().Match(newOrder, routes)
	if err != nil {
		return nil, nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return newOrder, channels, nil
}

func (h CreateOrderCommandHandler) recordPostedMessage(ctx context.Context, orderID kernel.UUID, channelID, messageRef string) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	aggregate.SetPostedMessage(channelID, messageRef)

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateOrderCommandHandler) resolvePlace(ctx context.Context, geoRepo ports.GeoRepository, regionID kernel.UUID, districtID *kernel.UUID) (geo.Place, error) {
	region, err := geoRepo.GetRegion(ctx, regionID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return geo.Place{}, ErrRegionNotFound
	}
	if err != nil {
		return geo.Place{}, err
	}

	if districtID == nil {
		return geo.NewPlace(region.ID(), region.Name(), nil, "")
	}

	district, err := geoRepo.GetDistrict(ctx, *districtID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return geo.Place{}, ErrDistrictNotFound
	}
	if err != nil {
		return geo.Place{}, err
	}

	id := district.ID()
	return geo.NewPlace(region.ID(), region.Name(), &id, district.Name())
}
