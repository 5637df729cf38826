package services

import (
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/core/domain/model/route"
)

// DispatchMatcher is a domain service that resolves, for a new order, the set
// of dispatch channels the order should be posted to.
//
// Matching runs four independent tiers against the route index, from most to
// least specific:
//
//  1. district -> district  (both endpoints narrowed)
//  2. district -> region    (origin narrowed, destination region-wide)
//  3. region   -> district  (origin region-wide, destination narrowed)
//  4. region   -> region    (both region-wide)
//
// A tier only fires when the order carries the districts it requires, and a
// route only matches a tier when its own endpoint granularity is exactly the
// tier's. Channels collected from several tiers are deduplicated by channel
// id, first tier wins; result order is tier order, then route order within a
// tier. An empty result is a valid outcome: the order simply has no audience.
type DispatchMatcher struct{}

// NewDispatchMatcher creates a new DispatchMatcher instance.
func NewDispatchMatcher() DispatchMatcher {
	return DispatchMatcher{}
}

// Match returns the dispatch channels for the order's trip, deduplicated by
// channel id.
func (m DispatchMatcher) Match(o *order.Order, routes []*route.Route) ([]route.Channel, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	fromRegion := o.From().RegionID()
	toRegion := o.To().RegionID()
	fromDistrict := o.From().DistrictID()
	toDistrict := o.To().DistrictID()

	var (
		matched []route.Channel
		seen    = map[string]struct{}{}
	)

	collect := func(r *route.Route) {
		for _, ch := range r.Channels() {
			if _, ok := seen[ch.ID()]; ok {
				continue
			}
			seen[ch.ID()] = struct{}{}
			matched = append(matched, ch)
		}
	}

	for _, r := range routes {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	// tier 1: district -> district
	if fromDistrict != nil && toDistrict != nil {
		for _, r := range routes {
			if matchesDistrict(r.FromRegionID(), r.FromDistrictID(), fromRegion, *fromDistrict) &&
				matchesDistrict(r.ToRegionID(), r.ToDistrictID(), toRegion, *toDistrict) {
				collect(r)
			}
		}
	}

	// tier 2: district -> region
	if fromDistrict != nil {
		for _, r := range routes {
			if matchesDistrict(r.FromRegionID(), r.FromDistrictID(), fromRegion, *fromDistrict) &&
				matchesRegion(r.ToRegionID(), r.ToDistrictID(), toRegion) {
				collect(r)
			}
		}
	}

	// tier 3: region -> district
	if toDistrict != nil {
		for _, r := range routes {
			if matchesRegion(r.FromRegionID(), r.FromDistrictID(), fromRegion) &&
				matchesDistrict(r.ToRegionID(), r.ToDistrictID(), toRegion, *toDistrict) {
				collect(r)
			}
		}
	}

	// tier 4: region -> region
	for _, r := range routes {
		if matchesRegion(r.FromRegionID(), r.FromDistrictID(), fromRegion) &&
			matchesRegion(r.ToRegionID(), r.ToDistrictID(), toRegion) {
			collect(r)
		}
	}

	return matched, nil
}

// matchesDistrict reports whether a route endpoint is narrowed to exactly the
// given district within the given region.
func matchesDistrict(routeRegion kernel.UUID, routeDistrict *kernel.UUID, region, district kernel.UUID) bool {
	return routeDistrict != nil && routeRegion.IsEqual(region) && routeDistrict.IsEqual(district)
}

// matchesRegion reports whether a route endpoint is region-wide (no district)
// for the given region.
func matchesRegion(routeRegion kernel.UUID, routeDistrict *kernel.UUID, region kernel.UUID) bool {
	return routeDistrict == nil && routeRegion.IsEqual(region)
}
