// Package order contains the order ledger aggregate: a single ride request
// with its lifecycle state machine, denormalized geography snapshot, and the
// bookkeeping for the driver who accepted it and the channel it was posted to.
package order
