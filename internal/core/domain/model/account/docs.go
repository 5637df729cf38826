// Package account contains the driver account ledger: balances and
// subscription windows for drivers allowed to take orders.
package account
