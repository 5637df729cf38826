// Package route contains the route index: directed origin→destination pairs
// at region or region+district granularity, each carrying the dispatch
// channels that should receive orders travelling that way.
package route
