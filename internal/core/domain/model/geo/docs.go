// Package geo contains the two-level geographic hierarchy: regions and the
// districts that belong to them. Region and district names are unique up to
// case (districts per region), and deleting either cascades to everything
// that references it.
package geo
