// Package writers maps output format names to table and motif renderers.
//
// Renderers live in internal/output; JSON goes through pkg/api (v1) for a
// stable wire format.
package writers
