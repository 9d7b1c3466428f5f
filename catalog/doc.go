// Package catalog resolves a node's material identifier to the cost vector
// it breaches for: time, consumable weight, and a fixed-length vector of
// tool weights.
//
// A Catalog is built once via NewCatalog and is read-only thereafter,
// mirroring core.Graph's construct-once contract.
package catalog
