package catalog

import "errors"

// Sentinel errors for catalog operations. Callers should branch with
// errors.Is; messages are not part of the contract.
var (
	// ErrEmptyMaterial indicates an empty material identifier was supplied
	// to WithMaterial. (Resolve accepts the empty material and returns
	// ZeroBreachProfile.)
	ErrEmptyMaterial = errors.New("catalog: material identifier is empty")

	// ErrDuplicateMaterial indicates WithMaterial was applied twice for
	// the same material identifier.
	ErrDuplicateMaterial = errors.New("catalog: material already registered")

	// ErrUnknownMaterial indicates Resolve was asked for a material that
	// was never registered.
	ErrUnknownMaterial = errors.New("catalog: unknown material")

	// ErrNegativeCost indicates a negative breach_time, consumable weight,
	// or tool weight was supplied; all cost fields must be non-negative.
	ErrNegativeCost = errors.New("catalog: cost fields must be non-negative")
)
