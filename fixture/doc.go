// Package fixture builds deterministic synthetic facility graphs for tests
// and benchmarks: a linear corridor, a branching wing, a patrol cycle, and
// a complete mesh of small wings. Every node is assigned a material from a
// supplied catalog-aware naming function so the resulting graph is
// immediately enumerable by package segment.
package fixture
