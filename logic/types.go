package logic

// Kind distinguishes the shape of an expression tree Node.
type Kind int

const (
	// KindLeaf is a single node identifier.
	KindLeaf Kind = iota
	// KindAnd is an AND group ('+' unordered or '_' ordered).
	KindAnd
	// KindOr is an OR group (',').
	KindOr
)

// Node is one expression tree node produced by ParseExpression. AND/OR
// groups are flattened n-ary (e.g. "A+B+C" is one KindAnd node with three
// children), not nested binary trees, matching the grammar's repetition
// operator.
type Node struct {
	Kind     Kind
	Name     string // set only for KindLeaf
	Children []*Node
	// Ordered is meaningful only for KindAnd: true for '_' (fixed order),
	// false for '+' (all k! permutations).
	Ordered bool
}
