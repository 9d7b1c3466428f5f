// Package logic implements the target-set logic parser and mission
// expander: turning a boolean expression over node identifiers into the
// set of ordered waypoint sequences ("missions") it denotes.
//
// Grammar:
//
//	expr   := term (',' term)*            // OR
//	term   := factor (('+' | '_') factor)* // AND, unordered or ordered
//	factor := NODE_ID | '(' expr ')'
//
// '+' and '_' never mix within the same term without parentheses; ParseExpression
// rejects that case explicitly rather than picking a precedence for it.
//
// Expansion is a separate pass over the parsed AST (not string rewriting):
// a leaf expands to itself, an OR group concatenates its children's
// alternatives, an ordered AND ('_') takes the cartesian product of its
// children's alternatives in a single fixed order, and an unordered AND
// ('+') additionally permutes that order across all k! orderings.
package logic
