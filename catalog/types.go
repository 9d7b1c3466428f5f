package catalog

// ToolCount is the fixed length of a BreachProfile's tool-weight vector.
const ToolCount = 20

// ToolWeights is a fixed-size, non-negative tool-weight vector. Tools are
// carried, not consumed: combining two profiles takes the elementwise max,
// never a sum.
type ToolWeights [ToolCount]int64

// Max returns the elementwise maximum of w and other.
func (w ToolWeights) Max(other ToolWeights) ToolWeights {
	var out ToolWeights
	for i := range out {
		out[i] = w[i]
		if other[i] > out[i] {
			out[i] = other[i]
		}
	}

	return out
}

// Sum returns the sum of all entries in w.
func (w ToolWeights) Sum() int64 {
	var total int64
	for _, v := range w {
		total += v
	}

	return total
}

// BreachProfile is the cost of breaching a single node of a given material:
// time spent, consumable weight spent once, and the tools required.
type BreachProfile struct {
	BreachTimeS        int64
	ConsumableWeightLb int64
	ToolWeights        ToolWeights
}

// ZeroBreachProfile is the profile resolved for the synthetic start node
// (core.StartNodeID) and for any node with the empty material: zero time,
// zero consumable, zero tools.
var ZeroBreachProfile = BreachProfile{}
