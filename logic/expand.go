package logic

// Expand parses expr and returns its deduplicated set of missions. Each
// mission implicitly begins at "start"; Waypoints holds only the
// post-start sequence.
func Expand(expr string) ([]Mission, error) {
	root, err := ParseExpression(expr)
	if err != nil {
		return nil, err
	}

	seqs := expand(root)

	seen := make(map[string]bool, len(seqs))
	missions := make([]Mission, 0, len(seqs))
	for _, seq := range seqs {
		m := Mission{Waypoints: seq}
		key := m.Render()
		if seen[key] {
			continue
		}
		seen[key] = true
		missions = append(missions, m)
	}

	return missions, nil
}

// expand returns every ordered waypoint sequence node denotes.
func expand(node *Node) [][]string {
	switch node.Kind {
	case KindLeaf:
		return [][]string{{node.Name}}
	case KindOr:
		var out [][]string
		for _, child := range node.Children {
			out = append(out, expand(child)...)
		}

		return out
	case KindAnd:
		childAlts := make([][][]string, len(node.Children))
		for i, child := range node.Children {
			childAlts[i] = expand(child)
		}
		combos := cartesianProduct(childAlts)

		if node.Ordered {
			return concatInOrder(combos)
		}

		return concatAllPermutations(combos)
	default:
		return nil
	}
}

// cartesianProduct returns every combination picking one alternative from
// each entry of childAlts, preserving child index order within each combo.
func cartesianProduct(childAlts [][][]string) [][][]string {
	combos := [][][]string{{}}
	for _, alts := range childAlts {
		var next [][][]string
		for _, combo := range combos {
			for _, alt := range alts {
				extended := make([][]string, len(combo), len(combo)+1)
				copy(extended, combo)
				extended = append(extended, alt)
				next = append(next, extended)
			}
		}
		combos = next
	}

	return combos
}

// concatInOrder flattens each combo in its given (fixed) order, for '_'.
func concatInOrder(combos [][][]string) [][]string {
	out := make([][]string, 0, len(combos))
	for _, combo := range combos {
		out = append(out, concat(combo, identityOrder(len(combo))))
	}

	return out
}

// concatAllPermutations flattens each combo under every permutation of its
// child order, for '+'.
func concatAllPermutations(combos [][][]string) [][]string {
	var out [][]string
	for _, combo := range combos {
		for _, order := range permutations(len(combo)) {
			out = append(out, concat(combo, order))
		}
	}

	return out
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return order
}

// concat joins combo's sequences in the given order into one flat sequence.
func concat(combo [][]string, order []int) []string {
	var total int
	for _, seq := range combo {
		total += len(seq)
	}

	flat := make([]string, 0, total)
	for _, idx := range order {
		flat = append(flat, combo[idx]...)
	}

	return flat
}

// permutations returns all n! permutations of the indices [0,n) via Heap's
// algorithm, iterative to avoid recursion depth concerns for large n.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}

	current := identityOrder(n)
	result := [][]int{append([]int(nil), current...)}

	c := make([]int, n)
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				current[0], current[i] = current[i], current[0]
			} else {
				current[c[i]], current[i] = current[i], current[c[i]]
			}
			result = append(result, append([]int(nil), current...))
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	return result
}
