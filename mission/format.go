package mission

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatLine renders one valid path's emission line:
//
//	<zero-padded counter> [ttttt,ccc,www] <t0,t1,...,t19> node0-node1-...-nodeN
//
// counterWidth sets the zero-padding width of counter; the time/consumable/
// weight fields use fixed widths 5/3/3 matching the documented placeholder,
// but never truncate a value wider than its field.
func FormatLine(counter int, p AssembledPath, counterWidth int) string {
	counterStr := fmt.Sprintf("%0*d", counterWidth, counter)

	tools := make([]string, len(p.Metadata.ToolWeights))
	for i, w := range p.Metadata.ToolWeights {
		tools[i] = strconv.FormatInt(w, 10)
	}

	return fmt.Sprintf("%s [%05d,%03d,%03d] <%s> %s",
		counterStr,
		p.Metadata.TotalTimeS,
		p.Metadata.TotalConsumableLb,
		p.Metadata.TotalWeightLb,
		strings.Join(tools, ","),
		p.Render(),
	)
}
