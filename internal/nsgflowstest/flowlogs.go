package nsgflowstest

import (
	"fmt"
	"strings"
)

// FlowLog renders a single record, single rule flow log blob containing the
// given tuples.
func FlowLog(time string, rule string, tuples ...string) string {
	quoted := make([]string, 0, len(tuples))
	for _, t := range tuples {
		quoted = append(quoted, fmt.Sprintf("%q", t))
	}

	return fmt.Sprintf(`{"records": [{"time": %q, "properties": {"Version": 2, "flows": [{"rule": %q, "flows": [{"mac": "000D3AD488D1", "flowTuples": [%v]}]}]}}]}`,
		time, rule, strings.Join(quoted, ","))
}
