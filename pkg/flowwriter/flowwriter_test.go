package flowwriter

import (
	"strings"

	"github.com/tmeadon/nsgflows/pkg/flowlog"
)

func testTuples() []flowlog.TupleContext {
	raw := []struct {
		rule  string
		tuple string
	}{
		{"DefaultRule_AllowInternetOutBound", "1660039344,10.0.0.4,51.104.229.52,50276,443,T,O,A,E,14,2839,14,5801"},
		{"DefaultRule_DenyAllInBound", "1660039356,117.88.229.255,10.0.0.4,50996,23,T,I,D,B,,,,"},
		{"UserRule_ssh", "1660039351,38.88.252.187,10.0.0.4,59246,22,T,I,A"},
	}

	tuples := make([]flowlog.TupleContext, 0)
	for _, r := range raw {
		t, err := flowlog.ParseTuple(r.tuple)
		if err != nil {
			panic(err)
		}
		tuples = append(tuples, flowlog.TupleContext{
			Time:   "2022-08-09T10:03:27.7257644Z",
			Source: "NSG-VIEW",
			Rule:   r.rule,
			Tuple:  t,
		})
	}
	return tuples
}

func nonEmptyLines(s string) []string {
	lines := make([]string, 0)
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
