package flowwriter

import "github.com/tmeadon/nsgflows/pkg/flowlog"

type FlowWriter interface {
	WriteFlowTuple(t flowlog.TupleContext) error
	Flush() error
}

type filter interface {
	Print(t flowlog.TupleContext) bool
}

func formatDirection(dir string) string {
	if dir == flowlog.DirectionInbound {
		return "in"
	} else {
		return "out"
	}
}

func formatDecision(dec string) string {
	if dec == flowlog.ActionAllow {
		return "allow"
	} else {
		return "deny"
	}
}

func formatState(state string) string {
	switch state {
	case "B":
		return "begin"
	case "C":
		return "continuing"
	case "E":
		return "end"
	default:
		return "-"
	}
}
