package flowwriter

import "github.com/tmeadon/nsgflows/pkg/flowlog"

// LoadBalancerAddress is the Azure platform address used by load balancer
// health probes.
const LoadBalancerAddress = "168.63.129.16"

const (
	DirectionIn   = "in"
	DirectionOut  = "out"
	DirectionBoth = "both"
)

type DisplayFilter struct {
	DisplayAllowed bool
	Direction      string
	DisplayLB      bool
}

func NewDisplayFilter(displayAllowed bool, direction string, displayLB bool) *DisplayFilter {
	return &DisplayFilter{
		DisplayAllowed: displayAllowed,
		Direction:      direction,
		DisplayLB:      displayLB,
	}
}

func (f *DisplayFilter) Print(t flowlog.TupleContext) bool {
	return f.ShouldDisplay(t.Tuple)
}

// ShouldDisplay applies the action, direction and load balancer gates in
// that order.
func (f *DisplayFilter) ShouldDisplay(t flowlog.Tuple) bool {
	if t.Action != flowlog.ActionDeny && !f.DisplayAllowed {
		return false
	}

	if !f.directionMatches(t.Direction) {
		return false
	}

	return t.SourceIP != LoadBalancerAddress || f.DisplayLB
}

func (f *DisplayFilter) directionMatches(dir string) bool {
	return (dir == flowlog.DirectionInbound && f.Direction == DirectionIn) ||
		(dir == flowlog.DirectionOutbound && f.Direction == DirectionOut) ||
		f.Direction == DirectionBoth
}
