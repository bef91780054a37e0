package flowlog

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DirectionInbound  = "I"
	DirectionOutbound = "O"

	ActionAllow = "A"
	ActionDeny  = "D"

	minTupleFields = 8
	v2TupleFields  = 13
)

var ErrMalformedTuple = errors.New("malformed flow tuple")

type MalformedTupleError struct {
	Tuple  string
	Fields int
}

func (e *MalformedTupleError) Error() string {
	return fmt.Sprintf("flow tuple %q has %d fields, expected at least %d", e.Tuple, e.Fields, minTupleFields)
}

func (e *MalformedTupleError) Is(target error) bool {
	return target == ErrMalformedTuple
}

type Tuple struct {
	Timestamp  string
	SourceIP   string
	DestIP     string
	SourcePort string
	DestPort   string
	Protocol   string
	Direction  string
	Action     string

	// version 2 only
	State          string
	SrcToDestBytes string
	DestToSrcBytes string
}

func ParseTuple(s string) (Tuple, error) {
	f := strings.Split(s, ",")
	if len(f) < minTupleFields {
		return Tuple{}, &MalformedTupleError{Tuple: s, Fields: len(f)}
	}

	t := Tuple{
		Timestamp:  f[0],
		SourceIP:   f[1],
		DestIP:     f[2],
		SourcePort: f[3],
		DestPort:   f[4],
		Protocol:   f[5],
		Direction:  f[6],
		Action:     f[7],
	}

	// include the flow log v2 properties if present
	if len(f) >= v2TupleFields {
		t.State = f[8]
		t.SrcToDestBytes = f[10]
		t.DestToSrcBytes = f[12]
	}

	return t, nil
}
