package flowlog

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

var ErrMalformedLog = errors.New("malformed flow log")

// FlowLog is the content of a single NSG flow log blob.
type FlowLog struct {
	Records []Record
}

type Record struct {
	Time       string           `json:"time"`
	Properties RecordProperties `json:"properties"`
}

type RecordProperties struct {
	Version int         `json:"Version"`
	Flows   []RuleFlows `json:"flows"`
}

type RuleFlows struct {
	Rule  string `json:"rule"`
	Flows []Flow `json:"flows"`
}

type Flow struct {
	Mac        string   `json:"mac"`
	FlowTuples []string `json:"flowTuples"`
}

// TupleContext is a decoded tuple together with the record, rule and source
// it was found under.
type TupleContext struct {
	Time   string
	Source string
	Rule   string
	Tuple  Tuple
}

type jsonFlowLog struct {
	Records *[]Record `json:"records"`
}

func Parse(data []byte) (*FlowLog, error) {
	var jl jsonFlowLog
	if err := json.Unmarshal(data, &jl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLog, err)
	}

	if jl.Records == nil {
		return nil, fmt.Errorf("%w: missing records", ErrMalformedLog)
	}

	return &FlowLog{Records: *jl.Records}, nil
}

// Walk calls fn for every flow tuple in the log, in document order. It stops
// at the first tuple that fails to parse or the first error returned by fn.
// Walk does not modify the log so it can be called any number of times.
func (l *FlowLog) Walk(source string, fn func(TupleContext) error) error {
	for i, record := range l.Records {
		for _, rule := range record.Properties.Flows {
			for _, flow := range rule.Flows {
				for _, raw := range flow.FlowTuples {
					t, err := ParseTuple(raw)
					if err != nil {
						return fmt.Errorf("%w: record %d, rule %v: %w", ErrMalformedLog, i, rule.Rule, err)
					}

					err = fn(TupleContext{
						Time:   record.Time,
						Source: source,
						Rule:   rule.Rule,
						Tuple:  t,
					})
					if err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// Decode parses a flow log blob and flattens it into tuples. A single
// malformed tuple fails the whole blob.
func Decode(data []byte, source string) ([]TupleContext, error) {
	l, err := Parse(data)
	if err != nil {
		return nil, err
	}

	tuples := make([]TupleContext, 0)
	err = l.Walk(source, func(t TupleContext) error {
		tuples = append(tuples, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tuples, nil
}
