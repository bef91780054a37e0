package flowwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tmeadon/nsgflows/pkg/flowlog"
)

var csvHeaders = []string{"time", "nsg", "rule", "src_addr", "src_port", "dst_addr", "dst_port", "direction", "decision", "state", "src_to_dst_bytes", "dst_to_src_bytes"}

type CsvFileWriter struct {
	w *csv.Writer
}

func NewCsvFileWriter(w io.Writer) (*CsvFileWriter, error) {
	c := CsvFileWriter{
		w: csv.NewWriter(w),
	}
	err := c.writeHeaders()
	return &c, err
}

func (c *CsvFileWriter) writeHeaders() error {
	if err := c.w.Write(csvHeaders); err != nil {
		return fmt.Errorf("failed to write csv headers: %w", err)
	}

	return nil
}

func (c *CsvFileWriter) WriteFlowTuple(t flowlog.TupleContext) error {
	state := ""
	if t.Tuple.State != "" {
		state = formatState(t.Tuple.State)
	}

	err := c.w.Write([]string{t.Time, t.Source, t.Rule, t.Tuple.SourceIP, t.Tuple.SourcePort, t.Tuple.DestIP, t.Tuple.DestPort,
		formatDirection(t.Tuple.Direction), formatDecision(t.Tuple.Action), state, t.Tuple.SrcToDestBytes, t.Tuple.DestToSrcBytes})
	if err != nil {
		return fmt.Errorf("failed to write csv line: %w", err)
	}

	return nil
}

func (c *CsvFileWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}
