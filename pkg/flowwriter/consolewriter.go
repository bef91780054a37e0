package flowwriter

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/tmeadon/nsgflows/pkg/flowlog"
)

var tableHeaders = []string{"time", "nsg", "rule", "src_addr", "src_port", "dst_addr", "dst_port", "direction", "decision", "state", "src_to_dst_bytes", "dst_to_src_bytes"}

// ConsoleWriter buffers tuples into an aligned table which is rendered on
// Flush.
type ConsoleWriter struct {
	w     io.Writer
	table *tablewriter.Table
	rows  int
}

func NewConsoleWriter(w io.Writer) *ConsoleWriter {
	fw := ConsoleWriter{
		w: w,
	}
	fw.initTableWriter()
	return &fw
}

func (fw *ConsoleWriter) initTableWriter() {
	fw.table = tablewriter.NewWriter(fw.w)
	fw.table.SetColumnSeparator("")
	fw.table.SetRowSeparator("")
	fw.table.SetBorder(false)
	fw.table.SetTablePadding("\t")
	fw.table.SetHeaderLine(false)
	fw.table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	fw.table.SetAlignment(tablewriter.ALIGN_LEFT)
	fw.table.SetAutoFormatHeaders(false)
	fw.table.SetAutoWrapText(false)
	fw.table.SetHeader(tableHeaders)
	fw.rows = 0
}

func (fw *ConsoleWriter) WriteFlowTuple(t flowlog.TupleContext) error {
	state := ""
	if t.Tuple.State != "" {
		state = formatState(t.Tuple.State)
	}

	fw.table.Append([]string{t.Time, t.Source, t.Rule, t.Tuple.SourceIP, t.Tuple.SourcePort, t.Tuple.DestIP, t.Tuple.DestPort,
		formatDirection(t.Tuple.Direction), formatDecision(t.Tuple.Action), state, t.Tuple.SrcToDestBytes, t.Tuple.DestToSrcBytes})
	fw.rows++
	return nil
}

func (fw *ConsoleWriter) Flush() error {
	if fw.rows == 0 {
		return nil
	}

	fw.table.Render()
	if _, err := fmt.Fprint(fw.w, "\n"); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	fw.initTableWriter()
	return nil
}
