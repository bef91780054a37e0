package flowwriter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tmeadon/nsgflows/pkg/flowlog"
)

// LineWriter prints one space separated line per tuple.
type LineWriter struct {
	w *bufio.Writer
}

func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{
		w: bufio.NewWriter(w),
	}
}

func FormatLine(t flowlog.TupleContext) string {
	return strings.Join([]string{
		t.Time,
		t.Source,
		t.Rule,
		t.Tuple.Action,
		t.Tuple.Direction,
		t.Tuple.SourceIP,
		t.Tuple.SourcePort,
		t.Tuple.DestIP,
		t.Tuple.DestPort,
	}, " ")
}

func (lw *LineWriter) WriteFlowTuple(t flowlog.TupleContext) error {
	if _, err := fmt.Fprintln(lw.w, FormatLine(t)); err != nil {
		return fmt.Errorf("failed to write flow tuple: %w", err)
	}
	return nil
}

func (lw *LineWriter) Flush() error {
	return lw.w.Flush()
}
