package flowwriter

import "github.com/tmeadon/nsgflows/pkg/flowlog"

// WriterGroup sends every tuple accepted by all of its filters to each of its
// writers.
type WriterGroup struct {
	writers []FlowWriter
	filters []filter
}

func NewWriterGroup(w ...FlowWriter) *WriterGroup {
	return &WriterGroup{
		writers: w,
	}
}

func (wg *WriterGroup) AddWriter(w FlowWriter) {
	wg.writers = append(wg.writers, w)
}

func (wg *WriterGroup) AddFilter(f filter) {
	wg.filters = append(wg.filters, f)
}

func (wg *WriterGroup) Len() int {
	return len(wg.writers)
}

// WriteFlowTuple reports whether the tuple was written.
func (wg *WriterGroup) WriteFlowTuple(t flowlog.TupleContext) (bool, error) {
	for _, f := range wg.filters {
		if !f.Print(t) {
			return false, nil
		}
	}

	for _, w := range wg.writers {
		if err := w.WriteFlowTuple(t); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (wg *WriterGroup) Flush() error {
	for _, w := range wg.writers {
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}
