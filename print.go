package errtrace

import (
	"io"
	"os"
	"strings"
)

// String renders every record, newest first, in the diagnostic format:
//
//	ERROR: <message> (origin: <origin>, type: <type>)
//	<stack>
func (t *Trace) String() string {
	var b strings.Builder
	for _, r := range t.records {
		b.WriteString(r.format())
	}
	return b.String()
}

// WriteTo writes the diagnostic rendering of the trace to w.
func (t *Trace) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

// Print writes the trace to its diagnostic sink (os.Stderr unless configured
// with WithWriter). Write failures are ignored.
func (t *Trace) Print() {
	sink := t.sink
	if sink == nil {
		sink = os.Stderr
	}
	_, _ = t.WriteTo(sink)
}
