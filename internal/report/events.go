// Package report renders the scheduler's event stream and run summaries.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"ticksched/internal/sched"
)

// Record flattens an event into the line format consumed downstream:
// event kind and tick, plus process fields and annotations when present.
func Record(ev sched.Event) map[string]any {
	rec := map[string]any{
		"event": ev.Kind.String(),
		"tick":  ev.Tick,
	}
	if j := ev.Job; j != nil {
		rec["pid"] = j.PID
		rec["state"] = j.State.String()
		rec["arrival"] = j.Arrival
		rec["burst"] = j.Burst
		rec["remaining"] = j.Remaining
		rec["priority"] = j.Priority
	}
	for k, v := range ev.Attrs {
		rec[k] = v
	}
	return rec
}

// writerSink holds the first write error; later events are dropped.
type writerSink struct {
	mu  sync.Mutex
	err error
}

func (w *writerSink) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Err returns the first write error, if any.
func (w *writerSink) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// JSONSink writes one JSON object per line.
type JSONSink struct {
	writerSink
	enc *json.Encoder
}

func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(w)}
}

func (s *JSONSink) Emit(ev sched.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	if err := s.enc.Encode(Record(ev)); err != nil {
		s.fail(err)
	}
}

// CSVSink writes a header then one row per event. Tick events are kept so
// the log can be replayed tick by tick.
type CSVSink struct {
	writerSink
	w *csv.Writer
}

func NewCSVSink(w io.Writer) *CSVSink {
	cw := csv.NewWriter(w)
	s := &CSVSink{w: cw}
	if err := cw.Write([]string{"tick", "event", "pid", "state", "remaining", "attrs"}); err != nil {
		s.fail(err)
	}
	return s
}

func (s *CSVSink) Emit(ev sched.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}

	row := []string{strconv.FormatInt(ev.Tick, 10), ev.Kind.String(), "", "", "", attrString(ev.Attrs)}
	if j := ev.Job; j != nil {
		row[2] = strconv.FormatInt(int64(j.PID), 10)
		row[3] = j.State.String()
		row[4] = strconv.FormatInt(j.Remaining, 10)
	}
	if err := s.w.Write(row); err != nil {
		s.fail(err)
		return
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.fail(err)
	}
}

// TextSink prints a human readable line per event, skipping tick events for
// the brevity of output.
type TextSink struct {
	writerSink
	w io.Writer
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) Emit(ev sched.Event) {
	if ev.Kind == sched.EventTick {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}

	msg := fmt.Sprintf("Tick: %07d [%s]", ev.Tick, center(ev.Kind.String(), 16))
	if j := ev.Job; j != nil {
		msg += fmt.Sprintf(" => Job: %04d, state=%-10s remaining=%04d", j.PID, j.State, j.Remaining)
	}
	if a := attrString(ev.Attrs); a != "" {
		msg += " " + a
	}
	if _, err := fmt.Fprintln(s.w, msg); err != nil {
		s.fail(err)
	}
}

// center pads str on both sides to width.
func center(str string, width int) string {
	if len(str) >= width {
		return str
	}
	spaces := (width - len(str)) / 2
	return strings.Repeat(" ", spaces) + str + strings.Repeat(" ", width-(spaces+len(str)))
}

// attrString renders annotations as sorted key=value pairs.
func attrString(attrs sched.Annotations) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, attrs[k])
	}
	return strings.Join(parts, " ")
}
