//go:build bertlv_debug

package bertlv

/*
trace_on.go is the live half of the build-tag-gated tracer (spec.md
§5's ambient debug aid). Grounded on go-asn1plus's trc_on.go: a
mutex-guarded io.Writer sink, a mutex-guarded bitmask of enabled EventType
levels read from an environment variable at init, and a package-level
Tracer swappable at runtime via EnableDebug/DisableDebug -- trimmed of
the teacher's reflection-heavy fmtArg argument formatter, since this
package's trace sites pass plain strings rather than arbitrary
Primitive/PDU/Options values.
*/

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// EnvDebugVar is the environment variable read at init to seed the
// enabled EventType levels (comma-separated level names or a decimal
// bitmask).
const EnvDebugVar = "BERTLV_DEBUG"

// Tracer receives trace records emitted by this package's internal
// instrumentation points.
type Tracer interface {
	Trace(rec TraceRecord)
	Enabled(e EventType) bool
}

// TraceRecord is one traced event.
type TraceRecord struct {
	Time time.Time
	Type EventType
	Func string
	Args []any
}

// DefaultTracer writes TraceRecords as single lines to an io.Writer.
type DefaultTracer struct {
	mu   sync.Mutex
	w    io.Writer
	mask uint32
}

// NewDefaultTracer returns a DefaultTracer writing to w.
func NewDefaultTracer(w io.Writer) *DefaultTracer {
	return &DefaultTracer{w: w}
}

func (d *DefaultTracer) EnableLevel(e EventType)  { d.setMask(d.getMask() | uint32(e)) }
func (d *DefaultTracer) DisableLevel(e EventType) { d.setMask(d.getMask() &^ uint32(e)) }
func (d *DefaultTracer) Enabled(e EventType) bool { return d.getMask()&uint32(e) != 0 }

func (d *DefaultTracer) getMask() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mask
}

func (d *DefaultTracer) setMask(m uint32) {
	d.mu.Lock()
	d.mask = m
	d.mu.Unlock()
}

func (d *DefaultTracer) Trace(rec TraceRecord) {
	if !d.Enabled(rec.Type) {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	ts := rec.Time.Format("15:04:05.000")
	parts := make([]string, 0, len(rec.Args))
	for _, a := range rec.Args {
		parts = append(parts, fmt.Sprint(a))
	}
	fmt.Fprintf(d.w, "%s %s: %s\n", ts, rec.Func, strings.Join(parts, ", "))
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{}
)

type discardTracer struct{}

func (*discardTracer) Trace(TraceRecord)      {}
func (*discardTracer) Enabled(EventType) bool { return false }

// EnableDebug installs t as the active Tracer.
func EnableDebug(t Tracer) {
	tmu.Lock()
	tracer = t
	tmu.Unlock()
}

// DisableDebug reverts to the discarding tracer.
func DisableDebug() {
	tmu.Lock()
	tracer = &discardTracer{}
	tmu.Unlock()
}

var eventNames = map[string]EventType{
	"tag":      EventTag,
	"length":   EventLength,
	"parse":    EventParse,
	"encode":   EventEncode,
	"findings": EventFindings,
	"all":      EventAll,
	"none":     EventNone,
}

func debugEvent(level EventType, fn string, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()
	if !t.Enabled(level) {
		return
	}
	t.Trace(TraceRecord{Time: time.Now(), Type: level, Func: fn, Args: args})
}

func debugTag(fn string, args ...any)      { debugEvent(EventTag, fn, args...) }
func debugLength(fn string, args ...any)   { debugEvent(EventLength, fn, args...) }
func debugParse(fn string, args ...any)    { debugEvent(EventParse, fn, args...) }
func debugEncode(fn string, args ...any)   { debugEvent(EventEncode, fn, args...) }
func debugFindings(fn string, args ...any) { debugEvent(EventFindings, fn, args...) }

func init() {
	v := os.Getenv(EnvDebugVar)
	if v == "" {
		return
	}
	var mask uint32
	for _, name := range strings.Split(v, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if e, ok := eventNames[name]; ok {
			mask |= uint32(e)
			continue
		}
		if n, err := strconv.Atoi(name); err == nil {
			mask |= uint32(n)
		}
	}
	dt := NewDefaultTracer(os.Stderr)
	dt.mask = mask
	EnableDebug(dt)
}
