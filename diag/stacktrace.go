package diag

import (
	"fmt"
	"sync"

	pkgerrors "github.com/pkg/errors"
)

// Stacktrace is an opaque captured call stack with a display contract, per
// the core only promises a handle that resolves lazily and
// caches its resolved frames after the first render.
//
// Capture itself is delegated to github.com/pkg/errors, which already
// records a runtime.Callers frame list on construction; Stacktrace adds the
// lazy-resolve-once behaviour this package layers on top of it.
type Stacktrace struct {
	once     sync.Once
	captured error
	skip     int
	rendered string
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// NewStacktrace captures the call stack starting at its caller, then drops
// skip further frames. pkg/errors records frames from the function that
// calls errors.New (NewStacktrace itself), so that first frame is always
// dropped as well.
func NewStacktrace(skip int) *Stacktrace {
	return &Stacktrace{captured: pkgerrors.New("stacktrace"), skip: skip + 1}
}

// String resolves and returns the formatted stack, caching the result after
// the first call.
func (s *Stacktrace) String() string {
	s.once.Do(s.resolve)
	return s.rendered
}

func (s *Stacktrace) resolve() {
	tracer, ok := s.captured.(stackTracer)
	if !ok {
		s.rendered = ""
		return
	}
	frames := tracer.StackTrace()
	if s.skip > 0 && s.skip < len(frames) {
		frames = frames[s.skip:]
	} else if s.skip >= len(frames) {
		frames = nil
	}
	s.rendered = fmt.Sprintf("%+v", frames)
}
