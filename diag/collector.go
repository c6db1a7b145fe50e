package diag

import "fmt"

// Errors is the sentinel a Collector returns once a non-recoverable
// diagnostic has been recorded: it carries only the watermark severity, and
// the caller is expected to stop and propagate it.
type Errors struct {
	Sev Severity
}

func (e *Errors) Error() string   { return e.String() }
func (e *Errors) String() string  { return "multiple errors\n" }
func (e *Errors) Severity() Severity { return e.Sev }

var _ error = (*Errors)(nil)

// Collector is an append-only list of diagnostics with a running
// max-severity watermark. It promotes to the Errors sentinel
// the moment a non-recoverable diagnostic arrives; insertion order is
// preserved for iteration.
type Collector struct {
	diags []Diag
	max   Severity
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends d, updates the max-severity watermark, and returns nil when
// d's severity is recoverable; otherwise it returns an *Errors sentinel the
// caller must propagate.
func (c *Collector) Add(d Diag) error {
	c.diags = append(c.diags, d)
	if d.Severity() > c.max {
		c.max = d.Severity()
	}
	if !d.Severity().IsRecoverable() {
		return &Errors{Sev: c.max}
	}
	return nil
}

// MaxSeverity returns the highest severity recorded so far.
func (c *Collector) MaxSeverity() Severity { return c.max }

// Diags returns the recorded diagnostics in insertion order.
func (c *Collector) Diags() []Diag { return c.diags }

// Result returns value unless the watermark ever reached Error or above, in
// which case it returns the zero value of T and an *Errors sentinel.
func Result[T any](c *Collector, value T) (T, error) {
	if c.max.IsError() {
		var zero T
		return zero, &Errors{Sev: c.max}
	}
	return value, nil
}

func (c *Collector) String() string {
	return fmt.Sprintf("Collector{%d diags, max=%s}", len(c.diags), c.max)
}
