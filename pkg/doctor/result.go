package doctor

import "fmt"

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g. "bin: /data/data/com.termux/files/usr/bin"
	Status  Status   // OK or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Fail marks the result failed with a detail line.
func (r *Result) Fail(detail string, err error) Result {
	r.Status = StatusFail
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Failf is Fail with a formatted message used for both detail and error.
func (r *Result) Failf(format string, args ...interface{}) Result {
	return r.Fail(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}

// AddDetailf appends a formatted detail line.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	r.Details = append(r.Details, fmt.Sprintf(format, args...))
	return r
}
