package check

import (
	"errors"
	"fmt"
)

// Fail sets the result to failed status with a message.
func (r *Result) Fail(message string, err error) Result {
	r.Status = StatusFail
	r.Message = message
	if err == nil {
		err = errors.New(message)
	}
	r.Err = err
	return *r
}

// Failf sets the result to failed status with a formatted message.
func (r *Result) Failf(format string, args ...interface{}) Result {
	return r.Fail(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}

// Pass sets the result to OK status.
func (r *Result) Pass() Result {
	r.Status = StatusOK
	return *r
}

// WithOutput records the captured output of the wrapped tool.
func (r *Result) WithOutput(stdout, stderr string) *Result {
	r.Stdout = &stdout
	r.Stderr = &stderr
	return r
}

// WithRemedy sets the fix command suggested to the user.
func (r *Result) WithRemedy(command string) *Result {
	r.Remedy = command
	return r
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
