package request

import (
	"bufio"
	"context"
	"io"
	"strings"

	"hotel/shared/failure"
	"hotel/transport/console/response"
)

// Request is one operator interaction. It reads answers line by line from the
// session input and reports invalid answers through the response writer.
type Request struct {
	ctx         context.Context
	scanner     *bufio.Scanner
	writer      *response.Writer
	maxAttempts int
}

func New(ctx context.Context, scanner *bufio.Scanner, writer *response.Writer, maxAttempts int) *Request {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Request{
		ctx:         ctx,
		scanner:     scanner,
		writer:      writer,
		maxAttempts: maxAttempts,
	}
}

func (r *Request) Context() context.Context {
	return r.ctx
}

// WithContext returns a shallow copy of r reading from the same input.
func (r *Request) WithContext(ctx context.Context) *Request {
	clone := *r
	clone.ctx = ctx

	return &clone
}

// Ask prompts label and returns the trimmed answer. It returns io.EOF once the
// input is exhausted.
func (r *Request) Ask(label string) (string, error) {
	if err := r.ctx.Err(); err != nil {
		return "", err
	}

	r.writer.Prompt(label)

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(r.scanner.Text()), nil
}

// AskValid prompts label until parse accepts the answer. Every rejection is
// written out. After the configured number of attempts it gives up with
// failure.AttemptsExhausted.
func AskValid[T any](r *Request, label string, parse func(string) (T, error)) (T, error) {
	var zero T

	for range r.maxAttempts {
		answer, err := r.Ask(label)
		if err != nil {
			return zero, err
		}

		value, err := parse(answer)
		if err == nil {
			return value, nil
		}

		r.writer.WithError(err)
	}

	return zero, failure.AttemptsExhausted
}
