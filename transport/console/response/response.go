package response

import (
	"fmt"
	"io"
	"iter"

	"hotel/shared/failure"
	"hotel/shared/logger"
)

// Writer renders everything the console shows to the operator.
type Writer struct {
	out io.Writer
}

func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WithMessage writes a single line of text
func (w *Writer) WithMessage(message string) {
	w.println(message)
}

// WithTitle writes a section header preceded by a blank line
func (w *Writer) WithTitle(title string) {
	w.println("\n### " + title + " ###")
}

// WithLines writes one line per element of lines
func (w *Writer) WithLines(lines iter.Seq[string]) {
	for line := range lines {
		w.println(line)
	}
}

// WithError writes the error message prefixed with its failure code
func (w *Writer) WithError(err error) {
	if err == nil {
		return
	}

	w.println(fmt.Sprintf("Error (%s): %s", failure.GetCode(err), err.Error()))
}

// Prompt writes label without a trailing newline
func (w *Writer) Prompt(label string) {
	if _, err := io.WriteString(w.out, label); err != nil {
		logger.ErrorWithStack(err)
	}
}

func (w *Writer) println(line string) {
	if _, err := fmt.Fprintln(w.out, line); err != nil {
		logger.ErrorWithStack(err)
	}
}
