package atopile

import (
	"fmt"
	"io"
)

// indentWriter emits atopile source text with 4-space indentation. It tracks
// whether the last emitted line was blank so ensureBreak can insert blank
// separators idempotently; emitted text never contains doubled blank lines.
type indentWriter struct {
	w             io.Writer
	indentLevel   int
	lastLineEmpty bool
}

const indentUnit = "    "

func newIndentWriter(w io.Writer) *indentWriter {
	return &indentWriter{w: w, lastLineEmpty: true}
}

// writeLine writes one line, indenting it unless it is blank.
func (w *indentWriter) writeLine(line string) error {
	if line == "" {
		w.lastLineEmpty = true
		_, err := io.WriteString(w.w, "\n")
		return err
	}

	w.lastLineEmpty = false
	for i := 0; i < w.indentLevel; i++ {
		if _, err := io.WriteString(w.w, indentUnit); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w.w, line+"\n")
	return err
}

// writeLinef formats and writes one line.
func (w *indentWriter) writeLinef(format string, args ...any) error {
	return w.writeLine(fmt.Sprintf(format, args...))
}

// ensureBreak writes a blank line only if the previous line was non-blank.
func (w *indentWriter) ensureBreak() error {
	if w.lastLineEmpty {
		return nil
	}
	return w.writeLine("")
}

// startBlock writes a header line and indents the lines that follow.
func (w *indentWriter) startBlock(line string) error {
	if err := w.writeLine(line); err != nil {
		return err
	}
	w.indentLevel++
	return nil
}

// endBlock drops back out of the current block's indentation.
func (w *indentWriter) endBlock() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
