package term

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"

	"github.com/kryksyh/ttynt/internal/palette"
)

// Writer is a buffered ANSI colorize.Sink over any io.Writer. The profile
// decides how palette colors render: ANSI-256 entries degrade to the nearest
// classic color on 16-color terminals, and the Ascii profile emits no
// sequences at all.
type Writer struct {
	buf     *bufio.Writer
	profile termenv.Profile
}

// NewWriter wraps w. Callers must Flush before exiting.
func NewWriter(w io.Writer, profile termenv.Profile) *Writer {
	return &Writer{buf: bufio.NewWriter(w), profile: profile}
}

// SetColor emits the escape sequence selecting c as the foreground color, or
// the background color when background is set.
func (w *Writer) SetColor(c palette.Color, background bool) error {
	if w.profile == termenv.Ascii {
		return nil
	}
	seq := w.profile.Convert(c.Termenv()).Sequence(background)
	if seq == "" {
		return nil
	}
	_, err := w.buf.WriteString(termenv.CSI + seq + "m")
	return err
}

// Reset emits the style reset sequence.
func (w *Writer) Reset() error {
	if w.profile == termenv.Ascii {
		return nil
	}
	_, err := w.buf.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	return err
}

func (w *Writer) WriteString(s string) error {
	_, err := w.buf.WriteString(s)
	return err
}

// WriteLine writes s followed by a newline.
func (w *Writer) WriteLine(s string) error {
	if _, err := w.buf.WriteString(s); err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}
