package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// streamWriter routes entries by level: error and above go to errOut,
// everything else to out.
type streamWriter struct {
	out    io.Writer
	errOut io.Writer
}

var _ zerolog.LevelWriter = streamWriter{}

func newStreamWriter(out, errOut io.Writer) streamWriter {
	return streamWriter{out: out, errOut: errOut}
}

// Write is used for entries without a level.
func (w streamWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w streamWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= zerolog.ErrorLevel && level <= zerolog.PanicLevel {
		return w.errOut.Write(p)
	}

	return w.out.Write(p)
}
