package tcpd

import (
	"io"
	stdlog "log"
)

var logger *stdlog.Logger

// SetLogger changes the logger used for accept and dial errors.
func SetLogger(w io.Writer) {
	flags := stdlog.Flags()
	prefix := "[tcpd] "
	logger = stdlog.New(w, prefix, flags)
}

func init() {
	SetLogger(io.Discard)
}
