package control

import (
	"fmt"
	"os"
)

// Handler receives diagnostics produced during parsing and extraction.
//
// Warn reports a non-fatal problem; the operation that raised it
// continues. Crit accompanies a fatal error return. The context is nil for
// problems that have no source position, such as a failure to open the
// input file.
type Handler interface {
	Warn(ctx *Context, msg string)
	Crit(ctx *Context, msg string)
}

// DefaultHandler prints diagnostics to standard error. It is used wherever
// a Handler is expected but none was provided.
var DefaultHandler Handler = stderrHandler{}

type stderrHandler struct{}

func (stderrHandler) Warn(ctx *Context, msg string) { emit("warning", ctx, msg) }

func (stderrHandler) Crit(ctx *Context, msg string) { emit("critical error", ctx, msg) }

func emit(level string, ctx *Context, msg string) {
	if ctx != nil {
		fmt.Fprintf(os.Stderr, "%s: %s at %s\n", level, msg, ctx)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", level, msg)
}
