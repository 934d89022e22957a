package logging

import (
	"context"
	"log"
)

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
}

// Log logs a message taking the current context into account.
func Log(
	ctx context.Context,
	message string,
) {
	log.Print(message)
}

// Logf logs a formatted message taking the current context into account.
func Logf(
	ctx context.Context,
	format string,
	v ...interface{},
) {
	log.Printf(format, v...)
}
