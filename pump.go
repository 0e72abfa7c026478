package linesplit

import (
	"context"
	"fmt"
	"time"
)

// PumpToFunction feeds every line from input to fn until input is closed or
// ctx is done. It returns how many lines were pumped and how many of those fn
// rejected. Errors from fn are logged, they don't stop the pump.
func PumpToFunction(ctx context.Context, input <-chan Line, stallAfter time.Duration, fn func(Line) error) (count int, failed int) {
	log := ContextLogger(ctx)
	log.Debug("starting pump to function")
	if stallAfter <= 0 {
		stallAfter = 24 * time.Hour
	}
functionPump:
	for {
		select {
		case line, more := <-input:
			if !more {
				break functionPump
			}
			count++
			if err := fn(line); err != nil {
				failed++
				log.Warn(fmt.Sprintf("functionPump saw error: %s", err), "line", line.Number)
			}
		case <-time.After(stallAfter):
			log.Info("no lines received", "waited", stallAfter)
		case <-ctx.Done():
			break functionPump
		}
	}
	log.Debug("stopped pump to function",
		"cause", context.Cause(ctx),
		"count", count)
	return
}

// SendFrame delivers one line to frames, giving up when ctx is done.
// It reports false if the line was not delivered.
func SendFrame(ctx context.Context, frames chan<- Line, line Line) bool {
	select {
	case frames <- line:
		return true
	case <-ctx.Done():
		return false
	}
}
