package framing

import (
	"context"
	"io"

	"github.com/nicwaller/linesplit"
)

// Lines reads the whole input and then cuts it at "\n" and "\r\n".
// See linesplit.Split for how empty and trailing lines are treated.
//
//goland:noinspection GoUnusedExportedFunction
func Lines() linesplit.FramingPlugin {
	return &lines{}
}

type lines struct{}

func (p *lines) Run(ctx context.Context, reader io.Reader, frames chan<- linesplit.Line) error {
	defer close(frames)
	ctx = context.WithValue(ctx, linesplit.ContextKeyPluginType, "framing[lines]")
	log := linesplit.ContextLogger(ctx)

	text, err := readAll(ctx, reader)
	if err != nil {
		return err
	}

	count := 0
	for line := range linesplit.Number(text) {
		if !linesplit.SendFrame(ctx, frames, line) {
			log.Debug("stopped framing early", "cause", context.Cause(ctx), "count", count)
			return context.Cause(ctx)
		}
		count++
	}
	log.Debug("framed lines", "count", count)
	return nil
}
