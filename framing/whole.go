package framing

import (
	"context"
	"errors"
	"io"

	"github.com/nicwaller/linesplit"
)

//goland:noinspection GoUnusedExportedFunction
func Whole() linesplit.FramingPlugin {
	return &whole{}
}

type whole struct{}

// Reads as much as possible and treats it as a single line
// It's the "no-op" of framing styles
func (p *whole) Run(ctx context.Context, reader io.Reader, frames chan<- linesplit.Line) error {
	defer close(frames)
	ctx = context.WithValue(ctx, linesplit.ContextKeyPluginType, "framing[whole]")

	text, err := readAll(ctx, reader)
	if err != nil {
		return err
	}
	if !linesplit.SendFrame(ctx, frames, linesplit.Line{Number: 1, Text: text}) {
		return context.Cause(ctx)
	}
	return nil
}

const readChunkSize = 32 * 1024

// readAll is io.ReadAll, except it gives up between reads once ctx is done.
func readAll(ctx context.Context, reader io.Reader) (string, error) {
	log := linesplit.ContextLogger(ctx)
	b := make([]byte, 0, readChunkSize)
	for {
		if ctx.Err() != nil {
			return "", context.Cause(ctx)
		}
		n, err := reader.Read(b[len(b):cap(b)])
		b = b[:len(b)+n]
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("finished reading input", "bytes", len(b))
				return string(b), nil
			}
			return "", err
		}
		if len(b) == cap(b) {
			// let append pick the new capacity
			b = append(b, 0)[:len(b)]
		}
	}
}
