package linesplit

import (
	"context"
	"io"
)

// FramingPlugin cuts an input into lines.
// Implementations must close frames when they return.
type FramingPlugin interface {
	Run(ctx context.Context, reader io.Reader, frames chan<- Line) error
}

type CodecPlugin interface {
	Encode(Line) ([]byte, error)
	Decode([]byte) (Line, error)
}

type OutputPlugin interface {
	Run(context.Context, Line) error
}
