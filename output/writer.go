package output

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/nicwaller/linesplit"
	"github.com/nicwaller/linesplit/codec"
)

// Writer writes each line to opts.Writer, encoded and followed by "\n".
func Writer(opts WriterOptions) linesplit.OutputPlugin {
	if opts.Codec == nil {
		opts.Codec = codec.Plain(codec.PlainOptions{})
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	return &writerOutput{opts: opts}
}

type WriterOptions struct {
	Codec  linesplit.CodecPlugin
	Writer io.Writer
}

type writerOutput struct {
	opts WriterOptions
	mu   sync.Mutex
}

func (p *writerOutput) Run(_ context.Context, line linesplit.Line) error {
	dat, err := p.opts.Codec.Encode(line)
	if err != nil {
		return err
	}
	// one write per line so concurrent callers never interleave
	dat = append(dat, '\n')

	p.mu.Lock()
	defer p.mu.Unlock()
	_, err = p.opts.Writer.Write(dat)
	return err
}
