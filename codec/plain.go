package codec

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/nicwaller/linesplit"
)

//goland:noinspection GoUnusedExportedFunction
func Plain(opts PlainOptions) linesplit.CodecPlugin {
	if opts.Width <= 0 {
		opts.Width = 4
	}
	number := color.New(color.FgYellow)
	if opts.NoColor {
		number.DisableColor()
	}
	return &plainCodec{opts: opts, number: number}
}

type PlainOptions struct {
	// Numbered puts the line number in front of the text, eg. "  12: text"
	Numbered bool
	// Width is the minimum width of the number column
	Width   int
	NoColor bool
}

type plainCodec struct {
	opts   PlainOptions
	number *color.Color
}

func (p *plainCodec) Encode(line linesplit.Line) ([]byte, error) {
	if !p.opts.Numbered {
		return []byte(line.Text), nil
	}
	prefix := p.number.Sprintf("%*d", p.opts.Width, line.Number)
	return []byte(prefix + ": " + line.Text), nil
}

// Decode only understands uncoloured numbers.
func (p *plainCodec) Decode(dat []byte) (linesplit.Line, error) {
	if !p.opts.Numbered {
		return linesplit.Line{Text: string(dat)}, nil
	}
	numB, text, found := bytes.Cut(dat, []byte(": "))
	if !found {
		return linesplit.Line{}, fmt.Errorf("missing line number prefix")
	}
	n, err := strconv.Atoi(string(bytes.TrimSpace(numB)))
	if err != nil {
		return linesplit.Line{}, fmt.Errorf("bad line number: %w", err)
	}
	return linesplit.Line{Number: n, Text: string(text)}, nil
}
