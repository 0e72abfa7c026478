package linesplit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

var (
	ErrNoFraming = errors.New("pipeline has no framing")
	ErrNoOutputs = errors.New("pipeline has no outputs")
)

func NewPipeline(name string, options PipelineOptions) *Pipeline {
	if options.StalledInputThreshold == 0 {
		options.StalledInputThreshold = 24 * time.Hour
	}
	var p Pipeline
	p.opts = options
	p.Name = name
	return &p
}

type Pipeline struct {
	Name    string
	outputs []NamedEntity[OutputPlugin]
	opts    PipelineOptions
}

type PipelineOptions struct {
	Framing               FramingPlugin
	StalledInputThreshold time.Duration
	// SkipEmpty keeps empty lines away from outputs. Line numbers still
	// count them.
	SkipEmpty bool
}

type Result struct {
	Total   int
	Skipped int
	Errors  int
	Start   time.Time
	Finish  time.Time
}

func (r *Result) Summary() string {
	return fmt.Sprintf("Total=%d Skipped=%d Errors=%d Elapsed=%s",
		r.Total, r.Skipped, r.Errors, r.Finish.Sub(r.Start))
}

const ChanBufferSize = 2

func (p *Pipeline) GetName() string {
	return p.Name
}

func (p *Pipeline) Output(name string, plugin OutputPlugin) {
	p.outputs = append(p.outputs, NamedEntity[OutputPlugin]{
		Name:  name,
		Value: plugin,
	})
}

// Run frames reader into lines and hands each line to every output in the
// order the outputs were added.
func (p *Pipeline) Run(ctx context.Context, reader io.Reader) (*Result, error) {
	if p.opts.Framing == nil {
		return nil, ErrNoFraming
	}
	if len(p.outputs) == 0 {
		return nil, ErrNoOutputs
	}

	var stop context.CancelCauseFunc
	ctx, stop = context.WithCancelCause(ctx)
	defer stop(nil)
	ctx = context.WithValue(ctx, ContextKeyPipelineName, p.GetName())
	log := ContextLogger(ctx)

	frames := make(chan Line, ChanBufferSize)
	framingDone := make(chan error, 1)
	go func() {
		framingDone <- p.opts.Framing.Run(ctx, reader, frames)
	}()

	outputCtx := make([]context.Context, len(p.outputs))
	for i, output := range p.outputs {
		outputCtx[i] = context.WithValue(ctx, ContextKeyPluginName, output.Name)
	}

	result := &Result{Start: time.Now()}
	total, failed := PumpToFunction(ctx, frames, p.opts.StalledInputThreshold, func(line Line) error {
		if p.opts.SkipEmpty && line.Text == "" {
			result.Skipped++
			return nil
		}
		var errs []error
		for i, output := range p.outputs {
			if err := output.Value.Run(outputCtx[i], line); err != nil {
				errs = append(errs, fmt.Errorf("output[%s]: %w", output.Name, err))
			}
		}
		return errors.Join(errs...)
	})
	result.Total = total
	result.Errors = failed
	result.Finish = time.Now()

	// framing may still be blocked on its reader; don't wait for it
	if ctx.Err() != nil {
		log.Info("stopping pipeline", "cause", context.Cause(ctx))
		return result, context.Cause(ctx)
	}
	if err := <-framingDone; err != nil {
		return result, fmt.Errorf("framing failed: %w", err)
	}

	log.Debug("pipeline finished", "summary", result.Summary())
	return result, nil
}
