package output

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/nicwaller/linesplit"
	"github.com/nicwaller/linesplit/codec"
)

func TestWriter_Run(t *testing.T) {
	var buf bytes.Buffer
	out := Writer(WriterOptions{Writer: &buf})
	for _, line := range linesplit.Numbered([]string{"a", "", "c"}) {
		if err := out.Run(context.Background(), line); err != nil {
			t.Error(err)
		}
	}
	const expected = "a\n\nc\n"
	if buf.String() != expected {
		t.Errorf(`Expected %q but got %q`, expected, buf.String())
	}
}

func TestWriter_RunWithCodec(t *testing.T) {
	var buf bytes.Buffer
	out := Writer(WriterOptions{Writer: &buf, Codec: codec.Json()})
	if err := out.Run(context.Background(), linesplit.Line{Number: 1, Text: "x"}); err != nil {
		t.Error(err)
	}
	const expected = "{\"line\":1,\"text\":\"x\"}\n"
	if buf.String() != expected {
		t.Errorf(`Expected %q but got %q`, expected, buf.String())
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_RunWriteError(t *testing.T) {
	out := Writer(WriterOptions{Writer: brokenWriter{}})
	if err := out.Run(context.Background(), linesplit.Line{Number: 1, Text: "x"}); err == nil {
		t.Error("expected an error")
	}
}

func TestWriter_RunConcurrent(t *testing.T) {
	var buf bytes.Buffer
	out := Writer(WriterOptions{Writer: &buf})

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = out.Run(context.Background(), linesplit.Line{Number: i, Text: "same line"})
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != n {
		t.Fatalf("Expected %d lines but got %d", n, len(lines))
	}
	for _, line := range lines {
		if line != "same line" {
			t.Errorf("interleaved output: %q", line)
		}
	}
}
