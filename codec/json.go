package codec

import (
	"encoding/json"

	"github.com/nicwaller/linesplit"
)

func Json() linesplit.CodecPlugin {
	return &jsonCodec{}
}

type jsonCodec struct{}

type jsonLine struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

func (p *jsonCodec) Encode(line linesplit.Line) ([]byte, error) {
	return json.Marshal(jsonLine{Line: line.Number, Text: line.Text})
}

func (p *jsonCodec) Decode(dat []byte) (linesplit.Line, error) {
	var v jsonLine
	err := json.Unmarshal(dat, &v)
	return linesplit.Line{Number: v.Line, Text: v.Text}, err
}
