package codec

import (
	"bytes"

	"github.com/nicwaller/linesplit"
	"gopkg.in/yaml.v3"
)

// Yaml writes each line as its own document so that a run of lines is a
// valid multi-document stream.
func Yaml() linesplit.CodecPlugin {
	return &yamlCodec{}
}

type yamlCodec struct{}

type yamlLine struct {
	Line int    `yaml:"line"`
	Text string `yaml:"text"`
}

func (p *yamlCodec) Encode(line linesplit.Line) ([]byte, error) {
	dat, err := yaml.Marshal(yamlLine{Line: line.Number, Text: line.Text})
	if err != nil {
		return nil, err
	}
	out := []byte("---\n")
	return append(out, bytes.TrimSuffix(dat, []byte("\n"))...), nil
}

func (p *yamlCodec) Decode(dat []byte) (linesplit.Line, error) {
	var v yamlLine
	err := yaml.Unmarshal(dat, &v)
	return linesplit.Line{Number: v.Line, Text: v.Text}, err
}
