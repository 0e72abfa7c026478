package codec

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nicwaller/linesplit"
)

// simple key/value pairs on a single line
// example:
//
//	line=3 text="hello world"
//
// See also:
//   - Logstash calls this "kv"
//     https://www.elastic.co/guide/en/logstash/current/plugins-filters-kv.html
//   - Fluentd/Fluentbit calls this "logfmt"
//     https://docs.fluentbit.io/manual/pipeline/parsers/logfmt
func Kv() linesplit.CodecPlugin {
	return &kvCodec{}
}

type kvCodec struct{}

var kvEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func (p *kvCodec) Encode(line linesplit.Line) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("line=")
	sb.WriteString(strconv.Itoa(line.Number))
	sb.WriteString(` text="`)
	sb.WriteString(kvEscaper.Replace(line.Text))
	sb.WriteString(`"`)
	return []byte(sb.String()), nil
}

func (p *kvCodec) Decode(dat []byte) (linesplit.Line, error) {
	var line linesplit.Line
	rest := string(dat)
	for {
		rest = strings.TrimLeft(rest, " ")
		if rest == "" {
			return line, nil
		}

		var pair string
		key, value, quoted, remaining, err := nextPair(rest)
		if err != nil {
			return line, err
		}
		pair, rest = rest[:len(rest)-len(remaining)], remaining

		switch key {
		case "line":
			n, err := strconv.Atoi(value)
			if err != nil {
				return line, fmt.Errorf("bad line number %q: %w", value, err)
			}
			line.Number = n
		case "text":
			line.Text = value
		case "":
			slog.Warn("kv decoder skipped a pair without a key", "pair", pair)
		default:
			slog.Debug("kv decoder ignored unknown key", "key", key, "quoted", quoted)
		}
	}
}

// nextPair reads one key=value pair off the front of s.
// A key without "=" is returned with an empty value.
func nextPair(s string) (key, value string, quoted bool, rest string, err error) {
	end := strings.IndexAny(s, "= ")
	if end < 0 {
		return s, "", false, "", nil
	}
	if s[end] == ' ' {
		return s[:end], "", false, s[end:], nil
	}
	key, s = s[:end], s[end+1:]

	if !strings.HasPrefix(s, `"`) {
		if sp := strings.IndexByte(s, ' '); sp >= 0 {
			return key, s[:sp], false, s[sp:], nil
		}
		return key, s, false, "", nil
	}

	var sb strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			if i+1 < len(s) {
				i++
				sb.WriteByte(s[i])
			}
		case '"':
			return key, sb.String(), true, s[i+1:], nil
		default:
			sb.WriteByte(c)
		}
	}
	return key, "", true, "", fmt.Errorf("unterminated quote in value of %q", key)
}
