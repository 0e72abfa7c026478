package codec

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nicwaller/linesplit"
)

var ErrUnknownCodec = errors.New("unknown codec")

type Options struct {
	// Width of the number column for "numbered"
	Width   int
	NoColor bool
}

var registry = map[string]func(Options) linesplit.CodecPlugin{
	"plain": func(o Options) linesplit.CodecPlugin {
		return Plain(PlainOptions{Width: o.Width, NoColor: o.NoColor})
	},
	"numbered": func(o Options) linesplit.CodecPlugin {
		return Plain(PlainOptions{Numbered: true, Width: o.Width, NoColor: o.NoColor})
	},
	"json": func(Options) linesplit.CodecPlugin { return Json() },
	"yaml": func(Options) linesplit.CodecPlugin { return Yaml() },
	"kv":   func(Options) linesplit.CodecPlugin { return Kv() },
}

func ByName(name string, opts Options) (linesplit.CodecPlugin, error) {
	name = linesplit.CoalesceStr(name, "plain")
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownCodec, name, Names())
	}
	return build(opts), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
