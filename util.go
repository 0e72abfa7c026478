package linesplit

func Map[I any, O any](mapper func(I) O, orig []I) []O {
	changed := make([]O, 0, len(orig))
	for _, v := range orig {
		changed = append(changed, mapper(v))
	}
	return changed
}

func CoalesceStr(args ...string) string {
	for _, v := range args {
		if v != "" {
			return v
		}
	}
	return ""
}

type NamedEntity[T any] struct {
	Value T
	Name  string
}
