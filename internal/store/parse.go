package store

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aisafe/aisafe/internal/errors"
)

// Parse 把 TOML 字节解析为两层 File。文档顺序来自 toml.MetaData.Keys()。
// 超出「[section] + 平铺标量」的内容（顶层标量、多层嵌套、数组、
// inline table、datetime）一律报 AISAFE_PARSE_FAILED，不做静默降级。
func Parse(data []byte) (*File, *errors.AError) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, errors.Wrap(errors.CodeParseFailed, "invalid credentials file", nil, err)
	}

	f := NewFile()
	for _, k := range md.Keys() {
		parts := []string(k)
		switch len(parts) {
		case 1:
			name := parts[0]
			if _, ok := raw[name].(map[string]any); !ok {
				return nil, errors.New(errors.CodeParseFailed,
					"top-level value outside a [section]", map[string]any{"key": name})
			}
			f.Ensure(name)
		case 2:
			name, field := parts[0], parts[1]
			secMap, ok := raw[name].(map[string]any)
			if !ok {
				return nil, errors.New(errors.CodeParseFailed,
					"top-level value outside a [section]", map[string]any{"key": name})
			}
			if _, isTable := secMap[field].(map[string]any); isTable {
				return nil, errors.New(errors.CodeParseFailed,
					"nested sections are not supported", map[string]any{"key": name + "." + field})
			}
			v, ok := fromTOML(secMap[field])
			if !ok {
				return nil, errors.New(errors.CodeParseFailed,
					"value must be a string, int, float or bool", map[string]any{"key": name + "." + field})
			}
			f.Ensure(name).Set(field, v)
		default:
			return nil, errors.New(errors.CodeParseFailed,
				"nesting deeper than [section] is not supported",
				map[string]any{"key": strings.Join(parts, ".")})
		}
	}
	return f, nil
}
