package store

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind 标识 Value 的标量类型。
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value 是带标签的标量变体。kind 在解析时由 TOML 字面量决定：
// 引号=string、纯数字=int、带小数点=float、true/false=bool。
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

func String(s string) Value { return Value{kind: KindString, s: s} }
func Int(i int64) Value     { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func Bool(b bool) Value     { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind { return v.kind }

// Go 返回底层标量（string / int64 / float64 / bool）。
func (v Value) Go() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		return v.s
	}
}

// String 返回人类可读形式（string 不带引号）。
func (v Value) String() string {
	if v.kind == KindString {
		return v.s
	}
	return v.Literal()
}

// Literal 返回 TOML 字面量。float 始终带小数点或指数，
// 保证重新解析后仍是 float。
func (v Value) Literal() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		// inf/nan 是合法 TOML float，必须用 TOML 拼写，
		// 不能走 strconv（+Inf/NaN）或补小数点
		switch {
		case math.IsInf(v.f, 1):
			return "inf"
		case math.IsInf(v.f, -1):
			return "-inf"
		case math.IsNaN(v.f):
			return "nan"
		}
		s := strconv.FormatFloat(v.f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") || strings.HasPrefix(s, "0x") {
			s += ".0"
		}
		return s
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return quoteString(v.s)
	}
}

// MarshalJSON / MarshalYAML 输出底层标量，供 output envelope 使用。
func (v Value) MarshalJSON() ([]byte, error) { return json.Marshal(v.Go()) }
func (v Value) MarshalYAML() (any, error)    { return v.Go(), nil }

// fromTOML 把 BurntSushi 解码结果映射为 Value；非标量返回 false。
func fromTOML(raw any) (Value, bool) {
	switch t := raw.(type) {
	case string:
		return String(t), true
	case int64:
		return Int(t), true
	case float64:
		return Float(t), true
	case bool:
		return Bool(t), true
	default:
		return Value{}, false
	}
}

// quoteString 生成 TOML basic string。
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(fmt.Sprintf(`\u%04X`, r))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
