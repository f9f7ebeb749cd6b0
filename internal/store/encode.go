package store

import "bytes"

// Encode 以确定性字节序列化 File：section 与 key 均按首次插入顺序，
// section 之间一个空行。同一逻辑内容总是产生相同字节（幂等性前提）。
func Encode(f *File) []byte {
	var buf bytes.Buffer
	for i, name := range f.names {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteByte('[')
		buf.WriteString(encodeKey(name))
		buf.WriteString("]\n")

		sec := f.sections[name]
		for _, key := range sec.keys {
			buf.WriteString(encodeKey(key))
			buf.WriteString(" = ")
			buf.WriteString(sec.values[key].Literal())
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// encodeKey 输出 TOML key：bare key 直接写，其余加引号
// （含 '.' 的名字必须引号，否则会被解析为嵌套）。
func encodeKey(k string) string {
	if isBareKey(k) {
		return k
	}
	return quoteString(k)
}

func isBareKey(k string) bool {
	if k == "" {
		return false
	}
	for _, r := range k {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}
