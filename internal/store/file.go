package store

import (
	"strings"
	"unicode/utf8"

	"github.com/aisafe/aisafe/internal/errors"
)

// Section 是平铺的 key → Value 映射，保持 key 首次插入顺序。
type Section struct {
	keys   []string
	values map[string]Value
}

func newSection() *Section {
	return &Section{values: make(map[string]Value)}
}

// Set 写入 key。已存在则覆盖值、保留原位置；新 key 追加到末尾。
func (s *Section) Set(key string, v Value) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

func (s *Section) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *Section) Delete(key string) bool {
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys 返回 key 列表副本（文件顺序）。
func (s *Section) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *Section) Len() int { return len(s.keys) }

// Map 返回 key → Value 副本；调用方修改不影响内部状态。
func (s *Section) Map() map[string]Value {
	out := make(map[string]Value, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// File 是 credentials 文件的内存表示：section → Section 两层映射，
// 保持 section 首次出现顺序（用户分组顺序，非字母序）。
type File struct {
	names    []string
	sections map[string]*Section
}

func NewFile() *File {
	return &File{sections: make(map[string]*Section)}
}

func (f *File) Section(name string) (*Section, bool) {
	s, ok := f.sections[name]
	return s, ok
}

// Ensure 返回指定 section，不存在则追加创建（保持顺序）。
func (f *File) Ensure(name string) *Section {
	if s, ok := f.sections[name]; ok {
		return s
	}
	s := newSection()
	f.sections[name] = s
	f.names = append(f.names, name)
	return s
}

// Names 返回 section 名列表副本（文件顺序）。
func (f *File) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

func (f *File) Len() int { return len(f.names) }

// SplitKey 按第一个 '.' 拆分 dotted key，两段都必须非空。
// 不含 '.' 的 key 对 get/set/remove 无效（list 可用裸 section 名）。
// TOML 文档必须是合法 UTF-8，非法字节序列直接拒掉。
func SplitKey(key string) (section, field string, ae *errors.AError) {
	if !utf8.ValidString(key) {
		return "", "", errors.New(errors.CodeKeyInvalid,
			"key must be valid UTF-8", map[string]any{"key": key})
	}
	section, field, ok := strings.Cut(key, ".")
	if !ok || section == "" || field == "" {
		return "", "", errors.New(errors.CodeKeyInvalid,
			"key must be of the form section.key", map[string]any{"key": key})
	}
	return section, field, nil
}
