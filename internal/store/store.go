// Package store 实现 credentials 文件的内存表示与磁盘持久化，
// 按 dotted key（section.key）提供 get/set/list/remove。
//
// 跨进程写入不加锁：atomic replace 保证单次写入完整，但两个进程
// 并发 set 时后写者整体胜出（已知行为，单用户本地工具可接受）。
package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/aisafe/aisafe/internal/errors"
)

// Store 拥有一个 credentials 文件。路径在构造时解析完成并固定；
// 进程内多 goroutine 使用由 mu 串行化。
type Store struct {
	path string

	mu   sync.Mutex
	file *File // nil = 尚未加载
}

// Open 在给定路径上打开 store。文件不存在不报错，首次 Set 时创建。
func Open(path string) *Store {
	return &Store{path: path}
}

// Path 返回解析后的 credentials 文件路径。
func (s *Store) Path() string { return s.path }

// Reload 清除缓存，下次访问时重新读盘。
func (s *Store) Reload() {
	s.mu.Lock()
	s.file = nil
	s.mu.Unlock()
}

// Get 按 dotted key 查找值。section 或 key 不存在 → AISAFE_KEY_NOT_FOUND。
func (s *Store) Get(key string) (Value, *errors.AError) {
	return s.get(key, nil)
}

// GetDefault 同 Get，但缺失时返回 def 而非报错。
func (s *Store) GetDefault(key string, def Value) (Value, *errors.AError) {
	return s.get(key, &def)
}

func (s *Store) get(key string, def *Value) (Value, *errors.AError) {
	section, field, ae := SplitKey(key)
	if ae != nil {
		return Value{}, ae
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	f, ae := s.loadLocked()
	if ae != nil {
		return Value{}, ae
	}

	if sec, ok := f.Section(section); ok {
		if v, ok := sec.Get(field); ok {
			return v, nil
		}
	}
	if def != nil {
		return *def, nil
	}
	return Value{}, errors.New(errors.CodeKeyNotFound, "key not found", map[string]any{"key": key})
}

// GetSection 返回整个 section 的 key → Value 副本。
// section 不存在返回空映射（list 类读取宽容处理，不报错）。
func (s *Store) GetSection(name string) (map[string]Value, *errors.AError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ae := s.loadLocked()
	if ae != nil {
		return nil, ae
	}
	if sec, ok := f.Section(name); ok {
		return sec.Map(), nil
	}
	return map[string]Value{}, nil
}

// Set 写入一个值并原子持久化。section 不存在则创建；
// key 已存在则覆盖并保留位置。
func (s *Store) Set(key string, v Value) *errors.AError {
	section, field, ae := SplitKey(key)
	if ae != nil {
		return ae
	}
	// 非法 UTF-8 无法写进 TOML；静默替换成 U+FFFD 会改掉 secret 本身
	if v.Kind() == KindString && !utf8.ValidString(v.s) {
		return errors.New(errors.CodeKeyInvalid,
			"value must be valid UTF-8", map[string]any{"key": key})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 变更操作总是先重读磁盘，避免跨进程读到陈旧副本
	f, ae := s.readLocked()
	if ae != nil {
		return ae
	}
	f.Ensure(section).Set(field, v)
	if ae := s.persistLocked(f); ae != nil {
		return ae
	}
	s.file = f
	return nil
}

// Remove 删除一个 key 并持久化。key 不存在 → AISAFE_KEY_NOT_FOUND。
// section 变空后保留空 section，不做结构性删除。
func (s *Store) Remove(key string) *errors.AError {
	section, field, ae := SplitKey(key)
	if ae != nil {
		return ae
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ae := s.readLocked()
	if ae != nil {
		return ae
	}
	sec, ok := f.Section(section)
	if !ok || !sec.Delete(field) {
		return errors.New(errors.CodeKeyNotFound, "key not found", map[string]any{"key": key})
	}
	if ae := s.persistLocked(f); ae != nil {
		return ae
	}
	s.file = f
	return nil
}

// SectionKeys 是 List 的一项：一个 section 及其 key 列表（不含值）。
type SectionKeys struct {
	Section string   `json:"section" yaml:"section"`
	Keys    []string `json:"keys" yaml:"keys"`
}

// List 按文件顺序枚举全部 section 与 key。只列结构、不列值，
// 避免通用列表输出意外带出 secret。
func (s *Store) List() ([]SectionKeys, *errors.AError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ae := s.loadLocked()
	if ae != nil {
		return nil, ae
	}

	out := make([]SectionKeys, 0, f.Len())
	for _, name := range f.Names() {
		sec, _ := f.Section(name)
		out = append(out, SectionKeys{Section: name, Keys: sec.Keys()})
	}
	return out, nil
}

// loadLocked 返回缓存的 File，首次访问时读盘。调用方须持有 mu。
func (s *Store) loadLocked() (*File, *errors.AError) {
	if s.file != nil {
		return s.file, nil
	}
	f, ae := s.readLocked()
	if ae != nil {
		return nil, ae
	}
	s.file = f
	return f, nil
}

// readLocked 总是从磁盘读取。文件不存在视为空 File。
func (s *Store) readLocked() (*File, *errors.AError) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewFile(), nil
		}
		return nil, errors.Wrap(errors.CodeIOFailed, "failed to read credentials file",
			map[string]any{"path": s.path}, err)
	}
	return Parse(data)
}

// persistLocked 序列化并原子替换目标文件：写入同目录随机后缀
// 临时文件再 rename。崩溃或并发读只会看到旧版或新版完整文件。
// 目录 0700、文件 0600（唯一的信任边界：其他本地用户不可读）。
func (s *Store) persistLocked(f *File) *errors.AError {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(errors.CodeIOFailed, "failed to create config directory",
			map[string]any{"dir": dir}, err)
	}

	randBytes := make([]byte, 4)
	_, _ = rand.Read(randBytes)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.tmp.%s",
		filepath.Base(s.path), hex.EncodeToString(randBytes)))

	if err := os.WriteFile(tmpPath, Encode(f), 0o600); err != nil {
		return errors.Wrap(errors.CodeIOFailed, "failed to write temp file",
			map[string]any{"path": tmpPath}, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(errors.CodeIOFailed, "failed to replace credentials file",
			map[string]any{"path": s.path}, err)
	}
	return nil
}
