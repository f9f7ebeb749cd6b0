package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aisafe/aisafe/internal/paths"
	"github.com/aisafe/aisafe/internal/secret"
	"github.com/aisafe/aisafe/internal/store"
)

// 组合 paths + store：解析路径、首写建目录、dotted-key CRUD
func TestPathsAndStore_Integration(t *testing.T) {
	tmp := t.TempDir()
	p := paths.Resolve(paths.Options{ConfigDir: tmp, HomeDir: tmp})
	want := filepath.Join(tmp, "aisafe", "credentials.toml")
	if p != want {
		t.Fatalf("resolved %q want %q", p, want)
	}

	s := store.Open(p)
	if ae := s.Set("database.password", store.String("s3cret")); ae != nil {
		t.Fatalf("set: %v", ae)
	}
	if _, err := os.Stat(filepath.Join(tmp, "aisafe")); err != nil {
		t.Fatal("config dir should be created on first write")
	}

	v, ae := s.Get("database.password")
	if ae != nil {
		t.Fatal(ae)
	}
	if v.Go() != "s3cret" {
		t.Fatalf("got %v", v.Go())
	}
}

// 两个 store 实例互不串扰（显式句柄取代进程级全局状态）
func TestMultipleStores_Independent(t *testing.T) {
	tmp := t.TempDir()
	s1 := store.Open(filepath.Join(tmp, "one.toml"))
	s2 := store.Open(filepath.Join(tmp, "two.toml"))

	if ae := s1.Set("a.k", store.String("1")); ae != nil {
		t.Fatal(ae)
	}
	if ae := s2.Set("a.k", store.String("2")); ae != nil {
		t.Fatal(ae)
	}

	v1, _ := s1.Get("a.k")
	v2, _ := s2.Get("a.k")
	if v1.Go() != "1" || v2.Go() != "2" {
		t.Fatalf("got %v / %v", v1.Go(), v2.Go())
	}
}

type mapKeyring struct {
	data map[string]string
}

func (m *mapKeyring) Get(service, account string) (string, error) {
	if v, ok := m.data[service+"/"+account]; ok {
		return v, nil
	}
	return "", os.ErrNotExist
}

func (m *mapKeyring) Set(service, account, value string) error {
	m.data[service+"/"+account] = value
	return nil
}

func (m *mapKeyring) Delete(service, account string) error {
	delete(m.data, service+"/"+account)
	return nil
}

// 存 keyring 引用、取时解析：store 与 secret 的协作路径
func TestStoreWithKeyringReference_Integration(t *testing.T) {
	kr := &mapKeyring{data: map[string]string{}}
	opts := secret.Options{Keyring: kr}

	ref, ae := secret.Store("api.token", "tok_123", opts)
	if ae != nil {
		t.Fatal(ae)
	}

	s := store.Open(filepath.Join(t.TempDir(), "credentials.toml"))
	if ae := s.Set("api.token", store.String(ref)); ae != nil {
		t.Fatal(ae)
	}

	v, ae := s.Get("api.token")
	if ae != nil {
		t.Fatal(ae)
	}
	got, ae := secret.Resolve(v.String(), opts)
	if ae != nil {
		t.Fatal(ae)
	}
	if got != "tok_123" {
		t.Fatalf("resolved %q", got)
	}

	// 文件内容只含引用，不含真实 secret
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "tok_123") || !strings.Contains(string(data), "keyring:api.token") {
		t.Fatalf("file:\n%s", data)
	}
}
