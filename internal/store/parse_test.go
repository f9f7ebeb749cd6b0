package store

import (
	"testing"

	"github.com/aisafe/aisafe/internal/errors"
)

func TestParse_TwoLevelDocument(t *testing.T) {
	doc := []byte(`[database]
host = "localhost"
port = 5432
password = "s3cret"
timeout = 1.5
ssl = true

[api]
key = "tok_abc"
`)
	f, ae := Parse(doc)
	if ae != nil {
		t.Fatalf("unexpected error: %v", ae)
	}

	names := f.Names()
	if len(names) != 2 || names[0] != "database" || names[1] != "api" {
		t.Fatalf("names=%v", names)
	}

	db, _ := f.Section("database")
	keys := db.Keys()
	want := []string{"host", "port", "password", "timeout", "ssl"}
	if len(keys) != len(want) {
		t.Fatalf("keys=%v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys=%v want %v", keys, want)
		}
	}

	if v, _ := db.Get("port"); v.Kind() != KindInt || v.Go() != int64(5432) {
		t.Errorf("port=%v kind=%v", v.Go(), v.Kind())
	}
	if v, _ := db.Get("timeout"); v.Kind() != KindFloat || v.Go() != 1.5 {
		t.Errorf("timeout=%v kind=%v", v.Go(), v.Kind())
	}
	if v, _ := db.Get("ssl"); v.Kind() != KindBool || v.Go() != true {
		t.Errorf("ssl=%v", v.Go())
	}
	if v, _ := db.Get("password"); v.Go() != "s3cret" {
		t.Errorf("password=%v", v.Go())
	}
}

func TestParse_EmptyAndEmptySection(t *testing.T) {
	f, ae := Parse(nil)
	if ae != nil {
		t.Fatal(ae)
	}
	if f.Len() != 0 {
		t.Fatalf("expected empty file, got %v", f.Names())
	}

	f, ae = Parse([]byte("[empty]\n"))
	if ae != nil {
		t.Fatal(ae)
	}
	sec, ok := f.Section("empty")
	if !ok || sec.Len() != 0 {
		t.Fatal("expected retained empty section")
	}
}

func TestParse_Rejections(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"invalid toml", "[broken\n"},
		{"top-level scalar", "host = \"x\"\n"},
		{"nested table header", "[a.b]\nk = 1\n"},
		{"inline table", "[a]\nk = {x = 1}\n"},
		{"array", "[a]\nk = [1, 2]\n"},
		{"datetime", "[a]\nk = 1979-05-27T07:32:00Z\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ae := Parse([]byte(tc.doc))
			if ae == nil {
				t.Fatal("expected parse error")
			}
			if ae.Code != errors.CodeParseFailed {
				t.Fatalf("code=%s want AISAFE_PARSE_FAILED", ae.Code)
			}
		})
	}
}

func TestParse_QuotedKeys(t *testing.T) {
	doc := []byte(`["my service"]
"api.key" = "v"
`)
	f, ae := Parse(doc)
	if ae != nil {
		t.Fatal(ae)
	}
	sec, ok := f.Section("my service")
	if !ok {
		t.Fatal("quoted section name should parse")
	}
	if v, ok := sec.Get("api.key"); !ok || v.Go() != "v" {
		t.Fatalf("quoted key should stay flat, got %v", sec.Keys())
	}
}
