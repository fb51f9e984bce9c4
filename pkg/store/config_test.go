package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	backend string
	path    string
	addr    string
}

func (t testConfig) Backend() string   { return t.backend }
func (t testConfig) BasePath() string  { return t.path }
func (t testConfig) Prefix() string    { return "" }
func (t testConfig) RedisAddr() string { return t.addr }
func (t testConfig) RedisDB() int      { return 0 }

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("backend: redis\npath: /tmp/elsewhere\nprefix: me-\nredis:\n  addr: example:6380\n  db: 2\n")
	if err := os.WriteFile(filepath.Join(dir, ".todos.yaml"), data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TODOS_CONFIG_PATH", dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Backend() != BackendRedis {
		t.Errorf("backend = %q", cfg.Backend())
	}
	if cfg.BasePath() != "/tmp/elsewhere" {
		t.Errorf("path = %q", cfg.BasePath())
	}
	if cfg.Prefix() != "me-" {
		t.Errorf("prefix = %q", cfg.Prefix())
	}
	if cfg.RedisAddr() != "example:6380" || cfg.RedisDB() != 2 {
		t.Errorf("redis = %q/%d", cfg.RedisAddr(), cfg.RedisDB())
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TODOS_CONFIG_PATH", t.TempDir())
	t.Setenv("TODOS_BACKEND", "memory")
	t.Setenv("TODOS_REDIS_ADDR", "cache:1")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Backend() != BackendMemory {
		t.Errorf("backend = %q", cfg.Backend())
	}
	if cfg.RedisAddr() != "cache:1" {
		t.Errorf("redis addr = %q", cfg.RedisAddr())
	}
	if cfg.BasePath() == "" || cfg.BasePath()[0] == '~' {
		t.Errorf("expected expanded default path, got %q", cfg.BasePath())
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	b, err := Open(testConfig{backend: "memory"})
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := b.(*Memory); !ok {
		t.Fatalf("expected *Memory, got %T", b)
	}

	b, err = Open(testConfig{backend: "diskv", path: t.TempDir()})
	if err != nil {
		t.Fatalf("open diskv: %v", err)
	}
	if _, ok := b.(*Diskv); !ok {
		t.Fatalf("expected *Diskv, got %T", b)
	}

	if _, err := Open(testConfig{backend: "sqlite"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestMemoryFailWrites(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.SetFailWrites(os.ErrPermission)
	if err := m.Set(ctx, TodosKey, "{}"); err == nil {
		t.Fatal("expected write failure")
	}
	if _, ok, _ := m.Get(ctx, TodosKey); ok {
		t.Fatal("failed write must not store a value")
	}
	m.SetFailWrites(nil)
	if err := m.Set(ctx, TodosKey, "{}"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if m.Writes() != 1 {
		t.Fatalf("expected 1 write, got %d", m.Writes())
	}
}
