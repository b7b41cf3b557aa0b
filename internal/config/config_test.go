package config

import (
	"os"
	"path/filepath"
	"testing"
)

// ========== 配置加载测试 ==========

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.App.Name != "samarth" {
		t.Errorf("App.Name = %q", cfg.App.Name)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Database.Port != 5432 || cfg.Database.DBName != "samarth" {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if cfg.AI.Provider != "openai" {
		t.Errorf("AI.Provider = %q", cfg.AI.Provider)
	}

	if !cfg.Query.StrictValidation {
		t.Error("Query.StrictValidation default should be on")
	}
	if cfg.Query.CacheTTL != 300 {
		t.Errorf("Query.CacheTTL = %d", cfg.Query.CacheTTL)
	}
	conf := cfg.Query.Confidence
	if conf.Empty != 0.1 || conf.Few != 0.6 || conf.Some != 0.8 || conf.Many != 0.95 || conf.Failed != 0.2 {
		t.Errorf("Query.Confidence = %+v", conf)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
query:
  strictValidation: false
  cacheTtl: 0
  confidence:
    few: 0.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Query.StrictValidation {
		t.Error("Query.StrictValidation should be off")
	}
	if cfg.Query.CacheTTL != 0 {
		t.Errorf("Query.CacheTTL = %d, want 0", cfg.Query.CacheTTL)
	}
	// 文件未覆盖的键保留默认值
	if cfg.Query.Confidence.Few != 0.5 {
		t.Errorf("Confidence.Few = %v, want 0.5", cfg.Query.Confidence.Few)
	}
	if cfg.Query.Confidence.Many != 0.95 {
		t.Errorf("Confidence.Many = %v, want default 0.95", cfg.Query.Confidence.Many)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load should fail for a missing config file")
	}
}

func TestGetDSN(t *testing.T) {
	c := DatabaseConfig{
		Host:    "db.internal",
		Port:    5433,
		User:    "samarth",
		DBName:  "samarth",
		SSLMode: "require",
	}
	want := "host=db.internal port=5433 user=samarth password= dbname=samarth sslmode=require"
	if got := c.GetDSN(); got != want {
		t.Errorf("GetDSN = %q, want %q", got, want)
	}
}

func TestGetAddr(t *testing.T) {
	s := ServerConfig{Host: "0.0.0.0", Port: 8080}
	if got := s.GetAddr(); got != "0.0.0.0:8080" {
		t.Errorf("server addr = %q", got)
	}
	r := RedisConfig{Host: "localhost", Port: 6379}
	if got := r.GetAddr(); got != "localhost:6379" {
		t.Errorf("redis addr = %q", got)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SAMARTH_SERVER_PORT", "7070")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want env override 7070", cfg.Server.Port)
	}
}
