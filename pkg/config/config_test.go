package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
app:
  name: 基金数据服务
  env: test
data_sources:
  akshare:
    base_url: http://localhost:8081
    timeout: 15s
cache:
  backend: memory
  ttl: 1h
api:
  port: "9000"
warm:
  enabled: true
  spec: "@every 10m"
`)

	conf, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.DataSources.AKShare.BaseURL != "http://localhost:8081" {
		t.Errorf("base_url = %s", conf.DataSources.AKShare.BaseURL)
	}
	if conf.Cache.TTL.Std() != time.Hour {
		t.Errorf("ttl = %v", conf.Cache.TTL)
	}
	if conf.API.Port != "9000" {
		t.Errorf("port = %s", conf.API.Port)
	}
	if !conf.Warm.Enabled || conf.Warm.Spec != "@every 10m" {
		t.Errorf("warm = %+v", conf.Warm)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  env: test
`)

	conf, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Cache.Backend != "memory" {
		t.Errorf("default backend = %s", conf.Cache.Backend)
	}
	if conf.Cache.TTL.Std() != 3600*time.Second {
		t.Errorf("default ttl = %v", conf.Cache.TTL)
	}
	if conf.API.Port != "8000" {
		t.Errorf("default port = %s", conf.API.Port)
	}
}

func TestEnvOverride(t *testing.T) {
	path := writeConfig(t, `
data_sources:
  akshare:
    base_url: http://localhost:8081
`)

	t.Setenv("AKSHARE_BASE_URL", "http://sidecar:8081")
	t.Setenv("API_PORT", "9100")
	t.Setenv("CACHE_TTL", "30m")

	conf, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.DataSources.AKShare.BaseURL != "http://sidecar:8081" {
		t.Errorf("env override missed: %s", conf.DataSources.AKShare.BaseURL)
	}
	if conf.API.Port != "9100" {
		t.Errorf("env override missed: %s", conf.API.Port)
	}
	if conf.Cache.TTL.Std() != 30*time.Minute {
		t.Errorf("env override missed: %v", conf.Cache.TTL)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("no/such/file.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
