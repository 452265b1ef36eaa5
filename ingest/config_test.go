package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadConfigMappingForm(t *testing.T) {
	p := writeConfig(t, `
db: /var/lib/filings/filings.db
batch_size: 500
workers: 4
debug: true
ciks:
  - "0000320193"
sources:
  insider: /data/feeds/insider
  formd:
    dir: /data/feeds/formd
    quarantine_dir: /data/feeds/bad
`)
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DB != "/var/lib/filings/filings.db" || cfg.BatchSize != 500 || cfg.Workers != 4 || !cfg.Debug {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.CIKs) != 1 || cfg.CIKs[0] != "0000320193" {
		t.Fatalf("ciks = %v", cfg.CIKs)
	}
	if got := cfg.Sources.Items["insider"]; got.Dir != "/data/feeds/insider" || got.QuarantineDir != "" {
		t.Fatalf("insider source = %+v", got)
	}
	if got := cfg.Sources.Items["formd"]; got.Dir != "/data/feeds/formd" || got.QuarantineDir != "/data/feeds/bad" {
		t.Fatalf("formd source = %+v", got)
	}
}

func TestLoadConfigListForm(t *testing.T) {
	p := writeConfig(t, `
db: filings.db
sources:
  - family: nport
    dir: /data/feeds/nport
  - family: ""
    dir: /ignored
  - family: nmfp
    dir: ""
`)
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Sources.Items) != 1 {
		t.Fatalf("sources = %+v", cfg.Sources.Items)
	}
	if got := cfg.Sources.Items["nport"]; got.Dir != "/data/feeds/nport" {
		t.Fatalf("nport source = %+v", got)
	}
}

func TestRunnerConfigFromFile(t *testing.T) {
	cfg := &FileConfig{
		DB:        "x.db",
		BatchSize: 250,
		Workers:   2,
		CIKs:      []string{"0000789019"},
		Debug:     true,
	}
	cfg.Sources.Items = map[string]SourceConfig{"insider": {Dir: "/in"}}

	rc := RunnerConfigFromFile(cfg)
	if rc.DBPath != "x.db" || rc.BatchSize != 250 || rc.Workers != 2 || !rc.Debug {
		t.Fatalf("rc = %+v", rc)
	}
	if rc.Sources["insider"].Dir != "/in" {
		t.Fatalf("sources = %+v", rc.Sources)
	}
}
