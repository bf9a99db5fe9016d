package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lifedash/networth"
)

func withDataPath(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := *dataPath
	*dataPath = dir
	t.Cleanup(func() { *dataPath = old })
	return dir
}

func TestProjectionConfig_RoundTrip(t *testing.T) {
	withDataPath(t)

	file := projectionFile{
		End:         "2030-01-01",
		Currency:    "USD",
		Monthly:     500,
		Progressive: true,
		Growth:      0.05,
		Targets:     map[string]float64{"vti": 280},
		Selected:    []string{"vti", "btc"},
	}
	if err := saveProjectionFile(file); err != nil {
		t.Fatalf("saveProjectionFile() error = %v", err)
	}

	cfg, err := LoadProjectionConfig()
	if err != nil {
		t.Fatalf("LoadProjectionConfig() error = %v", err)
	}
	if cfg.End != networth.NewDate(2030, time.January, 1) {
		t.Errorf("End = %v, want 2030-01-01", cfg.End)
	}
	if !cfg.Funding.Enabled || !cfg.Funding.Monthly.Equal(networth.M(500, "USD")) {
		t.Errorf("Funding = %+v, want enabled 500 USD monthly", cfg.Funding)
	}
	if !cfg.Funding.Progressive || cfg.Funding.AnnualGrowth != 0.05 {
		t.Errorf("Funding growth = %+v", cfg.Funding)
	}
	if target, ok := cfg.TargetPrices["vti"]; !ok || !target.Equal(networth.M(280, "USD")) {
		t.Errorf("TargetPrices = %v, want vti at 280", cfg.TargetPrices)
	}
	if len(cfg.Selected) != 2 {
		t.Errorf("Selected = %v, want two ids", cfg.Selected)
	}
}

func TestProjectionConfig_Missing(t *testing.T) {
	withDataPath(t)
	cfg, err := LoadProjectionConfig()
	if err != nil {
		t.Fatalf("LoadProjectionConfig() error = %v", err)
	}
	if cfg.Active(networth.Today()) {
		t.Error("a missing file must mean no projection")
	}
}

func TestProjectionConfig_RelativeEnd(t *testing.T) {
	dir := withDataPath(t)
	if err := saveProjectionFile(projectionFile{End: "+5y"}); err != nil {
		t.Fatalf("saveProjectionFile() error = %v", err)
	}
	var raw projectionFile
	if _, err := toml.DecodeFile(filepath.Join(dir, ConfigFile), &raw); err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	cfg, err := LoadProjectionConfig()
	if err != nil {
		t.Fatalf("LoadProjectionConfig() error = %v", err)
	}
	if !cfg.Active(networth.Today()) {
		t.Error("a +5y end date should activate the projection")
	}
}
