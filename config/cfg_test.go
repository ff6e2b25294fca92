package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"l2s/common"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
conversion:
  target_syntax: sass
  indent: 4
  literal_properties: ["font", "grid-area"]
parser:
  node: /usr/local/bin/node
  include_paths: ["/styles/common"]
  strict_math: true
logging:
  console:
    level: normal
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "report.zip") + `
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Conversion.TargetSyntax != common.TargetSyntaxSass {
		t.Errorf("TargetSyntax = %v, want sass", cfg.Conversion.TargetSyntax)
	}
	if cfg.Conversion.Indent != 4 {
		t.Errorf("Indent = %d, want 4", cfg.Conversion.Indent)
	}
	if !cfg.Conversion.IsLiteralProperty("grid-area") || cfg.Conversion.IsLiteralProperty("transition") {
		t.Errorf("LiteralProperties = %v, want file values replacing defaults", cfg.Conversion.LiteralProperties)
	}
	if cfg.Parser.Node != "/usr/local/bin/node" {
		t.Errorf("Parser.Node = %q", cfg.Parser.Node)
	}
	if !cfg.Parser.StrictMath {
		t.Error("Expected StrictMath to be true")
	}
	if len(cfg.Parser.IncludePaths) != 1 {
		t.Errorf("IncludePaths length = %d, want 1", len(cfg.Parser.IncludePaths))
	}
	// not mentioned in file, comes from template
	if cfg.Compiler.Sass == "" {
		t.Error("Compiler.Sass should keep default value")
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\nconversion:\n  indent: 2\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"invalid version", "version: 2\n"},
		{"invalid syntax", "version: 1\nconversion:\n  target_syntax: less\n"},
		{"indent out of range", "version: 1\nconversion:\n  indent: 0\n"},
		{"empty node", "version: 1\nparser:\n  node: \"\"\n"},
		{"bad console level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Error("LoadConfiguration() expected error, got nil")
			}
		})
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Prepare() returned empty data")
	}
	if strings.Contains(string(data), "{{") {
		t.Error("Prepare() left template actions unexpanded")
	}

	cfg := &Config{}
	if _, err = unmarshalConfig(data, cfg, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Conversion.TargetSyntax = common.TargetSyntaxSass

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "target_syntax: sass") {
		t.Errorf("Dump() should write syntax by name, got:\n%s", data)
	}

	cfg2 := &Config{}
	if _, err = unmarshalConfig(data, cfg2, false); err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Conversion.TargetSyntax != cfg.Conversion.TargetSyntax {
		t.Errorf("TargetSyntax mismatch after dump/load: got %v, want %v", cfg2.Conversion.TargetSyntax, cfg.Conversion.TargetSyntax)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Conversion.TargetSyntax != common.TargetSyntaxScss {
		t.Errorf("TargetSyntax = %v, want scss", cfg.Conversion.TargetSyntax)
	}
	for _, p := range []string{"font", "transition"} {
		if !cfg.Conversion.IsLiteralProperty(p) {
			t.Errorf("%q should be literal property by default", p)
		}
	}
	if cfg.Conversion.InputEncoding != "" {
		t.Errorf("InputEncoding = %q, want empty", cfg.Conversion.InputEncoding)
	}
	if cfg.Parser.Node == "" || cfg.Compiler.Lessc == "" {
		t.Error("executables should have defaults")
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	_, err = unmarshalConfig([]byte("version: 99\n"), cfg, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error (errors.Unwrap non-nil), got bare error: %v", err)
	}
}
