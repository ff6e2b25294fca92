package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"l2s/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	ConversionConfig struct {
		TargetSyntax common.TargetSyntax `yaml:"target_syntax"`
		Indent       int                 `yaml:"indent" validate:"min=1,max=8"`
		// property names whose values are emitted as a single unquoted
		// literal when no variables are involved
		LiteralProperties []string `yaml:"literal_properties" validate:"dive,required"`
		// IANA name of the source encoding, empty means UTF-8
		InputEncoding string `yaml:"input_encoding"`
	}

	ParserConfig struct {
		Node         string   `yaml:"node" validate:"required"`
		NodePath     string   `yaml:"node_path"`
		IncludePaths []string `yaml:"include_paths" validate:"dive,required"`
		StrictMath   bool     `yaml:"strict_math"`
	}

	CompilerConfig struct {
		Lessc string `yaml:"lessc" validate:"required"`
		Sass  string `yaml:"sass" validate:"required"`
	}

	Config struct {
		Version    int              `yaml:"version" validate:"eq=1"`
		Conversion ConversionConfig `yaml:"conversion"`
		Parser     ParserConfig     `yaml:"parser"`
		Compiler   CompilerConfig   `yaml:"compiler"`
		Logging    LoggingConfig    `yaml:"logging"`
		Reporting  ReporterConfig   `yaml:"reporting"`
	}
)

// IsLiteralProperty checks if property values are flattened into literal
// text.
func (conf *ConversionConfig) IsLiteralProperty(name string) bool {
	return slices.Contains(conf.LiteralProperties, name)
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("configuration sanitizing failed: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
