// Package config loads dotuml settings from TOML or YAML files.
//
// Every key is optional; missing keys keep their defaults, which reproduce
// the built-in diagram style exactly. Example TOML:
//
//	fallback_package = "Global"
//
//	[style]
//	font_name = "Helvetica"
//	arrow_color = "DarkGreen"
//
//	[palette]
//	hue = 160
//	max = 85
//
// The format is chosen by file extension: .toml, .yaml or .yml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperr "github.com/matzehuels/dotuml/pkg/errors"
	"github.com/matzehuels/dotuml/pkg/pkgtree"
	"github.com/matzehuels/dotuml/pkg/puml"
)

// Config holds all user-tunable settings.
type Config struct {
	// FallbackPackage receives classes whose ID has no dot.
	FallbackPackage string       `toml:"fallback_package" yaml:"fallback_package"`
	Style           puml.Style   `toml:"style" yaml:"style"`
	Palette         puml.Palette `toml:"palette" yaml:"palette"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FallbackPackage: pkgtree.DefaultFallback,
		Style:           puml.DefaultStyle(),
		Palette:         puml.DefaultPalette(),
	}
}

// RenderOptions returns the renderer options described by c.
func (c Config) RenderOptions() puml.Options {
	return puml.Options{Style: c.Style, Palette: c.Palette}
}

// Load reads the file at path over the defaults. An empty path returns
// [Default]. Unknown keys are rejected so that typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "open config %s", path)
		}
		return cfg, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	default:
		err = fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return cfg, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "load config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks that palette values are in range and that no required
// string is blank.
func (c Config) Validate() error {
	p := c.Palette
	switch {
	case p.Saturation < 0 || p.Saturation > 100:
		return fmt.Errorf("palette.saturation %v out of range 0-100", p.Saturation)
	case p.Base < 0 || p.Base > 100:
		return fmt.Errorf("palette.base %v out of range 0-100", p.Base)
	case p.Max < 0 || p.Max > 100:
		return fmt.Errorf("palette.max %v out of range 0-100", p.Max)
	case p.Step < 0:
		return fmt.Errorf("palette.step %v must not be negative", p.Step)
	}

	if strings.TrimSpace(c.FallbackPackage) == "" {
		return errors.New("fallback_package must not be empty")
	}
	if strings.Contains(c.FallbackPackage, ".") {
		return fmt.Errorf("fallback_package %q must not contain a dot", c.FallbackPackage)
	}
	if c.Style.FontSize <= 0 {
		return fmt.Errorf("style.font_size %d must be positive", c.Style.FontSize)
	}
	return nil
}
