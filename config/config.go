// Package config loads generator configuration: the handful of knobs
// a grammar author can set beyond the grammar text itself — labels
// for the two terminal classes, names reserved as special built-in
// tokens, and a ceiling on input size for the target lexer.
//
// No other package in this module reads a GeneratorConfig: the
// analyzer, the emitters and the target lexer use their built-in
// behavior whatever a loaded file says.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/units"
	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v2"
)

// defaultMaxInputSize is the MaxInputSize that Default returns.
const defaultMaxInputSize = 8 * units.MiB

// GeneratorConfig controls the ambient behavior of the generator
// pipeline that the grammar text itself doesn't express.
type GeneratorConfig struct {
	// KeywordType and SymbolType are the labels for KEYWORD and SYMBOL
	// tokens. Diagnostics and generated source do not use them.
	KeywordType string `yaml:"keyword_type" toml:"keyword_type"`
	SymbolType  string `yaml:"symbol_type" toml:"symbol_type"`

	// SpecialTokens maps a grammar rule name to a built-in token kind
	// (identifier, integerConstant, stringLiteral). Package analyze
	// recognizes only the three built-in names themselves.
	SpecialTokens map[string]string `yaml:"special_tokens" toml:"special_tokens"`

	// MaxInputSize is an input-size ceiling; package lexer does not
	// check it.
	MaxInputSize units.Base2Bytes `yaml:"max_input_size" toml:"max_input_size"`
}

// Default returns the configuration the generator uses when no config
// file is supplied.
func Default() *GeneratorConfig {
	return &GeneratorConfig{
		KeywordType:   "KEYWORD",
		SymbolType:    "SYMBOL",
		SpecialTokens: map[string]string{},
		MaxInputSize:  defaultMaxInputSize,
	}
}

// Load reads a GeneratorConfig from path, dispatching on its
// extension: ".yaml"/".yml" via yaml.v2, ".toml" via go-toml. Fields
// absent from the file keep their Default() value.
func Load(path string) (*GeneratorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s as YAML: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s as TOML: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: unrecognized config file extension %q", ext)
	}
	return cfg, nil
}
