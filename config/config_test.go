package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/units"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	require.Equal(t, "KEYWORD", cfg.KeywordType)
	require.Equal(t, units.Base2Bytes(defaultMaxInputSize), cfg.MaxInputSize)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
keyword_type: RESERVED
symbol_type: PUNCT
special_tokens:
  num: integerConstant
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "RESERVED", cfg.KeywordType)
	require.Equal(t, "PUNCT", cfg.SymbolType)
	require.Equal(t, "integerConstant", cfg.SpecialTokens["num"])
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
keyword_type = "RESERVED"
symbol_type = "PUNCT"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "RESERVED", cfg.KeywordType)
}

func TestLoadUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
