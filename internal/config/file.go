package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the cactus config file, relative to the working directory.
const DefaultPath = "config/cactus.yaml"

// codec encodes one file format. The format is picked by file extension:
// .toml and .json are recognized, anything else is YAML.
type codec struct {
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

var (
	yamlCodec = codec{marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}
	tomlCodec = codec{marshal: toml.Marshal, unmarshal: toml.Unmarshal}
	jsonCodec = codec{
		marshal:   func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "\t") },
		unmarshal: json.Unmarshal,
	}
)

func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return tomlCodec
	case ".json":
		return jsonCodec
	}
	return yamlCodec
}

// Expand resolves a leading ~ in path to the user's home directory.
func Expand(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return path, fmt.Errorf("expand %s: %w", path, err)
	}
	return p, nil
}

// Load reads a cactus config from path. A missing file yields Default() and
// no error; a malformed one is an error. Fields absent from the file keep
// their default values. The result is clamped.
func Load(path string) (Cactus, error) {
	c := Default()
	path, err := Expand(path)
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("read cactus config: %w", err)
	}
	if err := codecFor(path).unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("parse cactus config %s: %w", path, err)
	}
	c.Clamp()
	return c, nil
}

// Save writes c to path in the format its extension names, creating the
// parent directory if needed.
func Save(path string, c Cactus) error {
	path, err := Expand(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	data, err := codecFor(path).marshal(c)
	if err != nil {
		return fmt.Errorf("encode cactus config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
