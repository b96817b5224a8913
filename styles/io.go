// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// builtins are the themes shipped with the library.
// User themes with the same name do not shadow them.
var builtins = map[string]func() *Theme{
	"plain": Plain,
	"dark":  Dark,
	"dim":   Dim,
}

// Dir returns the directory where user themes are stored,
// creating it if needed. The GOFIGURE_CONFIG environment variable
// overrides the default user config location.
func Dir() (string, error) {
	root := os.Getenv("GOFIGURE_CONFIG")
	if root == "" {
		cd, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		root = filepath.Join(cd, "gofigure")
	}
	dir := filepath.Join(root, "styles")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}

// Builtin returns the builtin theme with the given name, if there is one.
func Builtin(name string) (*Theme, bool) {
	fn, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// Get returns the theme with the given name: a builtin theme,
// or else a user theme loaded from [Dir].
func Get(name string) (*Theme, error) {
	if th, ok := Builtin(name); ok {
		return th, nil
	}
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	th, err := LoadFrom(filepath.Join(dir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("styles: no theme named %q: %w", name, err)
	}
	return th, nil
}

// LoadFrom loads a theme from the given YAML file.
func LoadFrom(path string) (*Theme, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	th := Plain() // unset fields fall back to plain values
	if err := yaml.Unmarshal(b, th); err != nil {
		return nil, err
	}
	return th, nil
}

// SaveTo saves the theme to the given YAML file.
func SaveTo(th *Theme, path string) error {
	b, err := yaml.Marshal(th)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0640)
}

// Save saves the theme as a user theme under its name in [Dir].
// Builtin theme names cannot be overwritten.
func Save(th *Theme) error {
	if th.Name == "" {
		return fmt.Errorf("styles: cannot save a theme without a name")
	}
	if _, ok := builtins[th.Name]; ok {
		return fmt.Errorf("styles: %q is a builtin theme and cannot be overwritten", th.Name)
	}
	dir, err := Dir()
	if err != nil {
		return err
	}
	return SaveTo(th, filepath.Join(dir, th.Name+".yaml"))
}

// Delete removes the user theme with the given name.
func Delete(name string) error {
	if _, ok := builtins[name]; ok {
		return fmt.Errorf("styles: %q is a builtin theme and cannot be deleted", name)
	}
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.Remove(filepath.Join(dir, name+".yaml"))
}

// List returns the names of all available themes,
// builtins first, then user themes sorted by name.
func List() ([]string, error) {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	dir, err := Dir()
	if err != nil {
		return names, err
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		return names, err
	}
	var user []string
	for _, ent := range ents {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".yaml") {
			continue
		}
		user = append(user, strings.TrimSuffix(ent.Name(), ".yaml"))
	}
	sort.Strings(user)
	return append(names, user...), nil
}

// config is the user configuration file, stored as TOML
// next to the styles directory.
type config struct {
	DefaultStyle string `toml:"default_style"`
}

func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dir), "config.toml"), nil
}

// DefaultName returns the name of the configured default theme,
// falling back to "plain" if there is no configuration.
func DefaultName() string {
	path, err := configPath()
	if err != nil {
		return "plain"
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "plain"
	}
	var cfg config
	if err := toml.Unmarshal(b, &cfg); err != nil || cfg.DefaultStyle == "" {
		return "plain"
	}
	return cfg.DefaultStyle
}

// SetDefault records the given theme name as the default style
// in the user configuration file. The theme must exist.
func SetDefault(name string) error {
	if _, err := Get(name); err != nil {
		return err
	}
	path, err := configPath()
	if err != nil {
		return err
	}
	b, err := toml.Marshal(config{DefaultStyle: name})
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0640)
}
