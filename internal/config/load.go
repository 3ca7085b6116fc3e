package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Load reads a config file on top of DefaultConfig, so keys missing from the
// file keep their defaults. Files ending in .toml are TOML, anything else is
// YAML.
func Load(name string) (*Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", name, err)
	}
	return cfg, nil
}

// Fetch makes src available as a local file and returns its path. Existing
// local paths are returned as is; anything else (https://, git::, s3:: ...)
// is downloaded into dir with go-getter.
func Fetch(ctx context.Context, src, dir string) (string, error) {
	if _, err := os.Stat(src); err == nil {
		return src, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}
	dst := filepath.Join(dir, sourceName(src))
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch config %s: %w", src, err)
	}
	return dst, nil
}

// sourceName picks a file name for src, keeping its extension so Load can
// tell the format.
func sourceName(src string) string {
	if i := strings.LastIndex(src, "::"); i >= 0 {
		src = src[i+2:]
	}
	p := src
	if u, err := url.Parse(src); err == nil && u.Path != "" {
		p = u.Path
	}
	// Subdirectory selector: repo//dir/file.yaml.
	if i := strings.LastIndex(p, "//"); i >= 0 {
		p = p[i+2:]
	}
	name := path.Base(p)
	if name == "." || name == "/" || name == "" {
		return "config.yaml"
	}
	return name
}
