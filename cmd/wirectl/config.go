package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config drives how wirectl reads and reports lines.
type Config struct {
	Strict       bool
	Pretty       bool
	AnnotateNick bool
}

func defaultConfig() Config {
	return Config{
		Strict:       false,
		Pretty:       false,
		AnnotateNick: true,
	}
}

type fileConfig struct {
	Strict       bool `toml:"strict"`
	Pretty       bool `toml:"pretty"`
	AnnotateNick bool `toml:"annotate_nick"`
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load wirectl config: %w", err)
	}

	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("pretty") {
		cfg.Pretty = raw.Pretty
	}
	if meta.IsDefined("annotate_nick") {
		cfg.AnnotateNick = raw.AnnotateNick
	}

	return cfg, nil
}
