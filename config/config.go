package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Source describes one tabular input file.
type Source struct {
	Path    string `yaml:"path"`
	Variant string `yaml:"variant"`
}

// Report holds output options. CSVDir is optional; empty disables the
// CSV copies of the printed tables.
type Report struct {
	CSVDir string `yaml:"csv_dir"`
}

type Root struct {
	Pipeline struct {
		Name   string `yaml:"name"`
		LogLvl string `yaml:"log_level"`
	} `yaml:"pipeline"`
	Sources []Source `yaml:"sources"`
	Report  Report   `yaml:"report"`
}

// Defaults returns the lab's standard three-file corpus layout.
func Defaults() *Root {
	r := &Root{}
	r.Pipeline.Name = "tempo"
	r.Pipeline.LogLvl = "info"
	r.Sources = []Source{
		{Path: "rus.xlsx", Variant: "русский вариант"},
		{Path: "biling.xlsx", Variant: "русская речь билингва"},
		{Path: "kab.xlsx", Variant: "кабардинский язык"},
	}
	return r
}

// Load reads the yaml config over the defaults. The file is taken from
// path, then TEMPO_CONFIG, then the usual spots; when none exists the
// defaults already describe the standard corpus, so that is not an error.
// An explicitly named file that cannot be read is.
func Load(path string) (*Root, error) {
	v := viper.New()
	v.SetEnvPrefix("tempo")
	v.AutomaticEnv()

	cfg := Defaults()

	explicit := path != ""
	if !explicit && v.GetString("config") != "" {
		path = v.GetString("config")
		explicit = true
	}

	guess := []string{"tempo.yaml", "config/tempo.yaml"}
	if explicit {
		guess = []string{path}
	}
	for _, p := range guess {
		f, err := os.Open(p)
		if err != nil {
			if explicit {
				return nil, fmt.Errorf("open config: %w", err)
			}
			continue
		}
		err = yaml.NewDecoder(f).Decode(cfg)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		break
	}

	if lvl := v.GetString("log_level"); lvl != "" {
		cfg.Pipeline.LogLvl = lvl
	}
	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("no sources configured")
	}
	return cfg, nil
}
