package constants

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	OutDir    string  `env:"SONGBOOK_OUT_DIR" envDefault:"./out"`
	Workers   int     `env:"SONGBOOK_WORKERS" envDefault:"4"`
	LogLevel  string  `env:"SONGBOOK_LOG_LEVEL" envDefault:"info"`
	LogFormat string  `env:"SONGBOOK_LOG_FORMAT" envDefault:"text"`
	Tempo     float64 `env:"SONGBOOK_TEMPO" envDefault:"100"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse env")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

const ChordProExt = ".chordpro"

var PageExts = []string{".html", ".htm"}
