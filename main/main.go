// Command jsonio decodes a tunnel profile, validates it and writes it back
// in canonical form, optionally wrapped in a compactwire frame.
package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	In       string `yaml:"in" mapstructure:"in"`
	Out      string `yaml:"out" mapstructure:"out"`
	Frame    bool   `yaml:"frame" mapstructure:"frame"`
	Compress bool   `yaml:"compress" mapstructure:"compress"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

func (c Config) level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// loadConfig merges flags, JSONIO_ environment variables and an optional
// YAML file, in that order of precedence.
func loadConfig(args []string) (Config, error) {
	var cfg Config
	fs := pflag.NewFlagSet("jsonio", pflag.ContinueOnError)
	fs.String("in", "", "input document (default stdin)")
	fs.String("out", "", "output file (default stdout)")
	fs.Bool("frame", false, "wrap output in a compactwire frame")
	fs.Bool("compress", false, "zstd compress framed output")
	fs.String("log-level", "info", "log level")
	config := fs.String("config", "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetEnvPrefix("JSONIO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, name := range []string{"in", "out", "frame", "compress"} {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			return cfg, err
		}
	}
	if err := v.BindPFlag("log_level", fs.Lookup("log-level")); err != nil {
		return cfg, err
	}
	if *config != "" {
		v.SetConfigFile(*config)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return cfg, err
		}
	}
	err := v.Unmarshal(&cfg)
	return cfg, err
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("config")
	}
	log.SetLevel(cfg.level())

	if err := run(cfg, log); err != nil {
		os.Exit(1)
	}
}
