package config

import (
	"os"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"gopkg.in/yaml.v3"

	"github.com/jsphweid/pianoroll/constants"
)

// Source selects where the note sequence comes from.
type Source struct {
	Kind     string `yaml:"kind"` // http, midi or dynamo
	URL      string `yaml:"url,omitempty"`
	Path     string `yaml:"path,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
	Region   string `yaml:"region,omitempty"`
	Table    string `yaml:"table,omitempty"`
	Key      string `yaml:"key,omitempty"`
}

type Server struct {
	Addr           string        `yaml:"addr"`
	AllowedOrigins []string      `yaml:"allowedOrigins,omitempty"`
	SessionIdle    time.Duration `yaml:"sessionIdle"`
}

type Grid struct {
	ChunkSize int `yaml:"chunkSize"`
	RollCount int `yaml:"rollCount"`
}

type Config struct {
	Source   Source `yaml:"source"`
	Server   Server `yaml:"server"`
	Grid     Grid   `yaml:"grid"`
	LogLevel string `yaml:"logLevel,omitempty"`
	OutDir   string `yaml:"outDir,omitempty"`
}

func Default() *Config {
	return &Config{
		Source: Source{
			Kind: "http",
			URL:  constants.DefaultDataURL,
		},
		Server: Server{
			Addr:           constants.DefaultAddr,
			SessionIdle:    30 * time.Minute,
		},
		Grid: Grid{
			ChunkSize: constants.ChunkSize,
			RollCount: constants.RollCount,
		},
		LogLevel: "info",
		OutDir:   constants.GetOutDir(),
	}
}

// Load starts from the defaults, applies the YAML file at path if there is
// one and then the environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fault.Wrap(err, fmsg.With("could not read config file"))
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fault.Wrap(err, fmsg.With("could not parse config file"))
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func (c *Config) applyEnv() {
	setIf(&c.Server.Addr, constants.GetAddr())
	setIf(&c.Source.Kind, constants.GetDataSource())
	setIf(&c.Source.URL, constants.GetDataURL())
	setIf(&c.Source.Path, constants.GetMidiPath())
	setIf(&c.Source.Endpoint, constants.GetDynamoEndpoint())
	setIf(&c.Source.Table, constants.GetDynamoTable())
	setIf(&c.Source.Key, constants.GetDynamoKey())
	setIf(&c.LogLevel, constants.GetLogLevel())

	if n, ok := constants.GetChunkSize(); ok && n > 0 {
		c.Grid.ChunkSize = n
	}
	if n, ok := constants.GetRollCount(); ok && n >= 0 {
		c.Grid.RollCount = n
	}
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
