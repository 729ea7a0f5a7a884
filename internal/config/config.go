package config

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"vitality/internal/board"
	"vitality/internal/core"
	"vitality/internal/sims/life"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Kind is the document kind accepted by FromYaml.
const Kind = "vitality"

// ErrUnknownKind is returned for config documents of another kind.
var ErrUnknownKind = errors.New("unknown config kind")

// Config holds the board and front-end settings.
type Config struct {
	Size   int           `yaml:"size"`
	Period time.Duration `yaml:"period"`
	Rule   string        `yaml:"rule"`
	Seed   int64         `yaml:"seed"`

	Scale int    `yaml:"scale"`
	TPS   int    `yaml:"tps"`
	Addr  string `yaml:"addr"`
}

// DefaultConfig returns the standard configuration: a 15x15 board stepping
// once a second.
func DefaultConfig() Config {
	return Config{
		Size:   15,
		Period: core.DefaultPeriod,
		Rule:   life.RuleVitality,
		Scale:  24,
		TPS:    60,
		Addr:   ":8080",
	}
}

// FromMap overlays flag-style key/value pairs on c. Unparseable or
// out-of-range values are ignored.
func (c Config) FromMap(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["period"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Period = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["addr"]; ok && v != "" {
		c.Addr = v
	}
	return c
}

// FromMap populates a Config from a string map on top of the defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().FromMap(cfg)
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "edge length of the square board")
	fs.DurationVar(&c.Period, "period", c.Period, "delay between generations while running")
	fs.StringVar(&c.Rule, "rule", c.Rule, "transition rule (vitality or conway)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for a random initial board (0 starts empty)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the GUI")
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address of the control server")
}

type outerConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// FromYaml reads a `kind: vitality` document and overlays its def section on
// the defaults.
func FromYaml(path string) (Config, error) {
	c := DefaultConfig()

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}

	outer := &outerConfig{}
	if err := vp.Unmarshal(outer); err != nil {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	if outer.Kind != Kind {
		return c, fmt.Errorf("%w: %q in %s", ErrUnknownKind, outer.Kind, path)
	}

	spec, err := yaml.Marshal(outer.Def)
	if err != nil {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(spec, &c); err != nil {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first setting that cannot build a board.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("config: %w", &core.InvalidSizeError{Size: c.Size})
	}
	if c.Period <= 0 {
		return fmt.Errorf("config: period %v must be positive", c.Period)
	}
	if _, err := core.LookupRule(c.Rule); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// BoardOptions translates the board settings into board options.
func (c Config) BoardOptions() ([]board.Option, error) {
	rule, err := core.LookupRule(c.Rule)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return []board.Option{board.WithPeriod(c.Period), board.WithRule(rule)}, nil
}

// Parameters describes the configuration for display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("size", "Size", c.Size),
				stringParam("period", "Period", c.Period.String()),
				stringParam("rule", "Rule", c.Rule),
				int64Param("seed", "Seed", c.Seed),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
