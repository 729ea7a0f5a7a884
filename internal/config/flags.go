package config

import (
	"flag"
	"fmt"
	"strings"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends a key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q: expected key=value", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later pairs win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// Parse binds the configuration flags plus -config and -set to fs and
// parses args. Precedence, lowest first: defaults, the -config file, flags
// given explicitly, -set overrides.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	c := DefaultConfig()
	c.Bind(fs)
	path := fs.String("config", "", "optional YAML config file (kind: vitality)")
	var overrides KVList
	fs.Var(&overrides, "set", "setting override in key=value form (repeatable)")
	if err := fs.Parse(args); err != nil {
		return c, err
	}

	if *path != "" {
		fileCfg, err := FromYaml(*path)
		if err != nil {
			return c, err
		}
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
		c = fileCfg.FromMap(explicit)
	}

	c = c.FromMap(overrides.Map())
	return c, c.Validate()
}
