package recycler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xqrs/recycler/keybind"
)

// Config holds the user-facing settings of a list: pager hints and key
// bindings.
type Config struct {
	LoadHint    string    `yaml:"load_hint"`
	NoMoreHint  string    `yaml:"no_more_hint"`
	RefreshHint string    `yaml:"refresh_hint"`
	Keys        KeyConfig `yaml:"keys"`
}

// KeyConfig lists the keys of every binding. An empty list keeps the default
// keys; a list containing only "none" disables the binding.
type KeyConfig struct {
	Next       []string `yaml:"next"`
	Prev       []string `yaml:"prev"`
	PageDown   []string `yaml:"page_down"`
	PageUp     []string `yaml:"page_up"`
	Top        []string `yaml:"top"`
	Bottom     []string `yaml:"bottom"`
	Select     []string `yaml:"select"`
	LongSelect []string `yaml:"long_select"`
	Refresh    []string `yaml:"refresh"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	keys := DefaultKeyMap()
	return Config{
		LoadHint:    DefaultLoadHint,
		NoMoreHint:  DefaultNoMoreHint,
		RefreshHint: DefaultRefreshHint,
		Keys: KeyConfig{
			Next:       keys.Next.Keys(),
			Prev:       keys.Prev.Keys(),
			PageDown:   keys.PageDown.Keys(),
			PageUp:     keys.PageUp.Keys(),
			Top:        keys.Top.Keys(),
			Bottom:     keys.Bottom.Keys(),
			Select:     keys.Select.Keys(),
			LongSelect: keys.LongSelect.Keys(),
			Refresh:    keys.Refresh.Keys(),
		},
	}
}

// ParseConfig decodes YAML on top of the defaults. Fields missing from data
// keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	// A configured key list replaces the default one as a whole.
	var raw Config
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if raw.LoadHint != "" {
		cfg.LoadHint = raw.LoadHint
	}
	if raw.NoMoreHint != "" {
		cfg.NoMoreHint = raw.NoMoreHint
	}
	if raw.RefreshHint != "" {
		cfg.RefreshHint = raw.RefreshHint
	}
	cfg.Keys = cfg.Keys.merge(raw.Keys)
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

func (k KeyConfig) merge(other KeyConfig) KeyConfig {
	pick := func(def, override []string) []string {
		if len(override) > 0 {
			return override
		}
		return def
	}
	return KeyConfig{
		Next:       pick(k.Next, other.Next),
		Prev:       pick(k.Prev, other.Prev),
		PageDown:   pick(k.PageDown, other.PageDown),
		PageUp:     pick(k.PageUp, other.PageUp),
		Top:        pick(k.Top, other.Top),
		Bottom:     pick(k.Bottom, other.Bottom),
		Select:     pick(k.Select, other.Select),
		LongSelect: pick(k.LongSelect, other.LongSelect),
		Refresh:    pick(k.Refresh, other.Refresh),
	}
}

// KeyMap returns the default key map with its keys replaced by the configured
// ones. Help texts are kept.
func (k KeyConfig) KeyMap() KeyMap {
	keys := DefaultKeyMap()
	rebind(&keys.Next, k.Next)
	rebind(&keys.Prev, k.Prev)
	rebind(&keys.PageDown, k.PageDown)
	rebind(&keys.PageUp, k.PageUp)
	rebind(&keys.Top, k.Top)
	rebind(&keys.Bottom, k.Bottom)
	rebind(&keys.Select, k.Select)
	rebind(&keys.LongSelect, k.LongSelect)
	rebind(&keys.Refresh, k.Refresh)
	return keys
}

func rebind(bind *keybind.Keybind, keys []string) {
	switch {
	case len(keys) == 0:
	case len(keys) == 1 && keys[0] == "none":
		bind.SetEnabled(false)
	default:
		bind.SetKeys(keys...)
	}
}
