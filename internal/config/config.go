package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// APIKey comes from BUNGIE_API_KEY (environment or .env next to the
	// config file), never from the yaml itself.
	APIKey string `yaml:"-"`

	// ExportTables and Verbose are flag-only.
	ExportTables bool `yaml:"-"`
	Verbose      bool `yaml:"-"`

	Grid     GridConfig     `yaml:"grid"`
	Wishlist WishlistConfig `yaml:"wishlist"`
	Tables   TablesConfig   `yaml:"tables"`
}

type GridConfig struct {
	// Source is a local .csv/.xlsx path or an http(s) URL serving CSV
	// (e.g. a published Google Sheet export).
	Source string `yaml:"source"`
	// Sheet selects the worksheet for .xlsx sources; empty means the first.
	Sheet   string        `yaml:"sheet"`
	Columns ColumnsConfig `yaml:"columns"`
}

type ColumnsConfig struct {
	Weapon string `yaml:"weapon"`
	Perk1  string `yaml:"perk1"`
	Perk2  string `yaml:"perk2"`
}

type WishlistConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Out         string `yaml:"out"`
}

type TablesConfig struct {
	// Out is where -tables writes the lookup workbook.
	Out string `yaml:"out"`
}

func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value != nil && value.Kind == yaml.MappingNode {
		allowed := map[string]struct{}{
			"grid":     {},
			"wishlist": {},
			"tables":   {},
		}
		for i := 0; i+1 < len(value.Content); i += 2 {
			k := value.Content[i]
			if k.Kind != yaml.ScalarNode {
				continue
			}
			if _, ok := allowed[k.Value]; !ok {
				return fmt.Errorf("config: unsupported key %q", k.Value)
			}
		}
	}

	type raw Config
	var tmp raw
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*c = Config(tmp)
	return nil
}

// Load parses flags, reads the yaml config and overlays the environment.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("the-grid", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // suppress default usage noise; return errors instead

	configPath := fs.String("config", "grid_config.yaml", "path to config yaml")
	out := fs.String("out", "", "output wishlist path (overrides config)")
	tables := fs.Bool("tables", false, "also export weapon/perk lookup tables")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	b, err := os.ReadFile(*configPath)
	if err != nil {
		return Config{}, fmt.Errorf("read config (%s): %w", *configPath, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", *configPath, err)
	}

	// A .env next to the config keeps the API key out of the yaml.
	_ = godotenv.Load(filepath.Join(filepath.Dir(*configPath), ".env"))
	cfg.APIKey = os.Getenv("BUNGIE_API_KEY")

	if *out != "" {
		cfg.Wishlist.Out = *out
	}
	cfg.ExportTables = *tables
	cfg.Verbose = *verbose

	applyDefaults(&cfg)
	return cfg, validate(cfg)
}

func applyDefaults(cfg *Config) {
	if cfg.Grid.Columns.Weapon == "" {
		cfg.Grid.Columns.Weapon = "Weapon"
	}
	if cfg.Grid.Columns.Perk1 == "" {
		cfg.Grid.Columns.Perk1 = "Perk 1"
	}
	if cfg.Grid.Columns.Perk2 == "" {
		cfg.Grid.Columns.Perk2 = "Perk 2"
	}
	if cfg.Wishlist.Title == "" {
		cfg.Wishlist.Title = "The Grid"
	}
	if cfg.Wishlist.Description == "" {
		cfg.Wishlist.Description = "Rolls matched from the curated grid"
	}
	if cfg.Wishlist.Out == "" {
		cfg.Wishlist.Out = filepath.Join("output", "wishlist.txt")
	}
	if cfg.Tables.Out == "" {
		cfg.Tables.Out = filepath.Join("output", "lookup_tables.xlsx")
	}
}

func validate(cfg Config) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("config: BUNGIE_API_KEY is not set")
	}
	if cfg.Grid.Source == "" {
		return fmt.Errorf("config: grid.source is required")
	}
	return nil
}
