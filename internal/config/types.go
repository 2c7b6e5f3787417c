package config

import (
	"fmt"
	"time"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
)

// Config is the top-level cubeclub configuration, corresponding to .cubeclub.yml.
type Config struct {
	Site          SiteConfig   `yaml:"site" koanf:"site"`
	Sources       Sources      `yaml:"sources" koanf:"sources"`
	Fetch         FetchConfig  `yaml:"fetch" koanf:"fetch"`
	Server        ServerConfig `yaml:"server" koanf:"server"`
	OutputDir     string       `yaml:"output_dir" koanf:"output_dir"`
	StaticDir     string       `yaml:"static_dir" koanf:"static_dir"`
	StaticInclude []string     `yaml:"static_include" koanf:"static_include"`
	StaticExclude []string     `yaml:"static_exclude" koanf:"static_exclude"`
	LogLevel      string       `yaml:"log_level" koanf:"log_level"`
	LogFormat     string       `yaml:"log_format" koanf:"log_format"`
}

// SiteConfig holds branding shown in the page header and title.
type SiteConfig struct {
	Title   string `yaml:"title" koanf:"title"`
	Tagline string `yaml:"tagline" koanf:"tagline"`
}

// Sources holds the published CSV URL of each sheet.
type Sources struct {
	Showcase            string `yaml:"showcase" koanf:"showcase"`
	UpcomingTournaments string `yaml:"upcoming_tournaments" koanf:"upcoming_tournaments"`
	PreviousTournaments string `yaml:"previous_tournaments" koanf:"previous_tournaments"`
	Cubes               string `yaml:"cubes" koanf:"cubes"`
}

// URLs returns the sources keyed by category.
func (s Sources) URLs() map[catalog.Category]string {
	return map[catalog.Category]string{
		catalog.Showcase:            s.Showcase,
		catalog.UpcomingTournaments: s.UpcomingTournaments,
		catalog.PreviousTournaments: s.PreviousTournaments,
		catalog.Cubes:               s.Cubes,
	}
}

// FetchConfig controls how sheets are downloaded.
type FetchConfig struct {
	Timeout         Duration `yaml:"timeout" koanf:"timeout"`
	RatePerSecond   float64  `yaml:"rate_per_second" koanf:"rate_per_second"`
	UserAgent       string   `yaml:"user_agent" koanf:"user_agent"`
	RefreshInterval Duration `yaml:"refresh_interval" koanf:"refresh_interval"`
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// Duration is a time.Duration written as "30s" in YAML and accepted as a
// string from files and the environment.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}
