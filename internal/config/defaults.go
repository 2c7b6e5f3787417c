package config

import (
	"time"

	"github.com/ziadkadry99/cubeclub/internal/static"
)

// DefaultConfigFile is read when --config is not given.
const DefaultConfigFile = ".cubeclub.yml"

// DefaultUserAgent identifies cubeclub to the sheet host.
const DefaultUserAgent = "cubeclub/1.0 (+https://github.com/ziadkadry99/cubeclub)"

// DefaultSources are the club's published sheets.
var DefaultSources = Sources{
	Showcase:            "https://docs.google.com/spreadsheets/d/e/2PACX-1vQSuzhY51aldmUgKsL_lTPlv2LeG1ALUMEKkqBhT6uAiDQBNjgWqhgwtMmBtmM7U5NWrGbb0xZEqD75/pub?gid=0&single=true&output=csv",
	UpcomingTournaments: "https://docs.google.com/spreadsheets/d/e/2PACX-1vS-TBbZalXXTgH9x0pQHsWDnGiNXi4bxfI0EYG0BhUs3HzWv02JYJFVL6-kHrG3KQbZaMzYTk4wqkAp/pub?gid=0&single=true&output=csv",
	PreviousTournaments: "https://docs.google.com/spreadsheets/d/e/2PACX-1vQkPaPW5mt4WgJXyha0XbAeK47vYBAamI4JKZb1gARcq5xOwEEz0FheIIwAFQkAg-_vkVrzrVNNHDPP/pub?gid=0&single=true&output=csv",
	Cubes:               "https://docs.google.com/spreadsheets/d/e/2PACX-1vSgdkSaMjxPZeNnckvjq_GIXrsJCX1T8m26n2a1KPXHO9Tdm58uYEQXc_D-f2QcksRmU3ghqtrSda68/pub?gid=0&single=true&output=csv",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title: "Cube Club",
		},
		Sources: DefaultSources,
		Fetch: FetchConfig{
			Timeout:       Duration(30 * time.Second),
			RatePerSecond: 4,
			UserAgent:     DefaultUserAgent,
		},
		Server: ServerConfig{
			Port: 8080,
		},
		OutputDir:     "public",
		StaticDir:     "static",
		StaticInclude: []string{"**"},
		StaticExclude: append([]string(nil), static.DefaultExcludes...),
		LogLevel:      "info",
		LogFormat:     "console",
	}
}
