package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to cubeclub! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Branding.
	title, err := (&promptui.Prompt{Label: "Site title", Default: cfg.Site.Title}).Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Site.Title = title

	tagline, err := (&promptui.Prompt{Label: "Tagline (optional)", Default: cfg.Site.Tagline}).Run()
	if err != nil {
		return nil, fmt.Errorf("tagline: %w", err)
	}
	cfg.Site.Tagline = tagline

	// 2. Sheet sources.
	fmt.Println("\nPaste the published CSV link of each sheet (File > Share > Publish to web > CSV).")
	urls := cfg.Sources.URLs()
	for _, cat := range catalog.Categories {
		prompt := promptui.Prompt{
			Label:    cat.Label() + " sheet URL",
			Default:  urls[cat],
			Validate: ValidateSourceURL,
		}
		u, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("%s url: %w", cat, err)
		}
		urls[cat] = u
	}
	cfg.Sources = Sources{
		Showcase:            urls[catalog.Showcase],
		UpcomingTournaments: urls[catalog.UpcomingTournaments],
		PreviousTournaments: urls[catalog.PreviousTournaments],
		Cubes:               urls[catalog.Cubes],
	}

	// 3. Output.
	outputDir, err := (&promptui.Prompt{Label: "Output directory for the static site", Default: cfg.OutputDir}).Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	portPrompt := promptui.Prompt{
		Label:    "Port for cubeclub serve",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	return nil
}
