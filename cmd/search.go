package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
	"github.com/ziadkadry99/cubeclub/internal/search"
	"github.com/ziadkadry99/cubeclub/internal/site"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search the published sheets from the terminal",
	Long:  `Loads every sheet once and prints the records whose title, name or description contains the term, in the same order as the site search.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store := catalog.NewStore()
	if err := newLoader(cfg, store, logger).LoadAll(context.Background()); err != nil {
		return fmt.Errorf("loading sheets: %w", err)
	}
	snap := store.Snapshot()
	res := search.Search(snap, args[0])

	if jsonOutput {
		return printSearchJSON(snap, res)
	}

	if !res.Active {
		return fmt.Errorf("search term must be at least %d characters", search.MinTermLength)
	}
	if res.Empty() {
		fmt.Println("No results found.")
		return nil
	}
	printSearchTable(res)
	return nil
}

type searchResultJSON struct {
	Rank     int    `json:"rank"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Page     string `json:"page"`
	Path     string `json:"path"`
}

type searchOutputJSON struct {
	Term    string              `json:"term"`
	Active  bool                `json:"active"`
	Results []searchResultJSON  `json:"results"`
	Columns map[string][]string `json:"columns"`
}

func printSearchJSON(snap catalog.Snapshot, res search.Results) error {
	out := searchOutputJSON{
		Term:    res.Term,
		Active:  res.Active,
		Results: []searchResultJSON{},
		Columns: make(map[string][]string),
	}
	for i, r := range res.Items {
		out.Results = append(out.Results, searchResultJSON{
			Rank:     i + 1,
			Title:    r.Title,
			Category: r.Category,
			Page:     r.Page,
			Path:     site.PagePath(site.ResolvePage(r.Page), site.TabUpcoming),
		})
	}
	for _, cat := range catalog.Categories {
		if cols := snap.Columns[cat]; len(cols) > 0 {
			out.Columns[string(cat)] = cols
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printSearchTable(res search.Results) {
	fmt.Printf("Found %d results for %q:\n\n", len(res.Items), res.Term)
	width := 0
	for _, r := range res.Items {
		if n := len(r.Title); n > width {
			width = n
		}
	}
	for i, r := range res.Items {
		pad := strings.Repeat(" ", width-len(r.Title))
		fmt.Printf("  %d. %s%s  [%s]  %s\n", i+1, r.Title, pad, r.Category, site.PagePath(site.ResolvePage(r.Page), site.TabUpcoming))
	}
}
