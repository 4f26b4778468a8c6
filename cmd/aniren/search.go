package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/vmunix/aniren/internal/metadata"
	"github.com/vmunix/aniren/internal/tmdb"
	"github.com/vmunix/aniren/pkg/anilist"
	"github.com/vmunix/aniren/pkg/fansub"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <query>",
	Short: "Search TMDB for a series",
	Long: `Search TMDB for a TV series. Results are cached locally, so
repeating a search does not hit the API again.

Examples:
  aniren search 鬼灭之刃
  aniren search --anilist "Bocchi the Rock"
  aniren search frieren --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("anilist", false, "Search AniList instead of TMDB")
	searchCmd.Flags().StringP("language", "l", "", "TMDB metadata language (default from config)")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	useAniList, _ := cmd.Flags().GetBool("anilist")
	language, _ := cmd.Flags().GetString("language")

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if language != "" {
		cfg.TMDB.Language = language
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	log := newLogger(cfg.Log.Level)

	db, err := openCacheDB(cfg.Cache.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	cache := metadata.NewCache(db)

	ctx := cmd.Context()
	query := fansub.CleanQuery(strings.Join(args, " "))

	if useAniList {
		client := anilist.New(anilist.WithLogger(log))
		service := metadata.NewAniListService(client, cache, cfg.DetailsTTL(), log.With("component", "metadata"))

		results, err := service.SearchAnime(ctx, query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if jsonOutput {
			printJSON(results)
			return nil
		}
		printAniListResults(query, results)
		return nil
	}

	client := tmdb.New(cfg.TMDB.APIKey,
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithLogger(log))
	service := metadata.NewTMDBService(client, cache, cfg.DetailsTTL(), log.With("component", "metadata"))

	results, err := service.SearchTV(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if jsonOutput {
		printJSON(results)
		return nil
	}
	printSearchResults(query, results)
	return nil
}

func printSearchResults(query string, shows []tmdb.TVShow) {
	if len(shows) == 0 {
		fmt.Printf("No results for %q.\n", query)
		return
	}

	fmt.Printf("Found %d series for %q:\n\n", len(shows), query)
	fmt.Printf("  # │ %-42s │ %4s │ %7s\n", "TITLE", "YEAR", "TMDB")
	fmt.Println("────┼────────────────────────────────────────────┼──────┼─────────")

	for i, show := range shows {
		title := show.Name
		if show.OriginalName != "" && show.OriginalName != show.Name {
			title = fmt.Sprintf("%s / %s", show.Name, show.OriginalName)
		}
		year := ""
		if y := show.Year(); y > 0 {
			year = strconv.Itoa(y)
		}
		fmt.Printf(" %2d │ %-42s │ %4s │ %7d\n", i+1, truncateTitle(title, 42), year, show.ID)
	}
}

func printAniListResults(query string, results []anilist.Media) {
	if len(results) == 0 {
		fmt.Printf("No results for %q.\n", query)
		return
	}

	fmt.Printf("Found %d series for %q:\n\n", len(results), query)
	fmt.Printf("  # │ %-42s │ %10s │ %8s\n", "TITLE", "AIRED", "EPISODES")
	fmt.Println("────┼────────────────────────────────────────────┼────────────┼──────────")

	for i, m := range results {
		title := m.DisplayTitle(false)
		if m.Title.Romaji != "" && m.Title.Romaji != title {
			title = fmt.Sprintf("%s / %s", title, m.Title.Romaji)
		}
		fmt.Printf(" %2d │ %-42s │ %10s │ %8d\n", i+1, truncateTitle(title, 42), m.FormatDate(), m.Episodes)
	}
}

// truncateTitle shortens a title to max runes. Slicing runes rather
// than bytes keeps CJK titles valid UTF-8.
func truncateTitle(title string, max int) string {
	if utf8.RuneCountInString(title) <= max {
		return title
	}
	return string([]rune(title)[:max-3]) + "..."
}

// printJSON prints any value as indented JSON.
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
