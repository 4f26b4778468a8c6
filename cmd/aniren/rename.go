package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/aniren/internal/metadata"
	"github.com/vmunix/aniren/internal/renamer"
	"github.com/vmunix/aniren/internal/scanner"
	"github.com/vmunix/aniren/internal/tmdb"
	"github.com/vmunix/aniren/pkg/anilist"
	"github.com/vmunix/aniren/pkg/fansub"
)

// parseWorkers bounds concurrent filename parsing.
const parseWorkers = 8

// errAborted means the user declined to continue; the command exits
// cleanly without renaming anything.
var errAborted = errors.New("aborted")

// errNoResults means a metadata search returned nothing to pick from.
var errNoResults = errors.New("no search results")

var renameCmd = &cobra.Command{
	Use:   "rename [flags] <path>",
	Short: "Rename fansub episodes in a directory",
	Long: `Scan a path for fansub video files, look the series up on TMDB,
and rename episodes into "Title S01E01.ext" form.

Absolute episode numbers are mapped onto seasons using the TMDB
season layout: with two 12-episode seasons, episode 13 becomes
S02E01. A season marker in the filename itself (S3, 第2季) always
wins over the layout math.

Examples:
  aniren rename ~/anime/鬼灭之刃
  aniren rename -r -n ~/anime                  # recursive dry-run
  aniren rename --name "Frieren" ~/downloads
  aniren rename --season-folders --keep-tags ~/anime/onepiece`,
	Args: cobra.ExactArgs(1),
	RunE: runRenameCmd,
}

func init() {
	rootCmd.AddCommand(renameCmd)
	renameCmd.Flags().BoolP("recursive", "r", false, "Scan subdirectories")
	renameCmd.Flags().BoolP("dry-run", "n", false, "Preview renames without applying them")
	renameCmd.Flags().String("name", "", "Series title (skips title detection)")
	renameCmd.Flags().StringP("language", "l", "", "TMDB metadata language (default from config)")
	renameCmd.Flags().Bool("keep-tags", false, "Keep original bracket tags in renamed files")
	renameCmd.Flags().Bool("season-folders", false, "Move files into Season N directories")
	renameCmd.Flags().Bool("use-anilist", false, "Resolve titles against AniList instead of TMDB")
}

func runRenameCmd(cmd *cobra.Command, args []string) error {
	recursive, _ := cmd.Flags().GetBool("recursive")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	nameOverride, _ := cmd.Flags().GetString("name")
	language, _ := cmd.Flags().GetString("language")
	keepTags, _ := cmd.Flags().GetBool("keep-tags")
	seasonFolders, _ := cmd.Flags().GetBool("season-folders")
	useAniList, _ := cmd.Flags().GetBool("use-anilist")

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if language != "" {
		cfg.TMDB.Language = language
	}
	if cmd.Flags().Changed("keep-tags") {
		cfg.Rename.KeepTags = keepTags
	}
	if cmd.Flags().Changed("season-folders") {
		cfg.Rename.SeasonFolders = seasonFolders
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	log := newLogger(cfg.Log.Level)

	root := args[0]
	files, err := scanner.New(recursive).Scan(root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No video files found.")
		return nil
	}
	log.Debug("scan complete", "root", root, "files", len(files))

	items, failed := parseFiles(files)
	if len(failed) > 0 {
		fmt.Printf("Unparsable (%d):\n\n", len(failed))
		for _, f := range failed {
			fmt.Printf("  %s\n", filepath.Base(f.path))
		}
		fmt.Println()
	}
	if len(items) == 0 {
		fmt.Println("Nothing to rename.")
		return nil
	}

	title := detectTitle(items, nameOverride)
	if title == "" {
		return fmt.Errorf("no series title detected; use --name")
	}

	db, err := openCacheDB(cfg.Cache.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	cache := metadata.NewCache(db)
	metaLog := log.With("component", "metadata")

	tmdbClient := tmdb.New(cfg.TMDB.APIKey,
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithLogger(log))
	tmdbService := metadata.NewTMDBService(tmdbClient, cache, cfg.DetailsTTL(), metaLog)

	anilistClient := anilist.New(anilist.WithLogger(log))
	anilistService := metadata.NewAniListService(anilistClient, cache, cfg.DetailsTTL(), metaLog)

	ctx := cmd.Context()
	opts := renamer.Options{
		KeepTags:      cfg.Rename.KeepTags,
		SeasonFolders: cfg.Rename.SeasonFolders,
	}
	reader := bufio.NewReader(stdin)

	var planner *renamer.Planner
	if useAniList || cfg.AniList.Enabled {
		planner, err = aniListPlanner(ctx, anilistService, title, opts, reader)
	} else {
		planner, err = tmdbPlanner(ctx, tmdbService, title, root, opts, reader)
		if errors.Is(err, errNoResults) {
			fmt.Printf("No TMDB results for %q, trying AniList...\n", title)
			planner, err = aniListPlanner(ctx, anilistService, title, opts, reader)
		}
	}
	if errors.Is(err, errAborted) {
		fmt.Println("Aborted.")
		return nil
	}
	if err != nil {
		return err
	}

	plan := planner.Plan(items)
	printPlan(plan)
	if len(plan.Entries) == 0 {
		fmt.Println("Nothing to rename.")
		return nil
	}

	if dryRun {
		fmt.Printf("Dry run: %d rename(s) planned, nothing changed.\n", len(plan.Entries))
		return nil
	}

	if !confirm(reader, fmt.Sprintf("Rename %d file(s)? [Y/n] ", len(plan.Entries))) {
		fmt.Println("Aborted.")
		return nil
	}

	renamed, errs := renamer.Apply(plan.Entries, log)
	for _, applyErr := range errs {
		fmt.Printf("Error: %v\n", applyErr)
	}
	fmt.Printf("Renamed %d file(s), skipped %d, failed %d.\n", renamed, len(plan.Skips), len(errs))
	return nil
}

// parseFailure records a filename the parser could not handle.
type parseFailure struct {
	path string
	err  error
}

// parseFiles parses all paths concurrently, keeping input order.
// Failures come back separately; they never abort the batch.
func parseFiles(paths []string) ([]renamer.Item, []parseFailure) {
	type result struct {
		parsed *fansub.ParsedFile
		err    error
	}
	results := make([]result, len(paths))

	var g errgroup.Group
	g.SetLimit(parseWorkers)
	for i, path := range paths {
		g.Go(func() error {
			parsed, err := fansub.Parse(filepath.Base(path))
			results[i] = result{parsed: parsed, err: err}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	var items []renamer.Item
	var failed []parseFailure
	for i, r := range results {
		if r.err != nil {
			failed = append(failed, parseFailure{path: paths[i], err: r.err})
			continue
		}
		items = append(items, renamer.Item{Path: paths[i], Parsed: r.parsed})
	}
	return items, failed
}

// detectTitle picks the series title for the batch: an explicit override
// wins, then the first title parsed from a file that still needs
// renaming.
func detectTitle(items []renamer.Item, override string) string {
	if override != "" {
		return override
	}
	for _, it := range items {
		if !it.Parsed.AlreadyFormatted {
			return it.Parsed.Title
		}
	}
	if len(items) > 0 {
		return items[0].Parsed.Title
	}
	return ""
}

// tmdbPlanner resolves the series on TMDB and builds a planner over its
// season layout.
func tmdbPlanner(ctx context.Context, provider metadata.Provider, title, root string, opts renamer.Options, reader *bufio.Reader) (*renamer.Planner, error) {
	details, err := resolveShow(ctx, provider, title, root, reader)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Series: %s (%d seasons) [tmdb-%d]\n\n", details.Name, details.NumberOfSeasons, details.ID)
	return renamer.New(details.Name, details.Seasons, opts), nil
}

// resolveShow finds the TMDB series for the batch. A tmdb id marker in
// the path skips search entirely; otherwise search results go through
// the auto-picker and fall back to an interactive choice.
func resolveShow(ctx context.Context, provider metadata.Provider, title, root string, reader *bufio.Reader) (*tmdb.TVDetails, error) {
	if id, ok := fansub.ExtractTMDBID(root); ok {
		return provider.GetTVDetails(ctx, id)
	}

	shows, err := provider.SearchTV(ctx, fansub.CleanQuery(title))
	if err != nil {
		return nil, err
	}
	if len(shows) == 0 {
		return nil, fmt.Errorf("%w for %q", errNoResults, title)
	}

	ranked := metadata.RankShows(title, shows)
	if show, ok := metadata.AutoPick(ranked); ok {
		return provider.GetTVDetails(ctx, show.ID)
	}

	show, err := pickShow(ranked, reader)
	if err != nil {
		return nil, err
	}
	return provider.GetTVDetails(ctx, show.ID)
}

// pickShow lets the user choose from ranked search results.
func pickShow(ranked []metadata.Candidate, reader *bufio.Reader) (tmdb.TVShow, error) {
	fmt.Println("Multiple matches:")
	for i, c := range ranked {
		fmt.Printf("  %d. %s [tmdb-%d]\n", i+1, showLabel(c.Show), c.Show.ID)
	}

	answer := prompt(reader, fmt.Sprintf("Pick a series [1-%d, empty to abort]: ", len(ranked)))
	if answer == "" {
		return tmdb.TVShow{}, errAborted
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(ranked) {
		return tmdb.TVShow{}, fmt.Errorf("invalid choice %q", answer)
	}
	return ranked[n-1].Show, nil
}

// showLabel renders one search result for display: localized name,
// original name when it differs, first-air year when known.
func showLabel(show tmdb.TVShow) string {
	name := show.Name
	if show.OriginalName != "" && show.OriginalName != show.Name {
		name = fmt.Sprintf("%s / %s", show.Name, show.OriginalName)
	}
	if year := show.Year(); year > 0 {
		name = fmt.Sprintf("%s (%d)", name, year)
	}
	return name
}

// aniListPlanner resolves the series title on AniList. AniList carries
// no season layout, so files keep their parsed season and episode.
func aniListPlanner(ctx context.Context, service *metadata.AniListService, query string, opts renamer.Options, reader *bufio.Reader) (*renamer.Planner, error) {
	title, err := pickAniListTitle(ctx, service, query, reader)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Series: %s [anilist]\n\n", title)
	return renamer.NewWithoutLayout(title, opts), nil
}

// pickAniListTitle searches AniList, lets the user choose a series, then
// a title variant to rename with.
func pickAniListTitle(ctx context.Context, service *metadata.AniListService, query string, reader *bufio.Reader) (string, error) {
	results, err := service.SearchAnime(ctx, fansub.CleanQuery(query))
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("%w for %q", errNoResults, query)
	}

	fmt.Println("AniList matches:")
	for i, m := range results {
		fmt.Printf("  %d. %s (%s, %d episodes)\n", i+1, m.DisplayTitle(false), m.FormatDate(), m.Episodes)
	}

	answer := prompt(reader, fmt.Sprintf("Pick a series [1-%d, empty to abort]: ", len(results)))
	if answer == "" {
		return "", errAborted
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(results) {
		return "", fmt.Errorf("invalid choice %q", answer)
	}

	return pickTitleVariant(results[n-1], reader)
}

// pickTitleVariant offers the title forms AniList tracks plus a custom
// free-text option.
func pickTitleVariant(media anilist.Media, reader *bufio.Reader) (string, error) {
	var options []string
	seen := map[string]bool{}
	for _, t := range []string{media.Title.Native, media.Title.Romaji, media.Title.English} {
		if t != "" && !seen[t] {
			options = append(options, t)
			seen[t] = true
		}
	}

	fmt.Println("Title to use:")
	for i, t := range options {
		fmt.Printf("  %d. %s\n", i+1, t)
	}
	fmt.Printf("  %d. (custom)\n", len(options)+1)

	answer := prompt(reader, fmt.Sprintf("Pick a title [1-%d]: ", len(options)+1))
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options)+1 {
		return "", fmt.Errorf("invalid choice %q", answer)
	}
	if n == len(options)+1 {
		custom := prompt(reader, "Custom title: ")
		if custom == "" {
			return "", errAborted
		}
		return custom, nil
	}
	return options[n-1], nil
}

// printPlan previews planned renames and the files left alone.
func printPlan(plan *renamer.Plan) {
	for _, e := range plan.Entries {
		fmt.Printf("  %s\n    -> %s\n", filepath.Base(e.Source), targetDisplay(e))
	}
	for _, s := range plan.Skips {
		fmt.Printf("  %s: skipped (%s)\n", filepath.Base(s.Path), s.Reason)
	}
	fmt.Println()
}

// targetDisplay renders a rename target relative to its source
// directory, so season-folder nesting stays visible.
func targetDisplay(e renamer.Entry) string {
	rel, err := filepath.Rel(filepath.Dir(e.Source), e.Target)
	if err != nil {
		return e.Target
	}
	return rel
}
