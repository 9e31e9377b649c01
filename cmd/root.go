package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jaimeum/musicdata/internal/config"
	"github.com/jaimeum/musicdata/internal/history"
	"github.com/jaimeum/musicdata/internal/sitedata"
	"github.com/jaimeum/musicdata/pkg/lastfm"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	flagOutput    string
	flagUsername  string
	flagLimit     int
	flagLogLevel  string
	flagDryRun    bool
	flagPreview   bool
	flagHistoryDB string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "musicdata",
	Short: "Generate the site's music data file from Last.fm",
	Long: `musicdata fetches a Last.fm user's listening statistics and writes
them to _data/music.yml for the static site generator.

It fetches the user's profile, all-time top artists, tracks and albums,
and the most recently played tracks, then serializes them as the
ordered YAML document the site templates consume.

Configuration comes from the environment (or a .env file):
  LASTFM_API_KEY   - Last.fm API key (required)
  LASTFM_USERNAME  - username to fetch data for (default: jaimeum19)

The command is a one-shot batch job intended to run from CI. It does
not retry: re-running it after a transient failure is the recovery
mechanism.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage: true,
	RunE:         runExport,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output path (default: _data/music.yml)")
	rootCmd.Flags().StringVarP(&flagUsername, "username", "u", "", "Last.fm username (overrides environment)")
	rootCmd.Flags().IntVar(&flagLimit, "limit", 0, "Items per chart (default: 5)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the YAML to stdout instead of writing the file")
	rootCmd.Flags().BoolVar(&flagPreview, "preview", false, "Print an aligned summary of the document after writing")
	rootCmd.Flags().StringVar(&flagHistoryDB, "history-db", "", "Record successful exports in this SQLite database")
}

func runExport(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(cfg)

	logger := newLogger(cfg.LogLevel)

	// Fail before any network call when the key is missing.
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := lastfm.NewClient(lastfm.Config{
		APIKey: cfg.APIKey,
		Logger: debugLogger{logger: logger.With().Str("component", "lastfm").Logger()},
	})
	if err != nil {
		return fmt.Errorf("failed to create Last.fm client: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Info().Str("username", cfg.Username).Msg("Fetching Last.fm data")

	doc, user, err := buildDocument(ctx, client, cfg)
	if err != nil {
		return err
	}

	if flagDryRun {
		data, err := doc.Encode()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := sitedata.Write(doc, cfg.Output); err != nil {
		return err
	}

	if cfg.HistoryDB != "" {
		if err := recordExport(ctx, cfg, user); err != nil {
			// The export itself succeeded; a broken audit trail is
			// not worth a non-zero exit.
			logger.Warn().Err(err).Msg("Failed to record export history")
		}
	}

	if flagPreview {
		sitedata.Preview(cmd.OutOrStdout(), doc)
	}

	logger.Info().Str("path", cfg.Output).Msg("Music data updated")
	fmt.Fprintf(cmd.OutOrStdout(), "Successfully updated %s\n", cfg.Output)
	fmt.Fprintf(cmd.OutOrStdout(), "Last updated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	return nil
}

// buildDocument runs the five sequential API calls and assembles the
// document. Any failure aborts before the writer stage, so a partial
// document is never written.
func buildDocument(ctx context.Context, client *lastfm.Client, cfg *config.Config) (sitedata.Document, *lastfm.UserInfo, error) {
	user, err := client.User().GetInfo(ctx, cfg.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch user info: %w", err)
	}

	artists, err := client.User().GetTopArtists(ctx, cfg.Username, cfg.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch top artists: %w", err)
	}

	tracks, err := client.User().GetTopTracks(ctx, cfg.Username, cfg.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch top tracks: %w", err)
	}

	albums, err := client.User().GetTopAlbums(ctx, cfg.Username, cfg.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch top albums: %w", err)
	}

	recent, err := client.User().GetRecentTracks(ctx, cfg.Username, cfg.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch recent tracks: %w", err)
	}

	doc := sitedata.Assemble(
		sitedata.StatisticsEntries(user, cfg.Username),
		sitedata.ArtistEntries(artists),
		sitedata.TrackEntries(tracks),
		sitedata.AlbumEntries(albums),
		sitedata.RecentEntries(recent),
	)

	return doc, user, nil
}

// recordExport appends one row to the export-history database.
func recordExport(ctx context.Context, cfg *config.Config, user *lastfm.UserInfo) error {
	log, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	_, err = log.Record(ctx, history.Export{
		Username:       cfg.Username,
		TotalScrobbles: user.Playcount.Int64(),
		OutputPath:     cfg.Output,
	})
	return err
}

// applyFlagOverrides layers command-line flags over the loaded config.
func applyFlagOverrides(cfg *config.Config) {
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if flagUsername != "" {
		cfg.Username = flagUsername
	}
	if flagLimit > 0 {
		cfg.Limit = flagLimit
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagHistoryDB != "" {
		cfg.HistoryDB = flagHistoryDB
	}
}

// newLogger builds the console logger used across the run.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}

// debugLogger adapts zerolog to the lastfm.Logger interface.
type debugLogger struct {
	logger zerolog.Logger
}

func (l debugLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}
