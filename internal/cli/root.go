// Package cli implements the amharic-ner CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rcliao/amharic-ner/internal/ingest"
	"github.com/rcliao/amharic-ner/internal/keywords"
	"github.com/rcliao/amharic-ner/internal/logger"
	"github.com/rcliao/amharic-ner/internal/store"
	"github.com/rcliao/amharic-ner/internal/tagger"
)

var (
	dbPath       string
	keywordsPath string
	verbose      bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "amharic-ner",
	Short: "Build NER training data from Amharic product listings",
	Long: "Normalize raw Amharic listing messages, tag prices, locations and products " +
		"with a fixed rule cascade, and export a CoNLL-style corpus. SQLite-backed, single binary.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; variables may come from the environment.
		_ = godotenv.Load()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $AMHARIC_NER_DB or ~/.amharic-ner/messages.db)")
	RootCmd.PersistentFlags().StringVarP(&keywordsPath, "keywords", "k", "", "Keyword file, .toml or .yaml (default: $AMHARIC_NER_KEYWORDS or built-in lists)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging to stderr")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("AMHARIC_NER_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".amharic-ner", "messages.db")
}

func getKeywordsPath() string {
	if keywordsPath != "" {
		return keywordsPath
	}
	return os.Getenv("AMHARIC_NER_KEYWORDS")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func loadKeywords() (tagger.Keywords, error) {
	return keywords.Load(getKeywordsPath())
}

func loadTagger() (*tagger.Tagger, error) {
	kw, err := loadKeywords()
	if err != nil {
		return nil, err
	}
	return tagger.New(kw), nil
}

func newLogger() logger.Logger {
	log, err := logger.New(logger.Config{Verbose: verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logger unavailable: %v\n", err)
		return logger.Nop()
	}
	return log
}

// readMessages returns the positional args as a single message, or the
// non-blank lines of stdin when it is piped.
func readMessages(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return nil, err
		}
		if stat.Mode()&os.ModeCharDevice != 0 {
			return nil, fmt.Errorf("text is required (positional arg or stdin)")
		}
	}
	return ingest.ReadLines(in)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
