package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/abhisek/mathpaper/internal/session"
	"github.com/abhisek/mathpaper/internal/store"
)

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags, MATHPAPER_* environment variables
// and the optional mathpaper.yaml config file to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("MATHPAPER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("mathpaper")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/mathpaper")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

// openStore opens the database named by the db key, falling back to
// MATHPAPER_DB and then the default XDG path.
func openStore(v *viper.Viper) (*store.Store, error) {
	dbPath := v.GetString("db")
	if dbPath != "" {
		if err := store.EnsureDir(dbPath); err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	} else {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		dbPath = p
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// newGenerator returns a generator seeded from the seed key.
func newGenerator(v *viper.Viper) *problemgen.Generator {
	return problemgen.New(problemgen.NewRand(v.GetUint64("seed")), problemgen.DefaultConfig())
}

// loadSession loads the session named by the session key, or the most
// recent one when the key is empty.
func loadSession(ctx context.Context, v *viper.Viper, repo store.SessionRepo) (*session.TestSession, error) {
	var (
		rec session.Record
		err error
	)
	if id := v.GetString("session"); id != "" {
		rec, err = repo.Get(ctx, id)
	} else {
		rec, err = repo.Latest(ctx)
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil, errors.New("no such session; run `mathpaper sessions` to list them")
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return session.FromRecord(rec), nil
}
