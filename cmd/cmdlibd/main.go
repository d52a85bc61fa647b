// Command cmdlibd serves the Linux command catalog API and its browsing
// frontend. The catalog database is opened read-only; all configuration is
// read once at startup.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
	cmdlibhttp "github.com/dockers-x/LinuxCommandLibrary/http"
	"github.com/dockers-x/LinuxCommandLibrary/sqlite"
	"gopkg.in/yaml.v3"
)

// CLI defines the server's flags and their environment bindings.
type CLI struct {
	DB            string `help:"Path to the catalog database file." env:"CMDLIB_DB" default:"commands.db"`
	Addr          string `help:"Bind address." env:"CMDLIB_ADDR" default:"0.0.0.0:8080"`
	CORS          bool   `help:"Allow any origin on API responses." env:"CMDLIB_CORS" default:"true" negatable:""`
	LogLevel      string `help:"Log verbosity (debug, info, warn, error)." env:"CMDLIB_LOG_LEVEL" default:"info" enum:"debug,info,warn,error"`
	PopularConfig string `help:"Optional YAML file listing curated popular commands." env:"CMDLIB_POPULAR" type:"existingfile" optional:""`
}

func main() {
	cli := &CLI{}
	kong.Parse(cli, kong.Name("cmdlibd"), kong.Description("Linux command catalog API server."))

	if err := run(cli); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cli *CLI) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cli.LogLevel),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := sqlite.NewReadOnlyDB(cli.DB)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open catalog at %q: %w", cli.DB, err)
	}
	defer db.Close()

	// The catalog is built offline; refuse to serve from a file that
	// doesn't carry the expected tables.
	if err := db.VerifySchema(ctx); err != nil {
		return fmt.Errorf("catalog check failed for %q: %w", cli.DB, err)
	}

	popular, err := loadPopular(cli.PopularConfig)
	if err != nil {
		return err
	}

	server := cmdlibhttp.NewServer()
	server.Addr = cli.Addr
	server.EnableCORS = cli.CORS
	server.Logger = logger
	server.Popular = popular
	server.CommandService = sqlite.NewCommandService(db)
	server.TipService = sqlite.NewTipService(db)
	server.CategoryService = sqlite.NewCategoryService(db)

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to start server on %q: %w", cli.Addr, err)
	}
	logger.Info("server started", "addr", cli.Addr, "db", cli.DB, "cors", cli.CORS)

	<-ctx.Done()
	logger.Info("shutting down")
	return server.Close()
}

// loadPopular reads the curated popular-command list, falling back to the
// compiled-in default when no file is configured.
func loadPopular(path string) (cmdlib.PopularList, error) {
	if path == "" {
		return cmdlib.DefaultPopularList, nil
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return cmdlib.PopularList{}, fmt.Errorf("failed to read popular config %q: %w", path, err)
	}

	var list cmdlib.PopularList
	if err := yaml.Unmarshal(body, &list); err != nil {
		return cmdlib.PopularList{}, fmt.Errorf("failed to parse popular config %q: %w", path, err)
	}
	return list, nil
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
