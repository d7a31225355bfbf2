package main

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/parcel/internal/cli"
	"github.com/alexanderramin/parcel/internal/config"
	"github.com/alexanderramin/parcel/internal/db"
	"github.com/alexanderramin/parcel/internal/repository"
	"github.com/alexanderramin/parcel/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app, closeDB := newApp(os.Stderr)
	defer closeDB()
	return cli.NewRootCmd(app).Execute()
}

// newApp wires the CLI. A broken configuration or a missing home directory
// is only reported by commands that open storage; the bare command and
// `demo` always print the sample parcel.
func newApp(logOut io.Writer) (*cli.App, func()) {
	cfg, cfgErr := config.Load()

	color := config.ColorAuto
	if cfgErr == nil {
		color = cfg.Color
	}
	applyColorMode(color, isTerminal(os.Stdout))

	var database *sql.DB
	app := &cli.App{
		OpenTrees: func() (service.TreeService, error) {
			if cfgErr != nil {
				return nil, cfgErr
			}
			conn, err := db.OpenDB(cfg.DBPath)
			if err != nil {
				return nil, fmt.Errorf("opening database: %w", err)
			}
			database = conn

			var observers []service.UseCaseObserver
			if cfg.LogUseCases {
				observers = append(observers, service.NewLogUseCaseObserver(logOut))
			}
			return service.NewTreeService(
				repository.NewSQLiteNodeRepo(conn),
				db.NewSQLiteUnitOfWork(conn),
				observers...,
			), nil
		},
		// Forms only run when stdin is a terminal.
		IsInteractive: func() bool { return isTerminal(os.Stdin) },
	}

	closeDB := func() {
		if database != nil {
			database.Close()
		}
	}
	return app, closeDB
}

func applyColorMode(mode config.ColorMode, tty bool) {
	switch mode {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		if !tty {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
