// Command query runs ad-hoc queries against the course table.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"courses/internal/config"
	"courses/internal/database"
	"courses/internal/logger"
	"courses/internal/model"
	"courses/internal/repository"

	"github.com/joho/godotenv"
)

type mode int

const (
	modeList mode = iota
	modeByID
	modeRename
	modeMigrate
)

type options struct {
	mode     mode
	courseID int
	name     string
	timeout  time.Duration
}

// parseArgs reads the command line. At most one of -list, -id, -rename and
// -migrate may be given; none means -list.
func parseArgs(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var opts options
	fs.Bool("list", false, "print every course (default)")
	fs.IntVar(&opts.courseID, "id", 0, "print the courses with this id")
	fs.StringVar(&opts.name, "rename", "", "set the name of every course (destructive)")
	fs.Bool("migrate", false, "apply schema migrations and exit")
	fs.DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall query timeout")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var modes []string
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "list":
			if f.Value.String() == "true" {
				modes = append(modes, f.Name)
				opts.mode = modeList
			}
		case "id":
			modes = append(modes, f.Name)
			opts.mode = modeByID
		case "rename":
			modes = append(modes, f.Name)
			opts.mode = modeRename
		case "migrate":
			if f.Value.String() == "true" {
				modes = append(modes, f.Name)
				opts.mode = modeMigrate
			}
		}
	})
	if len(modes) > 1 {
		return options{}, fmt.Errorf("flags %v are mutually exclusive", modes)
	}
	if opts.mode == modeRename && opts.name == "" {
		return options{}, fmt.Errorf("-rename needs a non-empty name")
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", "development")
		log.Fatal().Msgf("Error loading config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.Environment)

	if cfg.DBConnectionString == "" {
		logger.Fatal().Msg("DATABASE_URL is not set")
	}
	dsn := database.PrepareDSN(cfg.DBConnectionString, cfg.Environment)

	if opts.mode == modeMigrate {
		if err := database.Migrate(dsn, logger); err != nil {
			logger.Fatal().Msgf("Migration failed: %v", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	pool, err := database.NewPool(ctx, dsn, cfg.DBMaxConns, logger)
	if err != nil {
		logger.Fatal().Msgf("Failed to connect: %v", err)
	}
	defer pool.Close()

	repo := repository.NewCourseQueryRepo(pool)
	out := json.NewEncoder(os.Stdout)

	var courses []model.Course
	switch opts.mode {
	case modeRename:
		n, err := repo.RenameAllCourses(ctx, opts.name)
		if err != nil {
			logger.Fatal().Msgf("Rename failed: %v", err)
		}
		logger.Info().Int64("rows", n).Str("name", opts.name).Msg("Renamed courses")
		return
	case modeByID:
		courses, err = repo.FindCoursesByID(ctx, opts.courseID)
	default:
		courses, err = repo.ListAllCourses(ctx)
	}
	if err != nil {
		logger.Fatal().Msgf("Query failed: %v", err)
	}

	for _, c := range courses {
		if err := out.Encode(c); err != nil {
			logger.Fatal().Msgf("Writing output: %v", err)
		}
	}
	logger.Info().Int("rows", len(courses)).Msg("Query finished")
}
