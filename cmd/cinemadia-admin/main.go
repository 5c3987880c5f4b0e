// Command cinemadia-admin runs maintenance tasks against a cinemadia
// deployment.
//
//	cinemadia-admin -conf ../../configs seed
//	cinemadia-admin -conf ../../configs import "Dune: Part Two" "Past Lives"
//	cinemadia-admin -conf ../../configs prune 100
//	cinemadia-admin fixbool fixtures/movies.py
//	cinemadia-admin -conf ../../configs healthcheck
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cinemadia/internal/biz"
	"cinemadia/internal/conf"
	"cinemadia/internal/data"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
)

var (
	flagconf    string
	flagaddr    string
	flagtimeout time.Duration
)

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs", "config path, eg: -conf config.yaml")
	flag.StringVar(&flagaddr, "addr", "", "gRPC address for healthcheck, defaults to server.grpc.addr")
	flag.DurationVar(&flagtimeout, "timeout", 3*time.Second, "healthcheck timeout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] seed|import|prune|fixbool|healthcheck [args]\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	logger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flag.Arg(0), flag.Args()[1:], logger); err != nil {
		log.NewHelper(logger).Errorf("%s: %v", flag.Arg(0), err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args []string, logger log.Logger) error {
	switch command {
	case "fixbool":
		if len(args) == 0 {
			return fmt.Errorf("fixbool needs at least one file")
		}
		return fixBooleanFiles(args, log.NewHelper(logger))
	case "healthcheck":
		addr := flagaddr
		if addr == "" {
			bc, err := loadConfig()
			if err != nil {
				return err
			}
			if bc.Server != nil && bc.Server.Grpc != nil {
				addr = bc.Server.Grpc.Addr
			}
		}
		return healthcheck(ctx, addr, flagtimeout)
	case "seed", "import", "prune":
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	bc, err := loadConfig()
	if err != nil {
		return err
	}
	movies, cleanup, err := newMovieUseCase(bc, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	helper := log.NewHelper(logger)
	switch command {
	case "seed":
		created, err := seedMovies(ctx, movies, helper)
		if err != nil {
			return err
		}
		helper.Infof("seed finished, %d new movies", created)
	case "import":
		if len(args) == 0 {
			return fmt.Errorf("import needs at least one title")
		}
		created := importTitles(ctx, movies, args, helper)
		helper.Infof("import finished, %d new movies", created)
	case "prune":
		if len(args) != 1 {
			return fmt.Errorf("prune needs the number of movies to keep")
		}
		keep, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", args[0], err)
		}
		deleted, err := movies.Prune(ctx, keep)
		if err != nil {
			return err
		}
		helper.Infof("removed %d movies, kept the %d most recent", deleted, keep)
	}
	return nil
}

func loadConfig() (*conf.Bootstrap, error) {
	c := config.New(
		config.WithSource(
			env.NewSource("CINEMADIA_"),
			file.NewSource(flagconf),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}
	return &bc, nil
}

// newMovieUseCase wires the movie use case the way the server does, minus
// the transport layer.
func newMovieUseCase(bc *conf.Bootstrap, logger log.Logger) (*biz.MovieUseCase, func(), error) {
	d, cleanup, err := data.NewData(bc.Data, logger)
	if err != nil {
		return nil, nil, err
	}
	uc := biz.NewMovieUseCase(
		data.NewMovieRepo(d, logger),
		data.NewVoteRepo(d, logger),
		data.NewLibraryRepo(d, logger),
		data.NewReviewRepo(d, logger),
		data.NewCatalogClient(bc.Catalog, logger),
		logger,
	)
	return uc, cleanup, nil
}
