package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"iis_schedule/config"
	"iis_schedule/errs"
	"iis_schedule/fetcher"
	"iis_schedule/firebasesdk"
	applogger "iis_schedule/logger"
	"iis_schedule/printer"
	"iis_schedule/schedule"
	"iis_schedule/sheetexport"
	"iis_schedule/transformer"
)

type options struct {
	update     bool
	configPath string
	xlsxPath   string
	publish    bool
}

func main() {
	var opts options
	flag.BoolVar(&opts.update, "update", false, "fetch the schedule from the API and refresh the caches")
	flag.StringVar(&opts.configPath, "config", "", "path to a config file")
	flag.StringVar(&opts.xlsxPath, "xlsx", "", "also export the schedule to this .xlsx file")
	flag.BoolVar(&opts.publish, "publish", false, "upload the schedule to Firebase")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env file: %v\n", err)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts, logger); err != nil {
		code := reportFailure(os.Stderr, err)
		logger.Sync()
		stop()
		os.Exit(code)
	}
}

// reportFailure prints err once and returns the exit status.
func reportFailure(w io.Writer, err error) int {
	fmt.Fprintln(w, err)
	return 1
}

func run(ctx context.Context, cfg *config.Config, opts options, logger *zap.Logger) error {
	days, err := cfg.Days()
	if err != nil {
		return err
	}

	svc := schedule.NewService(
		fetcher.New(cfg, nil, logger.Named("fetcher")),
		transformer.New(days, cfg.ParsedCachePath, logger.Named("transformer")),
		cfg.ParsedCachePath,
		logger,
	)

	logger.Info("loading schedule",
		zap.String("group", cfg.GroupID),
		zap.Bool("update", opts.update),
	)
	parsed, err := svc.GetAndParse(ctx, opts.update)
	if err != nil {
		return err
	}

	if err := printer.Print(os.Stdout, parsed); err != nil {
		return err
	}

	if opts.xlsxPath != "" {
		if err := sheetexport.ExportWorkbook(parsed, opts.xlsxPath); err != nil {
			return err
		}
		logger.Info("workbook exported", zap.String("path", opts.xlsxPath))
	}

	if opts.publish {
		publisher, err := firebasesdk.NewPublisher(ctx, &cfg.Firebase, logger.Named("firebase"))
		if errors.Is(err, errs.ErrPublishDisabled) {
			return fmt.Errorf("%w: set firebase.database_url or SCHEDULE_FIREBASE_DATABASE_URL", err)
		}
		if err != nil {
			return err
		}
		if err := publisher.Publish(ctx, cfg.GroupID, parsed); err != nil {
			return err
		}
	}
	return nil
}
