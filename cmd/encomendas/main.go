// Команда encomendas строит печатные PDF-отчёты по рождественским
// заказам: общие количества по товарам, фишки клиентов, индейки.
// Данные берутся из размещённой PostgreSQL-базы либо из JSON-снимков.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/encomendas/internal/analytics"
	"github.com/vladislavdragonenkov/encomendas/internal/service/export"
	"github.com/vladislavdragonenkov/encomendas/internal/storage/file"
	"github.com/vladislavdragonenkov/encomendas/internal/storage/postgres"
	"github.com/vladislavdragonenkov/encomendas/internal/version"
)

const defaultTimeout = 30 * time.Second

type config struct {
	kind         string
	date         string
	product      string
	client       string
	filename     string
	outDir       string
	dsn          string
	ordersPath   string
	productsPath string
}

// setupLogger настраивает формат и уровень логирования.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

func main() {
	var (
		cfg         config
		showVersion bool
	)
	flag.StringVar(&cfg.kind, "report", "", "report kind: quantidade-total|produtos-quantidades|produto-clientes|fichas-cliente|produtos-e-clientes|perus|cliente")
	flag.StringVar(&cfg.date, "date", "all", "pickup day filter: all|23|24")
	flag.StringVar(&cfg.product, "product", "", "product name (required for produto-clientes)")
	flag.StringVar(&cfg.client, "client", "", "client number (required for cliente)")
	flag.StringVar(&cfg.filename, "file", "", "artifact filename override")
	flag.StringVar(&cfg.outDir, "out", ".", "output directory")
	flag.StringVar(&cfg.dsn, "dsn", "", "PostgreSQL DSN (fallback: ENC_POSTGRES_DSN)")
	flag.StringVar(&cfg.ordersPath, "orders", "", "orders JSON snapshot instead of the database")
	flag.StringVar(&cfg.productsPath, "products", "", "products JSON snapshot")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}

	setupLogger()

	if cfg.kind == "" {
		fail("-report is required")
	}

	// Локальная разработка держит DSN в .env; отсутствие файла — норма.
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		log.WithError(err).Fatal("не удалось построить отчёт")
	}
}

func run(ctx context.Context, cfg config) error {
	logger := log.WithField("component", "export")

	var svc *export.Service
	if cfg.ordersPath != "" {
		src := file.NewSource(cfg.ordersPath, cfg.productsPath)
		svc = export.NewService(src, src, logger)
	} else {
		dsn := strings.TrimSpace(cfg.dsn)
		if dsn == "" {
			dsn = strings.TrimSpace(os.Getenv("ENC_POSTGRES_DSN"))
		}
		if dsn == "" {
			return fmt.Errorf("ENC_POSTGRES_DSN (or -dsn) is required when no -orders snapshot is given")
		}
		store, err := postgres.Open(ctx, dsn)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() {
			_ = store.Close()
		}()
		src := postgres.NewSource(store)
		svc = export.NewService(src, src, logger)
	}

	artifact, err := svc.Build(ctx, export.Request{
		Kind:         export.Kind(cfg.kind),
		Date:         analytics.DateSelector(cfg.date),
		ProductName:  cfg.product,
		ClientNumber: cfg.client,
		Filename:     cfg.filename,
	})
	if err != nil {
		return err
	}

	path, err := artifact.Save(cfg.outDir)
	if err != nil {
		return err
	}

	log.WithField("path", path).Info("отчёт сохранён")
	return nil
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
