// catalog-check проверяет YAML-каталог объектов до того, как его подхватит сервер:
// валидирует записи и печатает сводку, с которой будет работать дашборд.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/construction-map/internal/config"
	"github.com/construction-map/internal/domain"
	"github.com/construction-map/internal/domain/repository"
	"github.com/construction-map/internal/pkg/format"
	"github.com/construction-map/internal/pkg/logger"
	"github.com/construction-map/internal/repository/static"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration; флаг перекрывает CATALOG_PATH
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	path := flag.String("catalog", cfg.Catalog.Path, "path to catalog YAML (empty: embedded sample)")
	level := flag.String("log-level", "warn", "log level")
	flag.Parse()

	// 2. Initialize logger
	log, err := logger.New(*level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	// 3. Load and validate
	var repo repository.ObjectRepository
	if *path != "" {
		repo, err = static.NewFileRepository(*path, log)
	} else {
		repo, err = static.NewSampleRepository(log)
	}
	if err != nil {
		log.Error("Catalog is invalid", zap.String("path", *path), zap.Error(err))
		os.Exit(1)
	}

	objects, err := repo.List(context.Background())
	if err != nil {
		log.Error("Failed to list catalog", zap.Error(err))
		os.Exit(1)
	}

	// 4. Report
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tCENTROID\tCOST\tNAME")
	for _, o := range objects {
		centroid := format.Placeholder
		if c, ok := format.Centroid(o.Polygon); ok {
			centroid = fmt.Sprintf("%.6f, %.6f", c.Lat, c.Lng)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", o.ID, o.Status.Label(), centroid, format.Currency(o.Cost), o.Name)
	}
	_ = tw.Flush()

	totals := domain.SumTotals(objects)
	fmt.Printf("\nversion %s, objects %d\n", repo.Version(), len(objects))
	fmt.Printf("cost %s, fact %s, plan EOY %s\n",
		format.Currency(totals.Cost),
		format.Currency(totals.Fact),
		format.Currency(totals.PlanEOY))
}
