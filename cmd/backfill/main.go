// Command backfill walks the canonical store and seeds a skeleton content
// document for every record that has none yet, so editors never start from a
// blank page after a bulk import.
package main

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"adriatic_listings/internal/adapters/cms"
	"adriatic_listings/internal/adapters/observability"
	"adriatic_listings/internal/app"
	"adriatic_listings/internal/domain"
	"adriatic_listings/internal/shared"
	mysqlrepo "adriatic_listings/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.ContentBase).
		Int("workers", cfg.Workers).
		Msg("backfill starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	content, err := cms.New(cfg.ContentBase, cfg.ContentKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize content client")
	}

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, kind := range []domain.Kind{domain.KindEvent, domain.KindProperty} {
		records, err := repo.ListAll(ctx, kind)
		if err != nil {
			log.Fatal().Str("kind", string(kind)).Err(err).Msg("list failed")
		}
		log.Info().Str("kind", string(kind)).Int("count", len(records)).Msg("listed records")

		for _, rec := range records {
			rec := rec

			// acquire before launching the goroutine; release inside it
			if err := sem.Acquire(ctx, int64(1)); err != nil {
				log.Fatal().Err(err).Msg("semaphore acquire failed")
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release(int64(1))

				if err := seed(ctx, content, rec); err != nil {
					log.Warn().Str("id", rec.ID).Err(err).Msg("backfill failed")
					return
				}
				log.Info().Str("id", rec.ID).Str("slug", rec.Slug).Msg("backfill ok")
			}()
		}
	}

	wg.Wait()
	log.Info().Msg("backfill completed")
}

// seed creates a skeleton document only when no default-locale document
// exists; existing content, partial or translated, is never overwritten.
func seed(ctx context.Context, content domain.ContentStore, rec domain.Record) error {
	_, err := content.GetByForeignID(ctx, rec.Kind, rec.ID, app.DefaultLocale)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	_, err = content.CreateMinimal(ctx, rec.Kind, rec.ID, rec.Title, rec.Location)
	return err
}
