package main

import (
	"context"

	"github.com/spf13/cobra"

	"representantes/internal/cache"
	"representantes/internal/database"
	"representantes/internal/repository/sqlrepo"
	"representantes/internal/service"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables if they do not exist and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer e.dbs.Close()
			e.log.Info().Msg("migration complete")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the table contents with the seed representantes, ignoring DB_INIT_DATA",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			e, err := setup(ctx)
			if err != nil {
				return err
			}
			defer e.dbs.Close()

			return runSeed(ctx, e)
		},
	}
}

// runSeed replaces the rows with the seed set regardless of DB_INIT_DATA and
// drops the cached entries of the removed rows.
func runSeed(ctx context.Context, e *env) error {
	repCache, err := cache.New(e.cfg.Cache)
	if err != nil {
		return err
	}
	defer repCache.Close()

	forced := database.NewService(e.dbs.Client(), e.dbs.Driver(), true, e.log)
	repSvc := service.NewRepresentanteService(sqlrepo.NewRepresentanteSQL(forced, e.log), repCache, e.log)

	res, err := repSvc.ReloadSeed(ctx)
	if err != nil {
		return err
	}
	if !res.OK() {
		return res.Err
	}
	e.log.Info().Int64("deleted", res.Deleted).Msg("seed complete")
	return nil
}
