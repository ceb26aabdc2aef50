package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"menyqr-app/database"
	"menyqr-app/internal/repository"
	"menyqr-app/internal/repository/gormstore"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, closeDB, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			return closeDB()
		},
	}
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate, then load the demo restaurant into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeDB, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			if err := store.Seed(cmd.Context(), repository.DemoFixtures()); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			a.log.Info("demo data seeded", zap.String("restaurant_id", repository.DemoRestaurantID))
			return nil
		},
	}
}

// openDB connects to postgres and brings the schema up to date.
func (a *app) openDB(ctx context.Context) (*gormstore.Store, func() error, error) {
	db, err := database.Open(a.cfg.Database.URL, a.log)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("underlying sql.DB: %w", err)
	}

	if err := database.Migrate(ctx, db, a.log); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	return gormstore.New(db), sqlDB.Close, nil
}
