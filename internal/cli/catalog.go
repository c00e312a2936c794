package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"coronet_planner/internal/catalog"
	"coronet_planner/internal/database"
	"coronet_planner/internal/models"
)

var errNoCatalogStore = errors.New("catalog.db_path is not configured")

func (a *app) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and extend the catalogs enum fields are checked against",
	}
	cmd.AddCommand(a.catalogListCommand(), a.catalogImportCommand())
	return cmd
}

func (a *app) catalogListCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print catalog options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind != "" && !catalog.IsKind(kind) {
				return fmt.Errorf("unknown catalog kind: %s", kind)
			}

			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}

			options := cat.All()
			if kind != "" {
				options = cat.Options(catalog.Kind(kind))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tVALUE\tLABEL")
			for _, opt := range options {
				fmt.Fprintf(w, "%s\t%s\t%s\n", opt.Kind, opt.Value, opt.Label)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Only list this catalog (e.g. aircraft_type, rank)")

	return cmd
}

func (a *app) catalogImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE...",
		Short: "Add catalog options from kind,value,label CSV files to the catalog store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Catalog.DBPath == "" {
				return errNoCatalogStore
			}

			count := 0
			for _, path := range args {
				options, err := database.ReadCatalogCSV(path)
				if err != nil {
					return err
				}
				for _, opt := range options {
					if !catalog.IsKind(opt.Kind) {
						return fmt.Errorf("%s: unknown catalog kind %q", path, opt.Kind)
					}
				}
				count += len(options)
			}

			db, err := a.openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.CatalogRepository().LoadFromMultipleCSV(args, a.cfg.Catalog.BatchSize); err != nil {
				return fmt.Errorf("failed to import catalog options: %w", err)
			}

			slog.Info("Imported catalog options", "files", len(args), "options", count)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d catalog options\n", count)
			return nil
		},
	}
}

// loadCatalog returns the built-in catalogs, or the catalog store's when one
// is configured
func (a *app) loadCatalog() (*catalog.Catalog, error) {
	if a.cfg.Catalog.DBPath == "" {
		return catalog.Default(), nil
	}

	db, err := a.openStore()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	stored, err := db.CatalogRepository().List()
	if err != nil {
		return nil, err
	}

	options := make([]models.CatalogOption, 0, len(stored))
	for _, opt := range stored {
		options = append(options, *opt)
	}

	cat, err := catalog.New(options)
	if err != nil {
		return nil, fmt.Errorf("catalog store %s: %w", a.cfg.Catalog.DBPath, err)
	}
	return cat, nil
}

// openStore opens the catalog store, seeding it from the built-in catalogs
// the first time
func (a *app) openStore() (*database.DB, error) {
	db, err := database.New(a.cfg.Catalog.DBPath)
	if err != nil {
		return nil, err
	}

	repo := db.CatalogRepository()
	populated, err := repo.IsTablePopulated()
	if err != nil {
		db.Close()
		return nil, err
	}

	if !populated {
		defaults := catalog.DefaultOptions()
		seed := make([]*models.CatalogOption, len(defaults))
		for i := range defaults {
			seed[i] = &defaults[i]
		}
		if err := repo.InsertBatch(seed); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed catalog store: %w", err)
		}
		slog.Info("Catalog store seeded", "db_path", a.cfg.Catalog.DBPath, "options", len(seed))
	}

	return db, nil
}
