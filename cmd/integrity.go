package cmd

import (
	"errors"

	"room-finder/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the room sources",
	Long:  `Checks the storage snapshot, the rooms table schema and the drift between them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		if err := runIntegrityChecks(cmd, true, true); err != nil {
			return err
		}
		return runDriftCheck(cmd)
	},
}

// storageCheckCmd represents the integrity storage command
var storageCheckCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the rooms snapshot in storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

// schemaCheckCmd represents the integrity schema command
var schemaCheckCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check and fix the rooms table schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

// driftCheckCmd represents the integrity drift command
var driftCheckCmd = &cobra.Command{
	Use:   "drift",
	Short: "Compare the rooms table with the storage snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDriftCheck(cmd)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(storageCheckCmd, schemaCheckCmd, driftCheckCmd)

	storageCheckCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create a missing bucket and an empty rooms snapshot")
	schemaCheckCmd.Flags().BoolVar(&fixFlag, "fix", false, "Migrate the rooms table")
}

// errChecksFailed is returned when a check found problems that were not fixed.
var errChecksFailed = errors.New("integrity checks failed")

func runIntegrityChecks(cmd *cobra.Command, runStorage, runSchema bool) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	logg := env.logg
	defer logg.Sync()

	if runStorage {
		if err := env.connectStorage(); err != nil {
			return err
		}
	}
	if runSchema {
		if err := env.connectDatabase(false); err != nil {
			return err
		}
	}

	svc := integrity.NewService(env.store, env.cfg.Storage, env.db, logg)
	ctx := cmd.Context()
	healthy := true

	if runStorage {
		logg.Info("Checking rooms snapshot...")
		report, err := svc.CheckStorage(ctx)
		if err != nil {
			return err
		}

		if report.Status == "ok" {
			logg.Info("Rooms snapshot is intact.", zap.Int("records", report.Records))
		} else {
			logg.Warn("Storage problems detected", zap.Strings("errors", report.Errors))

			switch {
			case fixFlag && !report.ObjectExists:
				logg.Info("Creating empty rooms snapshot...")
				if err := svc.FixStorage(ctx, report); err != nil {
					return err
				}
				logg.Info("Storage fixed successfully.")
			case !report.ObjectExists:
				logg.Info("Run 'integrity storage --fix' to create the snapshot.")
				healthy = false
			default:
				healthy = false
			}
		}
	}

	if runSchema {
		logg.Info("Checking rooms table schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			return err
		}

		if report.Matched {
			logg.Info("Rooms table matches the row model.", zap.String("dialect", report.Dialect))
		} else {
			if len(report.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", report.Table), zap.Strings("columns", report.MissingColumns))
			}
			if len(report.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", report.Table), zap.Strings("mismatches", report.TypeMismatches))
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}

			if fixFlag {
				logg.Info("Migrating rooms table...")
				if err := svc.FixSchema(); err != nil {
					return err
				}
				logg.Info("Schema fixed successfully.")
			} else {
				logg.Info("Run 'integrity schema --fix' to migrate the table.")
				healthy = false
			}
		}
	}

	if !healthy {
		return errChecksFailed
	}
	return nil
}

func runDriftCheck(cmd *cobra.Command) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	logg := env.logg
	defer logg.Sync()

	if err := env.connectStorage(); err != nil {
		return err
	}
	if err := env.connectDatabase(false); err != nil {
		return err
	}

	svc := integrity.NewService(env.store, env.cfg.Storage, env.db, logg)

	logg.Info("Comparing rooms table with storage snapshot...")
	report, err := svc.CheckDrift(cmd.Context())
	if err != nil {
		return err
	}

	if report.InSync {
		logg.Info("Room sources are in sync.", zap.Int("rooms", report.Summary.TotalRooms))
		return nil
	}

	for _, r := range report.Results {
		logg.Warn("Drift",
			zap.String("key", r.Key),
			zap.Bool("in_database", r.LeftPresent),
			zap.Bool("in_storage", r.RightPresent),
			zap.Strings("mismatch", r.Mismatch))
	}
	logg.Warn("Room sources drifted",
		zap.Int("missing_database", report.Summary.MissingLeft),
		zap.Int("missing_storage", report.Summary.MissingRight),
		zap.Int("mismatches", report.Summary.Mismatches))
	return errChecksFailed
}
