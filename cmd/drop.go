package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/storage"
)

var dropForce bool

// dropCmd deletes one stored match, or the whole database file.
var dropCmd = &cobra.Command{
	Use:   "drop [match]",
	Short: "Delete a stored match or the whole database",
	Long: `With a match name, delete that match from the database.
Without one, permanently delete the SQLite database. Re-ingest your match files afterwards to rebuild.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
}

func runDrop(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return dropMatch(args[0])
	}
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete: %s\n", cfg.DBPath)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}
	if err := os.Remove(cfg.DBPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stdout, "Database does not exist, nothing to drop.")
			return nil
		}
		return fmt.Errorf("remove database: %w", err)
	}
	// WAL side files.
	for _, suffix := range []string{"-wal", "-shm"} {
		_ = os.Remove(cfg.DBPath + suffix)
	}
	fmt.Fprintf(os.Stdout, "Deleted: %s\n", cfg.DBPath)
	return nil
}

func dropMatch(name string) error {
	db, err := openExistingStore()
	if err != nil {
		return err
	}
	if db == nil {
		fmt.Fprintln(os.Stdout, "Database does not exist, nothing to drop.")
		return nil
	}
	defer db.Close()

	if err := db.DeleteMatch(name); err != nil {
		if errors.Is(err, storage.ErrMatchNotFound) {
			fmt.Fprintf(os.Stderr, "No stored match named %q\n", name)
			return nil
		}
		return fmt.Errorf("delete match: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Dropped match: %s\n", name)
	return nil
}
