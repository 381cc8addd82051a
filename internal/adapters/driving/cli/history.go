package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

var (
	historyLimit int
	historyPrune int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent save and load requests",
	Long: `List the activity journal, newest first.

Use --prune N to keep only the N most recent records.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of records (default: history.limit setting)")
	historyCmd.Flags().IntVar(&historyPrune, "prune", -1, "keep only the N most recent records")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx := cmd.Context()

	if historyPrune >= 0 {
		if err := historyService.Prune(ctx, historyPrune); err != nil {
			return fmt.Errorf("failed to prune history: %w", err)
		}
		cmd.Printf("Kept the %d most recent records\n", historyPrune)
		return nil
	}

	activities, err := historyService.Recent(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		return outputHistoryJSON(cmd, activities)
	}
	return outputHistoryTable(cmd, activities)
}

// historyRecord is the JSON form of an activity.
type historyRecord struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
	Path      string `json:"path,omitempty"`
	Outcome   string `json:"outcome"`
	Bytes     int    `json:"bytes"`
	Error     string `json:"error,omitempty"`
	At        string `json:"at"`
}

func outputHistoryJSON(cmd *cobra.Command, activities []domain.Activity) error {
	records := make([]historyRecord, len(activities))
	for i, a := range activities {
		records[i] = historyRecord{
			ID:        a.ID,
			Operation: a.Operation.String(),
			Path:      a.Path,
			Outcome:   a.Outcome,
			Bytes:     a.Bytes,
			Error:     a.Error,
			At:        a.At.UTC().Format(time.RFC3339),
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputHistoryTable(cmd *cobra.Command, activities []domain.Activity) error {
	if len(activities) == 0 {
		cmd.Println("No activity recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tOP\tOUTCOME\tBYTES\tPATH")
	for _, a := range activities {
		path := a.Path
		if path == "" {
			path = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			a.At.Local().Format("2006-01-02 15:04:05"), a.Operation, a.Outcome, a.Bytes, path)
	}
	return w.Flush()
}
