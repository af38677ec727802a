package flags

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"
)

func AddNow(cmd *cobra.Command) {
	cmd.Flags().
		String("now", "", "Evaluate as if the current time were this date (e.g. 2024-05-01, \"May 1 2024 9:00\").")
}

// HandleNow returns the parsed --now value, or the zero time when unset.
func HandleNow(cmd *cobra.Command) (time.Time, error) {
	raw, err := cmd.Flags().GetString("now")
	if err != nil || raw == "" {
		return time.Time{}, err
	}
	return ParseTime(raw)
}

// ParseTime parses a loosely formatted date in UTC.
func ParseTime(raw string) (time.Time, error) {
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", raw, err)
	}
	return t, nil
}

func AddSeed(cmd *cobra.Command) {
	cmd.Flags().
		Int64("seed", 0, "Seed for random selection. Unset picks a random seed.")
}

// HandleSeed reports the seed and whether it was given, so --seed 0 is
// still a fixed seed.
func HandleSeed(cmd *cobra.Command) (int64, bool, error) {
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		return 0, false, err
	}
	return seed, cmd.Flags().Changed("seed"), nil
}
