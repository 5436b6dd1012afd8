package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"room-finder/core/room"
	"room-finder/feature/rooms"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find rooms within a budget",
	Long: `Loads rooms from a YAML/JSON file, the database or the storage snapshot and prints
the rooms priced within [min, max]. With --rooms greater than one only blocks of adjacent
rooms on the same floor of the same hotel are printed.`,
	Example: `  room-finder search --file rooms.yaml --rooms 2 --min 20 --max 30
  room-finder search --source database --rooms 1 --max 40 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		source, _ := cmd.Flags().GetString("source")
		roomsRequired, _ := cmd.Flags().GetInt("rooms")
		minPrice, _ := cmd.Flags().GetString("min")
		maxPrice, _ := cmd.Flags().GetString("max")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		if (file == "") == (source == "") {
			return errors.New("exactly one of --file or --source is required")
		}

		q, err := rooms.ParseQuery(strconv.Itoa(roomsRequired), minPrice, maxPrice)
		if err != nil {
			return err
		}

		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer env.logg.Sync()

		startTime := time.Now()
		svc, err := loadRooms(cmd, env, file, source)
		if err != nil {
			return err
		}

		result := svc.Search(cmd.Context(), q)
		env.logg.Debug("Search completed",
			zap.Int("stored", svc.Len()),
			zap.Int("matched", len(result)),
			zap.Duration("execution_time", time.Since(startTime)))

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), result)
		}
		return writeTable(cmd.OutOrStdout(), result)
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("file", "", "YAML or JSON file with room records")
	searchCmd.Flags().String("source", "", "Load rooms from database or storage")
	searchCmd.Flags().Int("rooms", 1, "Number of adjacent rooms required")
	searchCmd.Flags().String("min", "0", "Minimum price")
	searchCmd.Flags().String("max", "", "Maximum price")
	searchCmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = searchCmd.MarkFlagRequired("max")
}

func loadRooms(cmd *cobra.Command, env *environment, file, source string) (*rooms.Service, error) {
	if file != "" {
		records, err := rooms.LoadFile(file)
		if err != nil {
			return nil, err
		}
		svc := rooms.NewService(nil, env.cfg.Storage, nil, nil, env.logg)
		if _, err := svc.Add(records); err != nil {
			return nil, fmt.Errorf("invalid room file %s: %w", file, err)
		}
		return svc, nil
	}

	switch source {
	case rooms.SourceDatabase:
		if err := env.connectDatabase(false); err != nil {
			return nil, err
		}
	case rooms.SourceStorage:
		if err := env.connectStorage(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", rooms.ErrUnknownSource, source)
	}

	svc := rooms.NewService(env.store, env.cfg.Storage, env.db, nil, env.logg)
	if _, err := svc.Reload(cmd.Context(), source); err != nil {
		return nil, err
	}
	return svc, nil
}

func writeJSON(w io.Writer, result []room.Room) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rooms.RoomList{Rooms: result, Count: len(result)})
}

func writeTable(w io.Writer, result []room.Room) error {
	if len(result) == 0 {
		_, err := fmt.Fprintln(w, "No rooms found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HOTEL\tFLOOR\tNUMBER\tPRICE")
	for _, r := range result {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.Hotel, r.Floor, r.Number, r.Price.StringFixed(2))
	}
	return tw.Flush()
}
