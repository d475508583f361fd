package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lintang-b-s/congestion-router/pkg/engine"
	"github.com/lintang-b-s/congestion-router/pkg/ledger"
	"github.com/lintang-b-s/congestion-router/pkg/logger"
	"github.com/lintang-b-s/congestion-router/pkg/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "route",
	Short: "Least congested routes from a traffic ledger",
	Long: `route loads a traffic ledger (csv, csv.bz2 or postgres), builds the congestion graph and answers
route queries from the command line.`,
	SilenceUsage: true,
}

var findCmd = &cobra.Command{
	Use:   "find START END",
	Short: "Find the least congested route between two locations",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, log, err := loadEngine(cmd.Context())
		if err != nil {
			return err
		}
		defer log.Sync()

		departure := time.Now()
		if clock := viper.GetString("time"); clock != "" {
			departure, err = util.ParseClock(clock)
			if err != nil {
				return fmt.Errorf("--time %q is not HH:MM", clock)
			}
		}

		res := e.ComputeRouteAt(args[0], args[1], departure)
		if !res.OK() {
			return fmt.Errorf("%s: %s", res.ErrorKind, res.Message)
		}

		if viper.GetBool("json") {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Stops           []engine.Stop `json:"stops"`
				TotalCongestion float64       `json:"total_congestion"`
			}{res.Path, res.TotalCongestion})
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tLOCATION\tCONGESTION\tTIME")
		for i, s := range res.Path {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, s.Location, s.Congestion, s.Time)
		}
		fmt.Fprintf(w, "\nroute: %s (total congestion %.0f)\n", strings.Join(res.Locations(), " -> "), res.TotalCongestion)
		return w.Flush()
	},
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the locations of the traffic ledger",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, log, err := loadEngine(cmd.Context())
		if err != nil {
			return err
		}
		defer log.Sync()

		for _, loc := range e.Locations() {
			fmt.Fprintln(cmd.OutOrStdout(), loc)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "./data/", "directory containing config.yaml")
	rootCmd.PersistentFlags().String("source", "csv", "ledger source: csv or postgres")
	rootCmd.PersistentFlags().String("ledger", "", "ledger csv path (.csv or .csv.bz2)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level")

	findCmd.Flags().String("time", "", "departure time HH:MM (recorded, does not change weights)")
	findCmd.Flags().Bool("json", false, "print the route as json")

	viper.BindPFlag("LEDGER_SOURCE", rootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("time", findCmd.Flags().Lookup("time"))
	viper.BindPFlag("json", findCmd.Flags().Lookup("json"))

	rootCmd.AddCommand(findCmd, locationsCmd)
}

func initConfig() {
	if err := util.ReadConfig(cfgPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// an explicit --ledger beats config and environment
	if path, _ := rootCmd.PersistentFlags().GetString("ledger"); path != "" {
		viper.Set("LEDGER_PATH", path)
	}
}

func loadEngine(ctx context.Context) (*engine.Engine, *zap.Logger, error) {
	log, err := logger.New()
	if err != nil {
		return nil, nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	src, err := ledger.NewSource(viper.GetString("LEDGER_SOURCE"), viper.GetString("LEDGER_PATH"),
		viper.GetString("POSTGRES_DSN"), viper.GetString("POSTGRES_TABLE"), viper.GetString("POSTGRES_ORDER_COLUMN"))
	if err != nil {
		return nil, nil, err
	}
	e, err := engine.NewEngineFromSource(ctx, src, log)
	if err != nil {
		return nil, nil, err
	}
	return e, log, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
