package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/hrygo/zhtime/internal/profile"
	"github.com/hrygo/zhtime/parser"
	"github.com/hrygo/zhtime/server"
	"github.com/hrygo/zhtime/server/timezone"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "zhtime",
	Short: "Traditional-Chinese time expression parser",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP parse server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	instanceProfile := &profile.Profile{
		Mode:         viper.GetString("mode"),
		Addr:         viper.GetString("addr"),
		Port:         viper.GetInt("port"),
		Timezone:     viper.GetString("timezone"),
		PreferFuture: viper.GetBool("prefer-future"),
		Version:      version,
	}
	instanceProfile.FromEnv()
	if err := instanceProfile.Validate(); err != nil {
		return err
	}

	setupLogger(instanceProfile)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := server.NewServer(ctx, instanceProfile)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		s.Shutdown(context.Background())
		return nil
	})

	return g.Wait()
}

var parseCmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Parse one sentence and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := timezone.ParseTimezone(viper.GetString("timezone"))
		if err != nil {
			return err
		}

		p, err := parser.New(
			parser.WithLocation(loc),
			parser.WithPreferFuture(viper.GetBool("prefer-future")),
		)
		if err != nil {
			return err
		}

		basetime := time.Now()
		if raw := viper.GetString("basetime"); raw != "" {
			basetime, err = time.Parse(time.RFC3339, raw)
			if err != nil {
				return err
			}
		}

		result, err := p.ParseAt(args[0], basetime)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func setupLogger(p *profile.Profile) {
	level := slog.LevelInfo
	if p.IsDev() {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func init() {
	rootCmd.PersistentFlags().String("mode", "dev", `mode of server, can be "prod" or "dev"`)
	rootCmd.PersistentFlags().String("addr", "", "address of server")
	rootCmd.PersistentFlags().Int("port", 8081, "port of server")
	rootCmd.PersistentFlags().String("timezone", timezone.TimezoneAsiaTaipei, "IANA timezone for basetime interpretation")
	rootCmd.PersistentFlags().Bool("prefer-future", true, "resolve past-looking expressions to the next future occurrence")

	parseCmd.Flags().String("basetime", "", "RFC 3339 basetime, defaults to now")

	for _, flag := range []string{"mode", "addr", "port", "timezone", "prefer-future"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
	if err := viper.BindPFlag("basetime", parseCmd.Flags().Lookup("basetime")); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix("zhtime")
	viper.AutomaticEnv()

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(parseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
