// The monitor binary is a terminal dashboard client: it bootstraps from
// the bulk endpoint, keeps a 1s poll running as a backstop, listens on the
// live feed, and periodically prints the aggregate report computed from
// its reconciled view model.
package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"envmonitor/internal/client"
	"envmonitor/internal/logger"
	"envmonitor/internal/models"
	"envmonitor/internal/service"
	"envmonitor/internal/viewmodel"

	"github.com/spf13/viper"
)

const (
	defaultServerURL  = "http://localhost:8080"
	defaultPoll       = 1 * time.Second
	defaultReportTick = 5 * time.Second
)

func main() {
	loadConfig()
	log := logger.Get(viper.GetString("log.level"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	vm := viewmodel.New()
	cl := client.New(viper.GetString("server.url"), vm, log)

	if err := cl.Bootstrap(ctx); err != nil {
		// keep going: the poller and stream will fill the model once the
		// server is reachable
		log.Warnw("bootstrap failed", "err", err)
	}
	go cl.RunPoller(ctx, viper.GetDuration("poll.interval"))
	go cl.RunStream(ctx)

	stats := service.NewStatsService(time.UTC)
	window := models.WindowSpec{Kind: models.WindowToday}

	t := time.NewTicker(defaultReportTick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Infow("monitor stopped")
			return
		case <-t.C:
			printReport(log, stats.Compute(vm.Snapshot(), window), vm.LightLevel())
		}
	}
}

func loadConfig() {
	viper.SetDefault("server.url", defaultServerURL)
	viper.SetDefault("poll.interval", defaultPoll)
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetEnvPrefix("monitor")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func printReport(log *logger.Logger, report models.AggregateReport, lightLevel float64) {
	if !report.HasData {
		log.Infow("no data in window", "window", report.Window)
		return
	}
	log.Infow("report",
		"window", report.Window,
		"samples", report.Count,
		"temp_avg", report.Temperature.Average,
		"temp_min", report.Temperature.Min,
		"temp_max", report.Temperature.Max,
		"temp_stddev", report.Temperature.StdDev,
		"humidity_avg", report.Humidity.Average,
		"light_avg", report.LightIntensity.Average,
		"light_level", lightLevel,
	)
}
