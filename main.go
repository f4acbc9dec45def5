package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/util"
	"cpu-scheduler/pkg/client"
)

var ErrInvalidArgs = errors.New("invalid args")

const usage = `usage:
  cpu-scheduler [serve]
  cpu-scheduler simulate <algorithm|all> <file.csv> [quantum]
  cpu-scheduler remote <base-url> <algorithm> <file.csv> [quantum]`

func main() {
	cfg := config.GetSchedulerConfig()
	logger := util.BuildLogger(cfg.LogLevel)

	if err := run(os.Args[1:], cfg, logger, os.Stdout); err != nil {
		if errors.Is(err, ErrInvalidArgs) {
			fmt.Fprintln(os.Stderr, usage)
		}
		log.Fatalln(err)
	}
}

func run(args []string, cfg *config.SchedulerConfig, logger *slog.Logger, out io.Writer) error {
	if len(args) == 0 {
		args = []string{"serve"}
	}

	switch args[0] {
	case "serve":
		app := api.NewApp(cfg, logger)
		logger.Info("starting scheduler api", slog.Int("port", cfg.Port))
		return app.Listen(fmt.Sprintf(":%d", cfg.Port))
	case "simulate":
		if len(args) < 3 || len(args) > 4 {
			return fmt.Errorf("%w: simulate takes an algorithm, a file and an optional quantum", ErrInvalidArgs)
		}
		return simulate(args[1], args[2], args[3:], cfg, logger, out)
	case "remote":
		if len(args) < 4 || len(args) > 5 {
			return fmt.Errorf("%w: remote takes a url, an algorithm, a file and an optional quantum", ErrInvalidArgs)
		}
		return remote(args[1], args[2], args[3], args[4:], cfg, logger, out)
	}
	return fmt.Errorf("%w: unknown command %q", ErrInvalidArgs, args[0])
}

func simulate(name, path string, extra []string, cfg *config.SchedulerConfig, logger *slog.Logger, out io.Writer) error {
	algorithms, err := selectAlgorithms(name)
	if err != nil {
		return err
	}
	request, err := loadRequest(path, extra, cfg)
	if err != nil {
		return err
	}
	processes, err := request.Processes()
	if err != nil {
		return err
	}

	for _, algorithm := range algorithms {
		response, err := schedulers.Simulate(algorithm, processes, request.TimeQuantum)
		if err != nil {
			return err
		}
		logger.Info("simulation complete",
			slog.String("algorithm", algorithm.String()),
			slog.Int("processes", len(processes)),
			slog.Int("segments", len(response.Timeline)),
		)
		report.Render(out, response)
	}
	return nil
}

func remote(baseURL, name, path string, extra []string, cfg *config.SchedulerConfig, logger *slog.Logger, out io.Writer) error {
	algorithms, err := selectAlgorithms(name)
	if err != nil {
		return err
	}
	request, err := loadRequest(path, extra, cfg)
	if err != nil {
		return err
	}

	c := client.NewClient(baseURL, logger)
	for _, algorithm := range algorithms {
		response, err := c.Schedule(context.Background(), algorithm, request)
		if err != nil {
			return err
		}
		report.Render(out, response)
	}
	return nil
}

func selectAlgorithms(name string) ([]schedulers.Algorithm, error) {
	if name == "all" {
		return schedulers.Algorithms(), nil
	}
	algorithm, err := schedulers.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []schedulers.Algorithm{algorithm}, nil
}

func loadRequest(path string, extra []string, cfg *config.SchedulerConfig) (requests.ScheduleRequests, error) {
	request := requests.ScheduleRequests{TimeQuantum: cfg.RoundRobinTimeQuantum}
	if len(extra) == 1 {
		quantum, err := strconv.Atoi(extra[0])
		if err != nil || quantum <= 0 {
			return request, fmt.Errorf("%w: quantum must be a positive integer, got %q", ErrInvalidArgs, extra[0])
		}
		request.TimeQuantum = quantum
	}

	f, err := os.Open(path)
	if err != nil {
		return request, fmt.Errorf("opening scheduling file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	request.Jobs, err = requests.LoadJobs(f)
	if err != nil {
		return request, err
	}
	return request, nil
}
