package api

import (
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/util"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	log    *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, log *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, log: log}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

// AllAlgorithms runs every algorithm over the same jobs. The runs share no
// state, so they execute concurrently.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	processes, quantum, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}

	algorithms := schedulers.Algorithms()
	results := make([]responses.ScheduleResponse, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, algorithm := range algorithms {
		go func(i int, algorithm schedulers.Algorithm) {
			defer wg.Done()
			results[i], errs[i] = schedulers.Simulate(algorithm, processes, quantum)
		}(i, algorithm)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			s.log.Error("simulation failed", slog.String("algorithm", algorithms[i].String()), util.ErrAttr(err))
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
		}
	}

	s.log.Info("simulated all algorithms", slog.Int("processes", len(processes)))
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	algorithms := schedulers.Algorithms()
	names := make([]string, len(algorithms))
	for i, algorithm := range algorithms {
		names[i] = algorithm.String()
	}
	return ctx.JSON(fiber.Map{"algorithms": names})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	processes, quantum, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}

	response, err := schedulers.Simulate(algorithm, processes, quantum)
	if err != nil {
		s.log.Error("simulation failed", slog.String("algorithm", algorithm.String()), util.ErrAttr(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}

	s.log.Info("simulation complete",
		slog.String("algorithm", algorithm.String()),
		slog.Int("processes", len(processes)),
		slog.Int("segments", len(response.Timeline)),
	)
	return ctx.JSON(response)
}

// parseRequest decodes and validates the body. When it returns false the
// error response has already been written.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) ([]core.Process, int, bool) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		s.log.Warn("invalid request format", util.ErrAttr(err))
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
		return nil, 0, false
	}

	processes, err := request.Processes()
	if err != nil {
		s.log.Warn("invalid jobs", util.ErrAttr(err))
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
		return nil, 0, false
	}

	quantum := request.TimeQuantum
	if quantum <= 0 {
		quantum = s.config.RoundRobinTimeQuantum
	}
	return processes, quantum, true
}
