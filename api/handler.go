package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/schedulers"
	"cpu-scheduler-sim/internal/store"
)

type SchedulerHandler interface {
	FirstInFirstOut(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestTimeToCompletion(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	CreateRun(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	store  store.Store
	logger *slog.Logger
}

// NewSchedulerHandlerImpl wires the handlers. st may be nil, in which case the
// run endpoints answer 503.
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, st store.Store, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config: config,
		store:  st,
		logger: logger.With("component", "api"),
	}
}

func (s *SchedulerHandlerImpl) FirstInFirstOut(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstInFirstOut)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestTimeToCompletion(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestTimeToCompletion)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return respondError(ctx, fiber.StatusBadRequest, "invalid request format")
	}
	sims, err := schedulers.SimulateAll(ctx.UserContext(), s.options(request), request.Processes(), s.logger)
	if err != nil {
		return s.simulationError(ctx, err)
	}

	response := make(map[string]responses.ScheduleResponse, len(sims))
	for alg, sim := range sims {
		response[string(alg)] = schedulers.GenerateResponse(sim, request.Steps)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) CreateRun(ctx *fiber.Ctx) error {
	if s.store == nil {
		return respondError(ctx, fiber.StatusServiceUnavailable, "run storage is disabled")
	}
	var request requests.RunRequest
	if err := ctx.BodyParser(&request); err != nil {
		return respondError(ctx, fiber.StatusBadRequest, "invalid request format")
	}
	alg, err := schedulers.ParseAlgorithm(request.Algorithm)
	if err != nil {
		return respondError(ctx, fiber.StatusBadRequest, err.Error())
	}
	opts := s.options(request.ScheduleRequests)
	sim, err := schedulers.Simulate(ctx.UserContext(), alg, opts, request.Processes(), s.logger)
	if err != nil {
		return s.simulationError(ctx, err)
	}

	run := &store.Run{
		ID:        "run_" + uuid.NewString(),
		Algorithm: string(alg),
		Processes: sim.Processes,
		Result:    schedulers.GenerateResponse(sim, request.Steps),
		CreatedAt: time.Now().UTC(),
	}
	if alg == schedulers.RoundRobin {
		run.TimeQuantum = opts.TimeQuantum
	}
	if err := s.store.CreateRun(ctx.UserContext(), run); err != nil {
		s.logger.Error("create run", "error", err)
		return respondError(ctx, fiber.StatusInternalServerError, "can not store run")
	}
	s.logger.Info("run stored", "id", run.ID, "algorithm", run.Algorithm)
	return ctx.Status(fiber.StatusCreated).JSON(runResponse(run))
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	if s.store == nil {
		return respondError(ctx, fiber.StatusServiceUnavailable, "run storage is disabled")
	}
	run, err := s.store.GetRun(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		s.logger.Error("get run", "error", err)
		return respondError(ctx, fiber.StatusInternalServerError, "can not load run")
	}
	if run == nil {
		return respondError(ctx, fiber.StatusNotFound, "run not found")
	}
	return ctx.JSON(runResponse(run))
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	if s.store == nil {
		return respondError(ctx, fiber.StatusServiceUnavailable, "run storage is disabled")
	}
	runs, err := s.store.ListRuns(ctx.UserContext(), ctx.QueryInt("limit", 50))
	if err != nil {
		s.logger.Error("list runs", "error", err)
		return respondError(ctx, fiber.StatusInternalServerError, "can not list runs")
	}
	out := make([]responses.RunResponse, len(runs))
	for i, run := range runs {
		out[i] = runResponse(run)
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, alg schedulers.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return respondError(ctx, fiber.StatusBadRequest, "invalid request format")
	}
	sim, err := schedulers.Simulate(ctx.UserContext(), alg, s.options(request), request.Processes(), s.logger)
	if err != nil {
		return s.simulationError(ctx, err)
	}
	return ctx.JSON(schedulers.GenerateResponse(sim, request.Steps))
}

func (s *SchedulerHandlerImpl) options(request requests.ScheduleRequests) schedulers.Options {
	opts := s.config.Options()
	if request.TimeQuantum != nil {
		opts.TimeQuantum = *request.TimeQuantum
	}
	return opts
}

func (s *SchedulerHandlerImpl) simulationError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, core.ErrInvalidProcess),
		errors.Is(err, core.ErrDuplicateProcessID),
		errors.Is(err, schedulers.ErrInvalidTimeQuantum),
		errors.Is(err, schedulers.ErrUnknownAlgorithm):
		return respondError(ctx, fiber.StatusBadRequest, err.Error())
	}
	s.logger.Error("simulation failed", "error", err)
	return respondError(ctx, fiber.StatusInternalServerError, "can not process request")
}

func respondError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{"error": msg})
}

func runResponse(run *store.Run) responses.RunResponse {
	return responses.RunResponse{
		ID:        run.ID,
		CreatedAt: run.CreatedAt.Format(time.RFC3339),
		Jobs:      run.Processes,
		Result:    run.Result,
	}
}
