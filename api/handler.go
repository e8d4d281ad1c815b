package api

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/ristretto"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"os-simulator/config"
	"os-simulator/internal/requests"
	"os-simulator/internal/responses"
	"os-simulator/internal/schedulers"
	"os-simulator/internal/store"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error

	ListProcesses(ctx *fiber.Ctx) error
	AddProcess(ctx *fiber.Ctx) error
	UpdateProcess(ctx *fiber.Ctx) error
	RemoveProcess(ctx *fiber.Ctx) error
	MemoryBlocks(ctx *fiber.Ctx) error
	GetSelection(ctx *fiber.Ctx) error
	SetSelection(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	Results(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	store  *store.Store
	cache  *ristretto.Cache
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, store *store.Store, cache *ristretto.Cache) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, store: store, cache: cache}
}

// NewResultsCache creates the cache for stateless schedule responses.
// Responses are deterministic in their inputs, so they never go stale.
func NewResultsCache(maxCost int64) (*ristretto.Cache, error) {
	return ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
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

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, ok := parseRequest(ctx)
	if !ok {
		return badRequest(ctx)
	}
	all := make(map[string]responses.ScheduleResponse)
	for _, alg := range schedulers.Algorithms() {
		response, err := s.run(alg, request)
		if err != nil {
			return writeError(ctx, err)
		}
		all[string(alg)] = response
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, alg schedulers.Algorithm) error {
	request, ok := parseRequest(ctx)
	if !ok {
		return badRequest(ctx)
	}
	response, err := s.run(alg, request)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

// run answers from the cache when the same algorithm has already seen the
// same processes and options.
func (s *SchedulerHandlerImpl) run(alg schedulers.Algorithm, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	processes := request.Processes()
	options := s.options(request)
	key := fmt.Sprintf("%s|%v|%d|%v", alg, processes, options.TimeQuantum, options.LevelsTimeQuantum)

	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			logrus.Debugf("%s: cache hit for %d processes", alg, len(processes))
			return cached.(responses.ScheduleResponse), nil
		}
	}
	response, err := schedulers.Schedule(alg, processes, options)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	if s.cache != nil {
		s.cache.Set(key, response, int64(1+len(response.Details)+len(response.Gantt)))
	}
	return response, nil
}

// options starts from the configured defaults and applies request overrides.
func (s *SchedulerHandlerImpl) options(request *requests.ScheduleRequests) schedulers.Options {
	options := schedulers.DefaultOptions()
	if s.config != nil {
		options = s.config.Options()
	}
	if request.TimeQuantum != nil {
		options.TimeQuantum = *request.TimeQuantum
	}
	if len(request.Levels) > 0 {
		options.LevelsTimeQuantum = request.Levels
	}
	return options
}

func (s *SchedulerHandlerImpl) ListProcesses(ctx *fiber.Ctx) error {
	return ctx.JSON(s.store.Processes())
}

func (s *SchedulerHandlerImpl) AddProcess(ctx *fiber.Ctx) error {
	var process store.Process
	if err := ctx.BodyParser(&process); err != nil {
		return badRequest(ctx)
	}
	added, err := s.store.AddProcess(process)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(added)
}

func (s *SchedulerHandlerImpl) UpdateProcess(ctx *fiber.Ctx) error {
	var process store.Process
	if err := ctx.BodyParser(&process); err != nil {
		return badRequest(ctx)
	}
	process.ID = ctx.Params("id")
	updated, err := s.store.UpdateProcess(process)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(updated)
}

func (s *SchedulerHandlerImpl) RemoveProcess(ctx *fiber.Ctx) error {
	if err := s.store.RemoveProcess(ctx.Params("id")); err != nil {
		return writeError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *SchedulerHandlerImpl) MemoryBlocks(ctx *fiber.Ctx) error {
	return ctx.JSON(s.store.MemoryBlocks())
}

func (s *SchedulerHandlerImpl) GetSelection(ctx *fiber.Ctx) error {
	return ctx.JSON(s.store.Selection())
}

func (s *SchedulerHandlerImpl) SetSelection(ctx *fiber.Ctx) error {
	selection := s.store.Selection()
	if err := ctx.BodyParser(&selection); err != nil {
		return badRequest(ctx)
	}
	if err := s.store.SetSelection(selection); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(selection)
}

func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	response, err := s.store.Simulate()
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Results(ctx *fiber.Ctx) error {
	response, ok := s.store.Results()
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no simulation has run yet"})
	}
	return ctx.JSON(response)
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, bool) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		logrus.Debugf("invalid body on %s: %v", ctx.Path(), err)
		return nil, false
	}
	return request, true
}

func badRequest(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format",
	})
}

func writeError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, schedulers.ErrInvalidInput), errors.Is(err, schedulers.ErrUnknownAlgorithm):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, store.ErrProcessNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, store.ErrDuplicateProcess), errors.Is(err, store.ErrNoProcesses):
		status = fiber.StatusConflict
	case errors.Is(err, store.ErrNoMemory):
		status = fiber.StatusInsufficientStorage
	}
	logrus.WithField("path", ctx.Path()).Warnf("request failed: %v", err)
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
