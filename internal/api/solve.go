package api

import (
	"crypto/md5"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/tonniewhood/stegostrips/internal/dao"
	"github.com/tonniewhood/stegostrips/internal/solve"
	"github.com/tonniewhood/stegostrips/pkg/plangen"
)

type SolveApi struct {
	PlanRepository dao.PlanRepository
	WorkerFactory  *solve.WorkerFactory
	Catalog        *plangen.Catalog
	activeJobs     map[string]solve.Worker
	totalJobs      int
	mu             sync.RWMutex
}

func NewSolveApi(planRepo dao.PlanRepository, workerFactory *solve.WorkerFactory, catalog *plangen.Catalog) *SolveApi {
	return &SolveApi{
		PlanRepository: planRepo,
		WorkerFactory:  workerFactory,
		Catalog:        catalog,
		activeJobs:     make(map[string]solve.Worker, 0),
	}
}

func (s *SolveApi) Endgames(ctx *gin.Context) {
	entries := s.Catalog.Entries()
	listing := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		listing = append(listing, gin.H{
			"name":    e.Name,
			"ordinal": e.Ordinal,
			"fen":     e.FEN,
		})
	}
	ctx.JSON(http.StatusOK, listing)
}

func (s *SolveApi) SolveFEN(ctx *gin.Context) {
	fen := ctx.Query("fen")
	if fen == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "fen query parameter is required",
		})
		return
	}
	if !plangen.SupportedPosition(fen) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("unsupported position: %s", fen),
		})
		return
	}

	worker := s.WorkerFactory.CreateFENWorker(fen)
	s.startJob(ctx, worker)
}

func (s *SolveApi) SolvePredefined(ctx *gin.Context) {
	selector := ctx.Param("name")
	if _, err := s.Catalog.Resolve(selector); err != nil {
		if errors.Is(err, plangen.ErrUnknownEndgame) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	worker := s.WorkerFactory.CreatePredefinedWorker(selector)
	s.startJob(ctx, worker)
}

func (s *SolveApi) startJob(ctx *gin.Context, worker solve.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalJobs++
	byteValue := []byte(strconv.Itoa(s.totalJobs))
	id := fmt.Sprintf("%x", md5.Sum(byteValue))

	s.activeJobs[id] = worker
	worker.StartWork()
	ctx.JSON(http.StatusOK, gin.H{
		"job_id": id,
	})
}

func (s *SolveApi) GetJobStatus(ctx *gin.Context) {
	id := ctx.Param("job_id")
	s.mu.Lock()
	defer s.mu.Unlock()
	worker, ok := s.activeJobs[id]
	if !ok {
		ctx.AbortWithStatus(http.StatusNotFound)
		return
	}
	done := worker.Done()
	if done {
		delete(s.activeJobs, id)
		if worker.Error() != nil {
			ctx.JSON(http.StatusOK, gin.H{
				"done":  done,
				"error": worker.Error().Error(),
			})
		} else {
			ctx.JSON(http.StatusOK, gin.H{
				"done":   done,
				"result": worker.Result(),
			})
		}
	} else {
		ctx.JSON(http.StatusOK, gin.H{
			"done": done,
		})
	}
}

func (s *SolveApi) PlansForFEN(ctx *gin.Context) {
	fen := ctx.Query("fen")
	if fen == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "fen query parameter is required",
		})
		return
	}

	records, err := s.PlanRepository.GetRecordsForFEN(fen)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, records)
}

func (s *SolveApi) RecentPlans(ctx *gin.Context) {
	limitStr := ctx.DefaultQuery("limit", "20")
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "limit should be positive integer",
		})
		return
	}

	records, err := s.PlanRepository.GetRecentRecords(limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, records)
}
