package solve

import (
	"log"
	"sync"
	"time"

	"github.com/tonniewhood/stegostrips/internal/dao"
	"github.com/tonniewhood/stegostrips/pkg/plangen"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Worker interface {
	StartWork()
	Result() interface{}
	Done() bool
	Error() error
}

type WorkerFactory struct {
	Service  *Service
	PlanRepo dao.PlanRepository
}

func NewWorkerFactory(service *Service, planRepo dao.PlanRepository) *WorkerFactory {
	return &WorkerFactory{
		Service:  service,
		PlanRepo: planRepo,
	}
}

func (f *WorkerFactory) CreateFENWorker(fen string) *SolveWorker {
	return &SolveWorker{
		service:  f.Service,
		planRepo: f.PlanRepo,
		fen:      fen,
	}
}

func (f *WorkerFactory) CreatePredefinedWorker(selector string) *SolveWorker {
	return &SolveWorker{
		service:  f.Service,
		planRepo: f.PlanRepo,
		selector: selector,
	}
}

// SolveWorker runs one compile-and-invoke sequence in the background
// and archives the outcome when a repository is wired.
type SolveWorker struct {
	mu      sync.Mutex
	outcome plangen.Outcome
	err     error
	done    bool

	service  *Service
	planRepo dao.PlanRepository
	fen      string
	selector string
}

func (w *SolveWorker) Done() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.done
}

func (w *SolveWorker) Result() interface{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.outcome
}

func (w *SolveWorker) Error() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *SolveWorker) StartWork() {
	go w.Solve()
}

func (w *SolveWorker) Solve() {
	var (
		outcome plangen.Outcome
		err     error
	)
	fen := w.fen
	endgame := ""
	if w.selector != "" {
		var entry plangen.CatalogEntry
		entry, outcome, err = w.service.SolvePredefined(w.selector)
		fen = entry.FEN
		endgame = entry.Name
	} else {
		outcome, err = w.service.SolveFEN(w.fen)
	}
	if err != nil {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.err = err
		w.done = true
		return
	}

	if w.planRepo != nil {
		rec := dao.SolveRecord{
			FEN:         fen,
			Endgame:     endgame,
			Succeeded:   outcome.Succeeded,
			Plan:        outcome.Plan,
			Diagnostics: outcome.Diagnostics,
			SolvedAt:    primitive.NewDateTimeFromTime(time.Now()),
		}
		if err := w.planRepo.InsertRecord(rec); err != nil {
			log.Println("error saving solve record:", err.Error())
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.outcome = outcome
	w.done = true
}
