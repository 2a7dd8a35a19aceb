package worker

import (
	"time"

	"github.com/recipe-share/internal/metrics"
	"github.com/recipe-share/internal/middleware"
	"github.com/recipe-share/internal/repository"
)

// StatsWorker periodically copies user and recipe totals into the
// stored_users and stored_recipes gauges
type StatsWorker struct {
	userRepo   *repository.UserRepository
	recipeRepo *repository.RecipeRepository
	interval   time.Duration
	stopChan   chan struct{}
}

// NewStatsWorker creates a new stats worker
func NewStatsWorker(
	userRepo *repository.UserRepository,
	recipeRepo *repository.RecipeRepository,
	interval time.Duration,
) *StatsWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &StatsWorker{
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		interval:   interval,
		stopChan:   make(chan struct{}),
	}
}

// Start refreshes the gauges once, then on every tick until Stop is called
func (w *StatsWorker) Start() {
	middleware.LogInfo("Stats worker started with interval: %v", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh()
	for {
		select {
		case <-ticker.C:
			w.refresh()
		case <-w.stopChan:
			middleware.LogInfo("Stats worker stopped")
			return
		}
	}
}

// Stop stops the refresh loop
func (w *StatsWorker) Stop() {
	close(w.stopChan)
}

func (w *StatsWorker) refresh() {
	users, err := w.userRepo.Count()
	if err != nil {
		middleware.LogWarn("Stats worker: count users: %v", err)
	} else {
		metrics.StoredUsers.Set(float64(users))
	}

	recipes, err := w.recipeRepo.Count()
	if err != nil {
		middleware.LogWarn("Stats worker: count recipes: %v", err)
		return
	}
	metrics.StoredRecipes.Set(float64(recipes))
}
