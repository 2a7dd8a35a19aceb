package worker

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/recipe-share/internal/metrics"
	"github.com/recipe-share/internal/models"
	"github.com/recipe-share/internal/repository"
	dbtest "github.com/recipe-share/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsWorkerRefresh(t *testing.T) {
	db := dbtest.NewTestDB(t)
	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	user := &models.User{Username: "alice", PasswordHash: "x"}
	require.NoError(t, userRepo.Create(user))
	for _, title := range []string{"Soup", "Bread"} {
		require.NoError(t, recipeRepo.Create(&models.Recipe{
			Title: title, Ingredients: "i", Instructions: "s", ChefName: "c", Cuisine: "k", UserID: user.ID,
		}))
	}

	w := NewStatsWorker(userRepo, recipeRepo, time.Minute)
	w.refresh()

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.StoredUsers))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.StoredRecipes))
}

func TestStatsWorkerStops(t *testing.T) {
	db := dbtest.NewTestDB(t)
	w := NewStatsWorker(repository.NewUserRepository(db), repository.NewRecipeRepository(db), 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		w.Start()
		close(done)
	}()
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestNewStatsWorkerDefaultInterval(t *testing.T) {
	w := NewStatsWorker(nil, nil, 0)
	assert.Equal(t, 30*time.Second, w.interval)
}
