package matching

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samtech361/Jobupdates-cs-project/internal/types"
)

func TestScoreAll_PreservesOrder(t *testing.T) {
	engine := New(nil)
	jobs := []types.JobPosting{
		{Description: "Python developer, 5 years of experience"},
		{Description: "Office manager, no tech required"},
		{Description: "React frontend role"},
	}
	resume := "Python and React engineer with 6 years of experience."

	results, err := engine.ScoreAll(context.Background(), jobs, resume)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 100, results[0].Details.Skills)
	assert.Equal(t, 0, results[1].Details.Skills)
	assert.Equal(t, 100, results[2].Details.Skills)
}

func TestScoreAll_ManyJobs(t *testing.T) {
	engine := New(nil)
	jobs := make([]types.JobPosting, 50)
	for i := range jobs {
		jobs[i] = types.JobPosting{Description: fmt.Sprintf("Python role number %d", i)}
	}

	results, err := engine.ScoreAll(context.Background(), jobs, "Python developer")
	require.NoError(t, err)
	require.Len(t, results, 50)
	for i, result := range results {
		assert.Equal(t, 100, result.Details.Skills, "job %d", i)
	}
}

func TestScoreAll_Empty(t *testing.T) {
	engine := New(nil)

	results, err := engine.ScoreAll(context.Background(), nil, "resume")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestScoreAll_CanceledContext(t *testing.T) {
	engine := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []types.JobPosting{{Description: "Python developer"}}
	_, err := engine.ScoreAll(ctx, jobs, "resume")
	assert.ErrorIs(t, err, context.Canceled)
}
