package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/init0-hack8/postpulse/internal/queue"
	"github.com/init0-hack8/postpulse/internal/repository"
)

// AnalysisSweepJob re-enqueues analysis for posts whose result document
// never landed (dropped task, worker crash). Runs on a cron schedule.
type AnalysisSweepJob struct {
	pr     repository.PostRepository
	ar     repository.AnalysisRepository
	client *asynq.Client
}

func NewAnalysisSweepJob(
	pr repository.PostRepository,
	ar repository.AnalysisRepository,
	client *asynq.Client) *AnalysisSweepJob {
	return &AnalysisSweepJob{
		pr:     pr,
		ar:     ar,
		client: client,
	}
}

func (j *AnalysisSweepJob) Sweep() {
	ctx := context.Background()

	// Only look at posts old enough that the create-time task should have
	// completed already.
	cutoff := time.Now().Add(-5 * time.Minute)

	posts, err := j.pr.ListCreatedBefore(ctx, cutoff, 100)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	for _, post := range posts {
		exists, err := j.ar.ExistsForPost(ctx, post.ID)
		if err != nil {
			slog.Info(err.Error())
			continue
		}
		if exists {
			continue
		}

		if err := queue.EnqueueAnalysis(j.client, queue.AnalyzePostPayload{PostID: post.ID}); err != nil {
			slog.Info("Unable to re-enqueue analysis", "post_id", post.ID, "error", err.Error())
		}
	}
}
