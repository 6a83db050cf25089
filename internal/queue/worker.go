package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
)

func (q *Queue) HandleAnalyzePostTask(ctx context.Context, task *asynq.Task) error {
	var payload AnalyzePostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return q.AnalyzePost(ctx, payload.PostID)
}

// AnalyzePost produces the analysis document for a stored post. Analyze is
// idempotent, so a redelivered task is harmless.
func (q *Queue) AnalyzePost(ctx context.Context, postID string) error {
	post, found, err := q.pr.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !found {
		// Post was never written or the id is stale; nothing to retry.
		log.Printf("Analysis task skipped, post %s not found", postID)
		return nil
	}

	if _, err := q.as.Analyze(ctx, post); err != nil {
		return fmt.Errorf("error analyzing post %s: %w", postID, err)
	}
	return nil
}
