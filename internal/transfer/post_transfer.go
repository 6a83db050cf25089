package transfer

// Submission states reported back to the dashboard. A submission moves
// idle -> uploading -> persisting and terminates in succeeded or failed;
// a failed submission leaves the draft intact client-side for retry.
const (
	StateIdle       = "idle"
	StateUploading  = "uploading"
	StatePersisting = "persisting"
	StateSucceeded  = "succeeded"
	StateFailed     = "failed"
)

type SubmissionResult struct {
	PostID    string   `json:"post_id"`
	State     string   `json:"state"`
	MediaURLs []string `json:"media_urls"`
	Uploaded  int      `json:"uploaded"`
	Failed    int      `json:"failed"`
	Warning   string   `json:"warning,omitempty"`
}

type ChartPoint struct {
	Sentiment string  `json:"sentiment"`
	Value     float64 `json:"value"`
}

type MetricPoint struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}
