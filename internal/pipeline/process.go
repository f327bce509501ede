package pipeline

import (
	"github.com/google/uuid"

	"gramdiff/internal"
	"gramdiff/internal/config"
	"gramdiff/internal/markup"
	"gramdiff/internal/storage"
)

// ProcessingService runs the full analysis over one batch of export files
// and records the outcome as a run in storage.
type ProcessingService struct {
	db  *storage.DB
	cfg config.Config
	agg *Aggregator
}

func NewProcessingService(db *storage.DB, cfg config.Config) *ProcessingService {
	return &ProcessingService{db: db, cfg: cfg, agg: NewAggregator(markup.Anchors)}
}

func (s *ProcessingService) Aggregator() *Aggregator {
	return s.agg
}

type AnalyzeResult struct {
	RunID            int
	TraceID          string
	Followers        internal.CategoryResult
	Following        internal.CategoryResult
	NotFollowingBack []string
}

// Analyze aggregates both categories and derives "following minus
// followers". A category that loads empty is a hard failure for the diff:
// the diff is only computed when both categories produced usernames. The
// run is recorded either way so failed loads show up in history.
func (s *ProcessingService) Analyze(followers, following []internal.FileRecord) (AnalyzeResult, error) {
	out := AnalyzeResult{
		TraceID:   uuid.NewString(),
		Followers: s.agg.Load(followers, internal.CategoryFollowers),
		Following: s.agg.Load(following, internal.CategoryFollowing),
	}

	if !out.Followers.Failed && !out.Following.Failed {
		out.NotFollowingBack = Diff(out.Following.Usernames, out.Followers.Usernames)
	}

	if s.db != nil {
		warnings := append([]string{}, out.Followers.Warnings...)
		warnings = append(warnings, out.Following.Warnings...)
		runID, err := s.db.InsertRun(out.TraceID, out.Followers.Usernames, out.Following.Usernames, out.NotFollowingBack, warnings)
		if err != nil {
			return out, err
		}
		out.RunID = runID
	}

	return out, nil
}
