package serializer

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/calc"
	"github.com/de-tools/dept-reports/pkg/services/schema"
)

// MaterializeActivities returns a copy of r with its summary recomputed from
// the activity rows. r itself is not modified.
func MaterializeActivities(r *schema.ClientActivities) *schema.ClientActivities {
	out := *r
	out.Activities = slices.Clone(r.Activities)
	out.NextSteps = slices.Clone(r.NextSteps)
	out.Files = slices.Clone(r.Files)

	completed := 0
	rated := make([]schema.ClientActivity, 0, len(r.Activities))
	for _, a := range r.Activities {
		if strings.EqualFold(strings.TrimSpace(a.Status), "completed") {
			completed++
		}
		if a.Rating > 0 {
			rated = append(rated, a)
		}
	}
	out.Summary = schema.ActivitySummary{
		TotalActivities: len(r.Activities),
		Completed:       completed,
		TotalHours:      calc.TotalHours(r.Activities, func(a schema.ClientActivity) string { return a.Duration }),
		AverageRating:   calc.AverageRating(rated, func(a schema.ClientActivity) float64 { return float64(a.Rating) }),
	}
	return &out
}

func marshalActivities(r *schema.ClientActivities) (string, error) {
	b, err := json.MarshalIndent(MaterializeActivities(r), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode client activities report: %w", err)
	}
	return string(b), nil
}

// ParseActivities decodes content produced by Serialize for a client
// activities report. Derived totals are recomputed rather than trusted.
func ParseActivities(content string) (*schema.ClientActivities, error) {
	var r schema.ClientActivities
	if err := json.Unmarshal([]byte(content), &r); err != nil {
		return nil, fmt.Errorf("failed to decode client activities report: %w", err)
	}
	if r.Activities == nil {
		r.Activities = []schema.ClientActivity{}
	}
	if r.NextSteps == nil {
		r.NextSteps = []string{}
	}
	if r.Files == nil {
		r.Files = []domain.Attachment{}
	}
	return MaterializeActivities(&r), nil
}
