package risk

import (
	"slices"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

const day = 24 * time.Hour

// ReportBucket scores report counts of at least MinReports.
type ReportBucket struct {
	MinReports int
	Score      float64
}

// ActivityBand scores a last activity no older than Within.
type ActivityBand struct {
	Within time.Duration
	Level  model.ActivityLevel
	Score  float64
}

// BandThreshold maps totals up to Max to Band.
type BandThreshold struct {
	Max  float64
	Band model.RiskBand
}

// Policy holds every constant risk scoring depends on.
type Policy struct {
	// CategoryWeights is keyed by normalized category; unknown categories weigh 0.
	CategoryWeights map[string]float64
	// ReportBuckets are sorted by MinReports.
	ReportBuckets []ReportBucket
	// ActivityBands are sorted by Within.
	ActivityBands []ActivityBand
	Stale         ActivityBand
	NoActivity    ActivityBand
	// Bands are sorted by Max; totals above the last one get Top.
	Bands []BandThreshold
	Top   model.RiskBand
}

func DefaultPolicy() Policy {
	return Policy{
		CategoryWeights: map[string]float64{
			"RANSOMWARE":   3,
			"FAKE_RETURNS": 2,
			"SCAM":         2,
			"PHISHING":     1,
			"OTHER":        0.5,
		},
		ReportBuckets: []ReportBucket{
			{MinReports: 0, Score: 0},
			{MinReports: 1, Score: 1},
			{MinReports: 2, Score: 2},
			{MinReports: 4, Score: 3},
		},
		ActivityBands: []ActivityBand{
			{Within: 90 * day, Level: model.ActivityRecent, Score: 3},
			{Within: 365 * day, Level: model.ActivityMedium, Score: 2},
		},
		Stale:      ActivityBand{Level: model.ActivityInactive, Score: 1},
		NoActivity: ActivityBand{Level: model.ActivityNone, Score: 0},
		Bands: []BandThreshold{
			{Max: 2, Band: model.RiskLow},
			{Max: 4, Band: model.RiskMedium},
			{Max: 6, Band: model.RiskHigh},
		},
		Top: model.RiskCritical,
	}
}

// Score combines report volume, worst category and activity recency.
// A zero lastActivity means the address has no transactions.
func (p Policy) Score(reportCount int, categories []string, lastActivity, now time.Time) model.RiskFactors {
	normalized := normalizeCategories(categories)
	activity := p.activity(lastActivity, now)

	f := model.RiskFactors{
		ReportCount:   reportCount,
		ReportScore:   p.reportScore(reportCount),
		Categories:    normalized,
		CategoryScore: p.categoryScore(normalized),
		Activity:      activity.Level,
		ActivityScore: activity.Score,
	}
	if !lastActivity.IsZero() {
		f.LastActivity = lastActivity.UTC()
	}
	f.Total = f.ReportScore + f.CategoryScore + f.ActivityScore
	f.Band = p.Band(f.Total)
	return f
}

// ClusterBand classifies a cluster from the reports of all its members.
func (p Policy) ClusterBand(reportCount int, categories []string) model.RiskBand {
	return p.Band(p.reportScore(reportCount) + p.categoryScore(normalizeCategories(categories)))
}

func (p Policy) Band(total float64) model.RiskBand {
	for _, t := range p.Bands {
		if total <= t.Max {
			return t.Band
		}
	}
	return p.Top
}

func (p Policy) reportScore(count int) float64 {
	var score float64
	for _, b := range p.ReportBuckets {
		if count >= b.MinReports {
			score = b.Score
		}
	}
	return score
}

func (p Policy) categoryScore(categories []string) float64 {
	var worst float64
	for _, c := range categories {
		worst = max(worst, p.CategoryWeights[c])
	}
	return worst
}

func (p Policy) activity(last, now time.Time) ActivityBand {
	if last.IsZero() {
		return p.NoActivity
	}
	age := now.UTC().Sub(last.UTC())
	for _, b := range p.ActivityBands {
		if age <= b.Within {
			return b
		}
	}
	return p.Stale
}

func normalizeCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if n := model.NormalizeCategory(c); n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
