package model

import (
	"time"

	"github.com/google/uuid"
)

// RiskBand is the ordinal output of risk scoring.
type RiskBand string

const (
	RiskLow      RiskBand = "bajo"
	RiskMedium   RiskBand = "medio"
	RiskHigh     RiskBand = "alto"
	RiskCritical RiskBand = "crítico"
)

// Alerting reports whether the band must raise an alert.
func (b RiskBand) Alerting() bool {
	return b == RiskHigh || b == RiskCritical
}

// Valid reports whether b is a known band.
func (b RiskBand) Valid() bool {
	switch b {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// ActivityLevel buckets the recency of an address's last transaction.
type ActivityLevel string

const (
	ActivityRecent   ActivityLevel = "reciente"
	ActivityMedium   ActivityLevel = "media"
	ActivityInactive ActivityLevel = "inactiva"
	ActivityNone     ActivityLevel = "sin transacciones"
)

// RiskFactors is the breakdown of one risk score.
type RiskFactors struct {
	ReportCount   int           `json:"report_count"`
	ReportScore   float64       `json:"report_score"`
	Categories    []string      `json:"categories"`
	CategoryScore float64       `json:"category_score"`
	Activity      ActivityLevel `json:"activity"`
	ActivityScore float64       `json:"activity_score"`
	LastActivity  time.Time     `json:"last_activity"`
	Total         float64       `json:"total"`
	Band          RiskBand      `json:"band"`
}

// RiskAnalysis is one immutable entry of the risk analysis log.
type RiskAnalysis struct {
	ID         uuid.UUID
	Address    string
	Factors    RiskFactors
	AnalyzedAt time.Time
}

// Alert is raised once per (address, band).
type Alert struct {
	ID        uuid.UUID `json:"id"`
	Address   string    `json:"address"`
	Band      RiskBand  `json:"band"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
