package analysislog

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		InsertRiskAnalyses(ctx context.Context, analyses []model.RiskAnalysis) error
	}
)
