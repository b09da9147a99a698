package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/google/uuid"
)

// GetRiskProfile returns the current risk snapshot of address or model.ErrNotFound.
func (r *Repository) GetRiskProfile(ctx context.Context, address string) (_ model.RiskProfile, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_risk_profile", err, start)
	}()

	const query = `
SELECT address, band, total, factors, updated_at
FROM address_risk_profiles FINAL
WHERE address = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, address)
	if err != nil {
		return model.RiskProfile{}, fmt.Errorf("query risk profile: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.RiskProfile{}, fmt.Errorf("iterate risk profile: %w", err)
		}
		return model.RiskProfile{}, fmt.Errorf("risk profile of %s: %w", address, model.ErrNotFound)
	}

	var (
		p             model.RiskProfile
		band, factors string
	)
	if err = rows.Scan(&p.Address, &band, &p.Total, &factors, &p.UpdatedAt); err != nil {
		return model.RiskProfile{}, fmt.Errorf("scan risk profile: %w", err)
	}
	p.Band = model.RiskBand(band)
	p.UpdatedAt = p.UpdatedAt.UTC()
	if err = json.Unmarshal([]byte(factors), &p.Factors); err != nil {
		return model.RiskProfile{}, &model.ValidationError{Entity: "risk profile", Key: address, Err: err}
	}
	if !p.Band.Valid() {
		return model.RiskProfile{}, &model.ValidationError{Entity: "risk profile", Key: address, Err: fmt.Errorf("unknown band %q", band)}
	}

	return p, nil
}

// UpsertRiskProfile replaces the risk snapshot of an address.
func (r *Repository) UpsertRiskProfile(ctx context.Context, p model.RiskProfile) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_risk_profile", err, start)
	}()

	factors, err := json.Marshal(p.Factors)
	if err != nil {
		return fmt.Errorf("encode risk factors: %w", err)
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = r.now()
	}

	const query = `
INSERT INTO address_risk_profiles (
	address,
	band,
	total,
	factors,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare risk profiles batch: %w", err)
	}
	if err = batch.Append(p.Address, string(p.Band), p.Total, string(factors), p.UpdatedAt); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append risk profile: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert risk profile: %w", err)
	}
	return nil
}

// InsertRiskAnalyses appends entries to the risk analysis log.
func (r *Repository) InsertRiskAnalyses(ctx context.Context, analyses []model.RiskAnalysis) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_risk_analyses", err, start)
	}()

	if len(analyses) == 0 {
		return nil
	}

	const query = `
INSERT INTO risk_analyses (
	id,
	address,
	band,
	total,
	factors,
	analyzed_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare risk analyses batch: %w", err)
	}

	for _, a := range analyses {
		var factors []byte
		if factors, err = json.Marshal(a.Factors); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("encode risk factors: %w", err)
		}
		id := a.ID
		if id == uuid.Nil {
			id = r.newID()
		}
		if err = batch.Append(id, a.Address, string(a.Factors.Band), a.Factors.Total, string(factors), a.AnalyzedAt.UTC()); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append risk analysis: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert risk analyses: %w", err)
	}
	return nil
}
