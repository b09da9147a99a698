package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/google/uuid"
)

// AlertExists reports whether an alert was already raised for (address, band).
func (r *Repository) AlertExists(ctx context.Context, address string, band model.RiskBand) (_ bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("alert_exists", err, start)
	}()

	const query = `
SELECT count()
FROM risk_alerts FINAL
WHERE address = ? AND band = ?`

	rows, err := r.conn.Query(ctx, query, address, string(band))
	if err != nil {
		return false, fmt.Errorf("query alerts: %w", err)
	}
	defer closeRows(rows, &err)

	var count uint64
	if !rows.Next() {
		return false, fmt.Errorf("alert count not returned")
	}
	if err = rows.Scan(&count); err != nil {
		return false, fmt.Errorf("scan alert count: %w", err)
	}
	if err = rows.Err(); err != nil {
		return false, fmt.Errorf("iterate alerts: %w", err)
	}
	return count > 0, nil
}

// InsertAlert stores an alert; rows sharing (address, band) collapse into one.
func (r *Repository) InsertAlert(ctx context.Context, a model.Alert) (_ model.Alert, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_alert", err, start)
	}()

	if a.ID == uuid.Nil {
		a.ID = r.newID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.now()
	}

	const query = `
INSERT INTO risk_alerts (
	address,
	band,
	id,
	total,
	created_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return model.Alert{}, fmt.Errorf("prepare alerts batch: %w", err)
	}
	if err = batch.Append(a.Address, string(a.Band), a.ID, a.Total, a.CreatedAt); err != nil {
		_ = batch.Abort()
		return model.Alert{}, fmt.Errorf("append alert: %w", err)
	}
	if err = batch.Send(); err != nil {
		return model.Alert{}, fmt.Errorf("insert alert: %w", err)
	}
	return a, nil
}
