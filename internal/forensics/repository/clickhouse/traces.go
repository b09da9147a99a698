package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/pkg/safe"
	"github.com/google/uuid"
)

const traceColumns = `
	id,
	seed,
	direction,
	window_days,
	max_depth,
	connections,
	total,
	created_at`

// TraceResult returns the latest cached trace for key or model.ErrNotFound.
// Origin traces are cached per seed regardless of depth.
func (r *Repository) TraceResult(ctx context.Context, key model.TraceKey) (_ model.TraceResult, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("trace_result", err, start)
	}()

	query := `
SELECT` + traceColumns + `
FROM trace_results
WHERE seed = ? AND direction = ?`
	args := []any{key.Seed, string(key.Direction)}
	if key.Direction == model.DirectionDestination {
		query += ` AND window_days = ? AND max_depth = ?`
		args = append(args, uint32(key.WindowDays), uint32(key.MaxDepth))
	}
	query += `
ORDER BY created_at DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return model.TraceResult{}, fmt.Errorf("query trace result: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.TraceResult{}, fmt.Errorf("iterate trace results: %w", err)
		}
		return model.TraceResult{}, fmt.Errorf("trace of %s: %w", key.Seed, model.ErrNotFound)
	}

	var (
		res                         model.TraceResult
		direction, connections      string
		windowDays, maxDepth, total uint32
	)
	if err = rows.Scan(&res.ID, &res.Seed, &direction, &windowDays, &maxDepth, &connections, &total, &res.CreatedAt); err != nil {
		return model.TraceResult{}, fmt.Errorf("scan trace result: %w", err)
	}
	res.Direction = model.Direction(direction)
	res.WindowDays = int(windowDays)
	res.MaxDepth = int(maxDepth)
	res.Total = int(total)
	res.CreatedAt = res.CreatedAt.UTC()
	if err = json.Unmarshal([]byte(connections), &res.Connections); err != nil {
		return model.TraceResult{}, &model.ValidationError{Entity: "trace result", Key: res.ID.String(), Err: err}
	}

	return res, nil
}

// InsertTraceResult appends an immutable trace run.
func (r *Repository) InsertTraceResult(ctx context.Context, res model.TraceResult) (_ model.TraceResult, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_trace_result", err, start)
	}()

	if res.ID == uuid.Nil {
		res.ID = r.newID()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = r.now()
	}
	if res.Connections == nil {
		res.Connections = []model.Connection{}
	}

	encoded, err := json.Marshal(res.Connections)
	if err != nil {
		return model.TraceResult{}, fmt.Errorf("encode connections: %w", err)
	}
	windowDays, err := safe.Uint32(res.WindowDays)
	if err != nil {
		return model.TraceResult{}, fmt.Errorf("convert window days: %w", err)
	}
	maxDepth, err := safe.Uint32(res.MaxDepth)
	if err != nil {
		return model.TraceResult{}, fmt.Errorf("convert max depth: %w", err)
	}
	total, err := safe.Uint32(res.Total)
	if err != nil {
		return model.TraceResult{}, fmt.Errorf("convert total: %w", err)
	}

	const query = `
INSERT INTO trace_results (` + traceColumns + `
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return model.TraceResult{}, fmt.Errorf("prepare trace results batch: %w", err)
	}
	if err = batch.Append(
		res.ID,
		res.Seed,
		string(res.Direction),
		windowDays,
		maxDepth,
		string(encoded),
		total,
		res.CreatedAt,
	); err != nil {
		_ = batch.Abort()
		return model.TraceResult{}, fmt.Errorf("append trace result: %w", err)
	}
	if err = batch.Send(); err != nil {
		return model.TraceResult{}, fmt.Errorf("insert trace result: %w", err)
	}
	return res, nil
}
