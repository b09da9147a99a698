package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

// UpsertRelations stores relations; duplicates of (a, b, kind, value) collapse.
func (r *Repository) UpsertRelations(ctx context.Context, relations []model.Relation) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_relations", err, start)
	}()

	if len(relations) == 0 {
		return nil
	}

	const query = `
INSERT INTO address_relations (
	address_a,
	address_b,
	kind,
	value,
	created_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare relations batch: %w", err)
	}

	now := r.now()
	for _, rel := range relations {
		createdAt := rel.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		if err = batch.Append(rel.AddressA, rel.AddressB, string(rel.Kind), rel.Value, createdAt.UTC()); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append relation: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert relations: %w", err)
	}
	return nil
}

// RelationsByAddress returns every readable relation that has address on
// either side.
func (r *Repository) RelationsByAddress(ctx context.Context, address string) (out []model.Relation, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("relations_by_address", err, start)
	}()

	const query = `
SELECT address_a, address_b, kind, value, created_at
FROM address_relations FINAL
WHERE address_a = ? OR address_b = ?
ORDER BY kind, value, address_a, address_b`

	rows, err := r.conn.Query(ctx, query, address, address)
	if err != nil {
		return nil, fmt.Errorf("query relations: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			rel  model.Relation
			kind string
		)
		if scanErr := rows.Scan(&rel.AddressA, &rel.AddressB, &kind, &rel.Value, &rel.CreatedAt); scanErr != nil {
			r.skipRow("relation", address, scanErr)
			continue
		}
		rel.Kind = model.RelationKind(kind)
		rel.CreatedAt = rel.CreatedAt.UTC()
		out = append(out, rel)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate relations: %w", err)
	}
	return out, nil
}
