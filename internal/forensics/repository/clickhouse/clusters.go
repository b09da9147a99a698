package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/google/uuid"
)

const clusterColumns = `
	id,
	base_address,
	members,
	label,
	wallet_id,
	algorithm,
	risk_type,
	description,
	updated_to_block,
	created_at`

// InsertCluster appends a detection snapshot.
func (r *Repository) InsertCluster(ctx context.Context, c model.Cluster) (_ model.Cluster, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_cluster", err, start)
	}()

	if c.ID == uuid.Nil {
		c.ID = r.newID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.now()
	}

	const query = `
INSERT INTO graph_clusters (` + clusterColumns + `
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return model.Cluster{}, fmt.Errorf("prepare clusters batch: %w", err)
	}
	if err = batch.Append(
		c.ID,
		c.BaseAddress,
		nonNilStrings(c.Members),
		c.Label,
		c.WalletID,
		string(c.Algorithm),
		string(c.RiskType),
		c.Description,
		c.UpdatedToBlock,
		c.CreatedAt,
	); err != nil {
		_ = batch.Abort()
		return model.Cluster{}, fmt.Errorf("append cluster: %w", err)
	}
	if err = batch.Send(); err != nil {
		return model.Cluster{}, fmt.Errorf("insert cluster: %w", err)
	}
	return c, nil
}

// ClusterByMember returns the most recent snapshot of the given algorithm that
// contains address, or model.ErrNotFound.
func (r *Repository) ClusterByMember(ctx context.Context, address string, algorithm model.ClusterAlgorithm) (_ model.Cluster, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("cluster_by_member", err, start)
	}()

	query := `
SELECT` + clusterColumns + `
FROM graph_clusters
WHERE has(members, ?) AND algorithm = ?
ORDER BY created_at DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, address, string(algorithm))
	if err != nil {
		return model.Cluster{}, fmt.Errorf("query cluster by member: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Cluster{}, fmt.Errorf("iterate clusters: %w", err)
		}
		return model.Cluster{}, fmt.Errorf("cluster of %s: %w", address, model.ErrNotFound)
	}

	var c model.Cluster
	if c, err = scanCluster(rows); err != nil {
		return model.Cluster{}, err
	}
	return c, nil
}

// LabelledClusters returns the latest snapshot of every base address that
// carries a wallet id. Unreadable snapshots are logged and left out.
func (r *Repository) LabelledClusters(ctx context.Context) (out []model.Cluster, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("labelled_clusters", err, start)
	}()

	query := `
SELECT` + clusterColumns + `
FROM graph_clusters
WHERE wallet_id != ''
ORDER BY base_address, created_at DESC
LIMIT 1 BY base_address`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query labelled clusters: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		c, scanErr := scanCluster(rows)
		if scanErr != nil {
			r.skipRow("cluster", "", scanErr)
			continue
		}
		out = append(out, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clusters: %w", err)
	}
	return out, nil
}

func scanCluster(rows driver.Rows) (model.Cluster, error) {
	var (
		c                   model.Cluster
		algorithm, riskType string
	)
	if err := rows.Scan(
		&c.ID,
		&c.BaseAddress,
		&c.Members,
		&c.Label,
		&c.WalletID,
		&algorithm,
		&riskType,
		&c.Description,
		&c.UpdatedToBlock,
		&c.CreatedAt,
	); err != nil {
		return model.Cluster{}, fmt.Errorf("scan cluster: %w", err)
	}
	c.Algorithm = model.ClusterAlgorithm(algorithm)
	c.RiskType = model.RiskBand(riskType)
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}
