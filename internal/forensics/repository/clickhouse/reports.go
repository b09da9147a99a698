package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

const reportColumns = `
	address,
	id,
	category,
	created_at,
	trusted,
	domains,
	fetched_at`

// ReportsByAddresses returns the cached reports filed against any of addresses,
// newest first.
func (r *Repository) ReportsByAddresses(ctx context.Context, addresses []string) (out []model.Report, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("reports_by_addresses", err, start)
	}()

	if len(addresses) == 0 {
		return nil, nil
	}

	query := `
SELECT` + reportColumns + `
FROM address_reports FINAL
WHERE address IN (?)
ORDER BY created_at DESC, id`

	rows, err := r.conn.Query(ctx, query, addresses)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer closeRows(rows, &err)

	if out, err = r.scanReports(rows); err != nil {
		return nil, err
	}
	return out, nil
}

// AllReports returns every cached report.
func (r *Repository) AllReports(ctx context.Context) (out []model.Report, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("all_reports", err, start)
	}()

	query := `
SELECT` + reportColumns + `
FROM address_reports FINAL
ORDER BY address, id`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer closeRows(rows, &err)

	if out, err = r.scanReports(rows); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertReports caches reports keyed by (address, id).
func (r *Repository) UpsertReports(ctx context.Context, reports []model.Report) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_reports", err, start)
	}()

	if len(reports) == 0 {
		return nil
	}

	const query = `
INSERT INTO address_reports (` + reportColumns + `
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare reports batch: %w", err)
	}

	now := r.now()
	for _, rep := range reports {
		fetchedAt := rep.FetchedAt
		if fetchedAt.IsZero() {
			fetchedAt = now
		}
		if err = batch.Append(
			rep.Address,
			rep.ID,
			rep.Category,
			toColumnTime(rep.CreatedAt),
			rep.Trusted,
			nonNilStrings(rep.Domains),
			fetchedAt.UTC(),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append report: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert reports: %w", err)
	}
	return nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// scanReports decodes every readable report; broken rows are logged and skipped.
func (r *Repository) scanReports(rows rowScanner) ([]model.Report, error) {
	var out []model.Report
	for rows.Next() {
		var (
			rep       model.Report
			createdAt time.Time
		)
		if err := rows.Scan(
			&rep.Address,
			&rep.ID,
			&rep.Category,
			&createdAt,
			&rep.Trusted,
			&rep.Domains,
			&rep.FetchedAt,
		); err != nil {
			r.skipRow("report", rep.Address, err)
			continue
		}
		rep.CreatedAt = fromColumnTime(createdAt)
		rep.FetchedAt = rep.FetchedAt.UTC()
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return out, nil
}
