package clickhouse

import (
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"go.uber.org/zap"
)

// DateTime64 columns cannot hold the zero time.Time, so it is stored as the
// Unix epoch and mapped back on read.
var epoch = time.Unix(0, 0).UTC()

func toColumnTime(t time.Time) time.Time {
	if t.IsZero() {
		return epoch
	}
	return t.UTC()
}

func fromColumnTime(t time.Time) time.Time {
	if t.IsZero() || t.Equal(epoch) {
		return time.Time{}
	}
	return t.UTC()
}

// closeRows must be deferred from a function with a named error result so a
// close failure reaches the caller.
func closeRows(rows driver.Rows, err *error) {
	if closeErr := rows.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("close rows: %w", closeErr)
	}
}

// skipRow logs a row that cannot be decoded; the read goes on without it.
func (r *Repository) skipRow(entity, key string, err error) {
	r.logger.Warn("skipping unreadable row",
		zap.String("entity", entity),
		zap.Error(&model.ValidationError{Entity: entity, Key: key, Err: err}),
	)
}

// IsNotFound reports whether err marks a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, model.ErrNotFound)
}
