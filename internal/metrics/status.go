package metrics

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

const namespace = "blockinsight7000_forensics"

func status(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	case model.IsValidation(err):
		return "invalid"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
