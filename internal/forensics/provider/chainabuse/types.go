package chainabuse

import (
	"net/http"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HTTPClient interface {
		Do(req *http.Request) (*http.Response, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
