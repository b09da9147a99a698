package gateway

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Provider interface {
		AddressSnapshot(ctx context.Context, address string, limit int) (model.AddressSnapshot, error)
		Block(ctx context.Context, hash string) (model.Block, error)
	}

	Store interface {
		GetAddress(ctx context.Context, address string) (model.Address, error)
		UpsertAddress(ctx context.Context, a model.Address) (model.Address, error)
		TransactionsByAddress(ctx context.Context, address string, since time.Time) ([]model.Transaction, error)
		UpsertTransactions(ctx context.Context, txs []model.Transaction) ([]model.Transaction, error)
		GetBlock(ctx context.Context, hash string) (model.Block, error)
		UpsertBlock(ctx context.Context, b model.Block) (model.Block, error)
	}
)
