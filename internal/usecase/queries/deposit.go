package queries

import (
	"context"
)

type DepositQueries interface {
	ListHolds(ctx context.Context) ([]*DepositListItem, error)
}

type DepositReadStore interface {
	FindAllOrdered(ctx context.Context) ([]*DepositListItem, error)
}

type depositQueriesImpl struct {
	readStore DepositReadStore
}

func NewDepositQueries(readStore DepositReadStore) DepositQueries {
	return &depositQueriesImpl{readStore: readStore}
}

func (q *depositQueriesImpl) ListHolds(ctx context.Context) ([]*DepositListItem, error) {
	return q.readStore.FindAllOrdered(ctx)
}
