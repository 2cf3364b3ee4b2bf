package worker

import (
	"context"
)

// Worker - фоновая задача, живущая вместе с HTTP сервером
type Worker interface {
	// Start блокируется до Stop или отмены контекста
	Start(ctx context.Context) error

	Stop() error

	Name() string
}
