package core

import "context"

type WorkerService interface {
	Run(ctx context.Context) (*Report, error)
}
