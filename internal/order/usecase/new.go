package usecase

import (
	"customer-support-agent/internal/order"
	"customer-support-agent/internal/order/repository"
	"customer-support-agent/pkg/log"
)

// implUseCase is the private implementation of order.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ order.UseCase = (*implUseCase)(nil)

// New creates a new order UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
