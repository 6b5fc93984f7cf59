package task

import (
	"github.com/empregga/eva-portal/internal/embedding"
)

type Manager struct {
	embeddingService embedding.Service
}

func NewManager(embeddingService embedding.Service) *Manager {
	return &Manager{
		embeddingService: embeddingService,
	}
}
