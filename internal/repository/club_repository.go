package repository

import (
	"context"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type ClubRepository interface {
	// Create создает клуб вместе с членством HOST для лидера в одной транзакции.
	Create(ctx context.Context, club *domain.Club) error
	GetByID(ctx context.Context, id int) (*domain.Club, error)
	// GetByIDForUpdate читает клуб с блокировкой строки (SELECT ... FOR UPDATE).
	// Используется только внутри транзакции как эксклюзивная граница клуба.
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Club, error)
	SetIsActive(ctx context.Context, id int, isActive bool) error
}
