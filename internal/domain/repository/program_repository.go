package repository

import (
	"context"

	"github.com/oksasatya/wil-portal/internal/domain/entity"
)

// ProgramRepository is the read-only program catalog.
type ProgramRepository interface {
	All(ctx context.Context) ([]entity.Program, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Program, error)
}
