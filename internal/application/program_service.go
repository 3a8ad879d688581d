package application

import (
	"context"

	"github.com/oksasatya/wil-portal/internal/domain/entity"
	repo "github.com/oksasatya/wil-portal/internal/domain/repository"
)

type ProgramService struct {
	Repo repo.ProgramRepository
}

func NewProgramService(r repo.ProgramRepository) *ProgramService {
	return &ProgramService{Repo: r}
}

// List returns every program in catalog order.
func (s *ProgramService) List(ctx context.Context) ([]entity.Program, error) {
	return s.Repo.All(ctx)
}

// Get returns ErrNotFound for unknown slugs.
func (s *ProgramService) Get(ctx context.Context, slug string) (*entity.Program, error) {
	return s.Repo.FindBySlug(ctx, slug)
}

type StatsService struct {
	snapshot entity.Stats
}

func NewStatsService(snapshot entity.Stats) *StatsService {
	return &StatsService{snapshot: snapshot}
}

func (s *StatsService) Snapshot(context.Context) entity.Stats {
	return s.snapshot
}
