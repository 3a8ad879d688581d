package memory

import (
	"context"
	"fmt"

	"github.com/oksasatya/wil-portal/internal/domain/entity"
	"github.com/oksasatya/wil-portal/internal/domain/repository"
)

// ProgramRepository keeps programs in insertion order.
type ProgramRepository struct {
	programs []entity.Program
	bySlug   map[string]int
}

func NewProgramRepository(programs []entity.Program) (*ProgramRepository, error) {
	r := &ProgramRepository{
		programs: make([]entity.Program, 0, len(programs)),
		bySlug:   make(map[string]int, len(programs)),
	}
	for _, p := range programs {
		if p.Slug == "" {
			return nil, fmt.Errorf("program %q: empty slug", p.Name)
		}
		if _, dup := r.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate program slug %q", p.Slug)
		}
		r.bySlug[p.Slug] = len(r.programs)
		r.programs = append(r.programs, p)
	}
	return r, nil
}

// All returns a copy so callers cannot reorder or edit the catalog.
func (r *ProgramRepository) All(_ context.Context) ([]entity.Program, error) {
	out := make([]entity.Program, len(r.programs))
	copy(out, r.programs)
	return out, nil
}

func (r *ProgramRepository) FindBySlug(_ context.Context, slug string) (*entity.Program, error) {
	i, ok := r.bySlug[slug]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p := r.programs[i]
	return &p, nil
}

var _ repository.ProgramRepository = (*ProgramRepository)(nil)
