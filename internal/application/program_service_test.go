package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/wil-portal/internal/infrastructure/memory"
)

func TestProgramService(t *testing.T) {
	repo, err := memory.NewProgramRepository(memory.DefaultPrograms())
	require.NoError(t, err)
	svc := NewProgramService(repo)
	ctx := context.Background()

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	p, err := svc.Get(ctx, "coop")
	require.NoError(t, err)
	assert.Equal(t, "Co-op Program", p.Name)

	_, err = svc.Get(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatsService(t *testing.T) {
	svc := NewStatsService(memory.DefaultStats())

	s := svc.Snapshot(context.Background())
	assert.Equal(t, 3, s.ActivePrograms)
	assert.Equal(t, 98, s.ProgramStats["coop"].Placements)
}
