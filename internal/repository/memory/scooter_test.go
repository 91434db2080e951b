package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scooter-rental/internal/domain"
)

func TestScooterRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and Get", func(t *testing.T) {
		repo := NewScooterRepository()
		require.NoError(t, repo.Create(ctx, domain.NewScooter(defaultScooterID, defaultPrice)))

		sc, err := repo.GetByID(ctx, defaultScooterID)
		require.NoError(t, err)
		assert.Equal(t, defaultScooterID, sc.ID)
		assert.False(t, sc.IsRented)
	})

	t.Run("Duplicate", func(t *testing.T) {
		repo := NewScooterRepository()
		require.NoError(t, repo.Create(ctx, domain.NewScooter(defaultScooterID, defaultPrice)))
		assert.ErrorIs(t, repo.Create(ctx, domain.NewScooter(defaultScooterID, defaultPrice)), domain.ErrDuplicateScooter)
	})

	t.Run("Returned scooters are copies", func(t *testing.T) {
		repo := NewScooterRepository()
		require.NoError(t, repo.Create(ctx, domain.NewScooter(defaultScooterID, defaultPrice)))

		sc, err := repo.GetByID(ctx, defaultScooterID)
		require.NoError(t, err)
		sc.IsRented = true

		stored, err := repo.GetByID(ctx, defaultScooterID)
		require.NoError(t, err)
		assert.False(t, stored.IsRented)

		require.NoError(t, repo.Update(ctx, sc))
		stored, err = repo.GetByID(ctx, defaultScooterID)
		require.NoError(t, err)
		assert.True(t, stored.IsRented)
	})

	t.Run("Update and Delete missing", func(t *testing.T) {
		repo := NewScooterRepository()
		assert.ErrorIs(t, repo.Update(ctx, domain.NewScooter("x", defaultPrice)), domain.ErrScooterNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "x"), domain.ErrScooterNotFound)
		_, err := repo.GetByID(ctx, "x")
		assert.ErrorIs(t, err, domain.ErrScooterNotFound)
	})

	t.Run("Delete keeps order", func(t *testing.T) {
		repo := NewScooterRepository()
		for _, id := range []string{"1", "2", "3"} {
			require.NoError(t, repo.Create(ctx, domain.NewScooter(id, defaultPrice)))
		}
		require.NoError(t, repo.Delete(ctx, "2"))

		scooters, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, scooters, 2)
		assert.Equal(t, "1", scooters[0].ID)
		assert.Equal(t, "3", scooters[1].ID)
	})
}
