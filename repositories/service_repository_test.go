package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/FullStack-Digital-CA/medicare/models"
	"github.com/stretchr/testify/require"
)

func TestServiceGetAllPublicOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seed := []models.Service{
		{Name: "Old Low", Slug: "old-low", Price: 10, Duration: 10, CategoryID: 1, IsActive: true, DisplayOrder: 0, CreatedAt: base},
		{Name: "New Low", Slug: "new-low", Price: 10, Duration: 10, CategoryID: 1, IsActive: true, DisplayOrder: 0, CreatedAt: base.Add(time.Hour)},
		{Name: "High", Slug: "high", Price: 10, Duration: 10, CategoryID: 1, IsActive: true, DisplayOrder: 5, CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	services, err := repo.GetAllPublic(ctx)
	require.NoError(t, err)
	require.Len(t, services, 3)

	// display order ascending, newest first within the same order value
	require.Equal(t, "New Low", services[0].Name)
	require.Equal(t, "Old Low", services[1].Name)
	require.Equal(t, "High", services[2].Name)
}

func TestServiceGetAllAdminJoinsCategoryTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	category := models.ServiceCategory{Title: "Checkups", Slug: "checkups", IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	linked := models.Service{Name: "Full Checkup", Slug: "full-checkup", Price: 150, Duration: 30, CategoryID: category.ID, IsActive: true, CreatedAt: base}
	orphan := models.Service{Name: "Orphan", Slug: "orphan", Price: 5, Duration: 5, CategoryID: 9999, IsActive: false, CreatedAt: base.Add(time.Hour)}
	require.NoError(t, db.Create(&linked).Error)
	require.NoError(t, db.Create(&orphan).Error)

	rows, err := repo.GetAllAdmin(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// newest first
	require.Equal(t, "Orphan", rows[0].Name)
	require.Nil(t, rows[0].CategoryTitle)
	require.False(t, rows[0].IsActive)

	require.Equal(t, "Full Checkup", rows[1].Name)
	require.NotNil(t, rows[1].CategoryTitle)
	require.Equal(t, "Checkups", *rows[1].CategoryTitle)
}

func TestServiceDeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)

	deleted, err := repo.Delete(context.Background(), 123)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestServiceGetByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)

	got, err := repo.GetByID(context.Background(), 123)
	require.NoError(t, err)
	require.Nil(t, got)
}
