package repositories

import (
	"context"
	"testing"

	"github.com/FullStack-Digital-CA/medicare/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.ServiceCategory{}, &models.Service{}))
	return db
}

func TestCategoryGetAllOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	seed := []models.ServiceCategory{
		{Title: "Radiology", Slug: "radiology", IsActive: true, DisplayOrder: 2},
		{Title: "Checkups", Slug: "checkups", IsActive: true, DisplayOrder: 1},
		{Title: "Lab Tests", Slug: "lab-tests", IsActive: true, DisplayOrder: 1},
		{Title: "Dermatology", Slug: "dermatology", IsActive: false, DisplayOrder: 0},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	categories, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)

	// display order ascending, ties broken by title ascending
	titles := []string{}
	for _, c := range categories {
		titles = append(titles, c.Title)
	}
	require.Equal(t, []string{"Dermatology", "Checkups", "Lab Tests", "Radiology"}, titles)
}

func TestCategoryDeleteBlockedByService(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := models.ServiceCategory{Title: "Lab Tests", Slug: "lab-tests", IsActive: true}
	require.NoError(t, repo.Create(ctx, &category))

	service := models.Service{Name: "Blood Panel", Slug: "blood-panel", Price: 150, Duration: 30, CategoryID: category.ID, IsActive: true}
	require.NoError(t, db.Create(&service).Error)

	count, err := repo.CountServices(ctx, category.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	deleted, err := repo.Delete(ctx, category.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	// Neither the category nor the service was touched.
	got, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	var serviceCount int64
	require.NoError(t, db.Model(&models.Service{}).Count(&serviceCount).Error)
	require.EqualValues(t, 1, serviceCount)
}

func TestCategoryDeleteEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := models.ServiceCategory{Title: "Dermatology", Slug: "dermatology", IsActive: true}
	require.NoError(t, repo.Create(ctx, &category))

	deleted, err := repo.Delete(ctx, category.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCategoryDeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)

	deleted, err := repo.Delete(context.Background(), 9999)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestCategoryGetByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)

	got, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	require.Nil(t, got)
}
