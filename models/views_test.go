package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	require.Equal(t, "150.00", FormatPrice(150))
	require.Equal(t, "0.00", FormatPrice(0))
	require.Equal(t, "49.90", FormatPrice(49.9))
	require.Equal(t, "19.99", FormatPrice(19.99))
}

func TestBuildPublicCatalog(t *testing.T) {
	icon := "stethoscope"
	categories := []ServiceCategory{
		{ID: 1, Title: "Checkups", Slug: "checkups", Icon: &icon, IsActive: true},
		{ID: 2, Title: "Lab Tests", Slug: "lab-tests", IsActive: false},
	}
	services := []Service{
		{ID: 10, Name: "Full Checkup", Slug: "full-checkup", CategoryID: 1, Price: 150, Duration: 30, IsActive: true},
		{ID: 11, Name: "Blood Panel", Slug: "blood-panel", CategoryID: 2, Price: 80.5, Duration: 15, IsActive: true, ImageURL: "https://cdn.example/blood.jpg"},
		{ID: 12, Name: "Follow-up", Slug: "follow-up", CategoryID: 1, Price: 0, Duration: 10, IsActive: false},
		{ID: 13, Name: "Orphan", Slug: "orphan", CategoryID: 99, Price: 5, Duration: 5, IsActive: true},
	}

	catalog := BuildPublicCatalog(categories, services)
	require.Len(t, catalog, 2)

	checkups := catalog[0]
	require.Equal(t, "Checkups", checkups.Title)
	require.Len(t, checkups.Services, 2)
	for _, s := range checkups.Services {
		require.Equal(t, uint(1), s.CategoryID)
	}
	require.Equal(t, "150.00", checkups.Services[0].Price)
	require.Equal(t, "0.00", checkups.Services[1].Price)
	require.Equal(t, "", checkups.Services[0].ImageURL)

	labs := catalog[1]
	require.Len(t, labs.Services, 1)
	require.Equal(t, "Blood Panel", labs.Services[0].Name)
	require.Equal(t, "80.50", labs.Services[0].Price)
	require.Equal(t, "https://cdn.example/blood.jpg", labs.Services[0].ImageURL)

	// Inactive categories are still returned; the caller decides display.
	require.False(t, labs.IsActive)
}

func TestBuildPublicCatalogEmptyCategory(t *testing.T) {
	catalog := BuildPublicCatalog([]ServiceCategory{{ID: 1, Title: "Empty"}}, nil)
	require.Len(t, catalog, 1)
	require.NotNil(t, catalog[0].Services)
	require.Empty(t, catalog[0].Services)
}
