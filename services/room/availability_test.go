package room

import (
	"testing"

	"dormhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadRoom() *models.Room {
	return &models.Room{
		ID:       "room-1",
		Name:     "Room 101",
		Branch:   models.BranchGilPuyat,
		Type:     "quadruple",
		Price:    5500,
		Capacity: 4,
		Beds: []models.Bed{
			{ID: "bed-1", Position: "lower", Occupied: true},
			{ID: "bed-2", Position: "upper"},
			{ID: "bed-3", Position: "lower"},
			{ID: "bed-4", Position: "upper", Occupied: true},
		},
		Available: true,
	}
}

func TestCheckOccupancy(t *testing.T) {
	report := CheckOccupancy(quadRoom())

	assert.Equal(t, "room-1", report.RoomID)
	assert.Equal(t, 4, report.TotalBeds)
	assert.Equal(t, 2, report.OccupiedBeds)
	assert.False(t, report.Overbooked)
}

func TestCheckOccupancyNilRoom(t *testing.T) {
	report := CheckOccupancy(nil)
	assert.Zero(t, report.TotalBeds)
	assert.False(t, report.Overbooked)
}

func TestCheckOccupancyOverbooked(t *testing.T) {
	r := quadRoom()
	// Capacity was reduced after beds were assigned; the report flags it
	// without touching the data.
	r.Capacity = 1
	occupiedBefore := r.OccupiedBeds()

	report := CheckOccupancy(r)

	assert.True(t, report.Overbooked)
	assert.Equal(t, occupiedBefore, r.OccupiedBeds())
	assert.Len(t, r.Beds, 4)
}

func TestValidateRoom(t *testing.T) {
	require.NoError(t, validateRoom(quadRoom()))

	cases := []struct {
		name   string
		mutate func(*models.Room)
	}{
		{"missing name", func(r *models.Room) { r.Name = "" }},
		{"unknown branch", func(r *models.Room) { r.Branch = "ortigas" }},
		{"zero capacity", func(r *models.Room) { r.Capacity = 0 }},
		{"negative price", func(r *models.Room) { r.Price = -1 }},
		{"beds exceed capacity", func(r *models.Room) { r.Capacity = 2 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := quadRoom()
			tc.mutate(r)

			var invalid *ErrInvalidRoom
			require.ErrorAs(t, validateRoom(r), &invalid)
		})
	}
}
