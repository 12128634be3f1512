package room

import (
	"dormhub/models"
)

// CheckOccupancy is a pure validation over a room snapshot. Overbooking
// (more occupied beds than capacity) is surfaced as a warning flag only;
// the underlying data is never auto-corrected.
func CheckOccupancy(r *models.Room) models.OccupancyReport {
	report := models.OccupancyReport{}
	if r == nil {
		return report
	}
	report.RoomID = r.ID
	report.RoomName = r.Name
	report.Branch = r.Branch
	report.TotalBeds = r.Capacity
	report.OccupiedBeds = r.OccupiedBeds()
	report.Overbooked = report.OccupiedBeds > report.TotalBeds
	return report
}

// Occupancy summarizes bed occupancy for every room matching the filter.
func (s *DefaultRoomService) Occupancy(filter models.RoomFilter) ([]models.OccupancyReport, error) {
	rooms, err := s.Repo.GetAll(filter)
	if err != nil {
		return nil, err
	}
	reports := make([]models.OccupancyReport, 0, len(rooms))
	for i := range rooms {
		reports = append(reports, CheckOccupancy(&rooms[i]))
	}
	return reports, nil
}
