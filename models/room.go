package models

import "time"

// Branch identifiers for the two dormitory locations.
const (
	BranchGilPuyat  = "gil-puyat"
	BranchGuadalupe = "guadalupe"
)

// Bed is a single bed slot inside a room.
type Bed struct {
	ID       string `bson:"id" json:"id"`
	Position string `bson:"position" json:"position"` // e.g. "upper", "lower", "single"
	Occupied bool   `bson:"occupied" json:"occupied"`
}

// Room represents a rentable dormitory room at one of the branches.
type Room struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Branch      string    `bson:"branch" json:"branch"`
	Type        string    `bson:"type" json:"type"` // e.g. "quadruple", "double", "solo"
	Price       float64   `bson:"price" json:"price"`
	Deposit     float64   `bson:"deposit,omitempty" json:"deposit,omitempty"`
	Capacity    int       `bson:"capacity" json:"capacity"`
	Amenities   []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"`
	Beds        []Bed     `bson:"beds,omitempty" json:"beds,omitempty"`
	Available   bool      `bson:"available" json:"available"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// OccupiedBeds counts beds currently marked occupied.
func (r *Room) OccupiedBeds() int {
	n := 0
	for _, b := range r.Beds {
		if b.Occupied {
			n++
		}
	}
	return n
}

// OccupancyReport summarizes room occupancy for availability listings.
// Overbooked is a surfaced warning only; the data is never auto-corrected.
type OccupancyReport struct {
	RoomID       string `json:"room_id"`
	RoomName     string `json:"room_name"`
	Branch       string `json:"branch"`
	TotalBeds    int    `json:"total_beds"`
	OccupiedBeds int    `json:"occupied_beds"`
	Overbooked   bool   `json:"overbooked"`
}

// RoomFilter narrows admin and public room listings.
type RoomFilter struct {
	Branch        string  `form:"branch" json:"branch"`
	Type          string  `form:"type" json:"type"`
	MaxPrice      float64 `form:"max_price" json:"max_price"`
	AvailableOnly bool    `form:"available_only" json:"available_only"`
}
