package analytics

// FloorExposure is the sunlight received by one apartment.
type FloorExposure struct {
	Floor int `json:"floor"`
	// Start and Stop are empty when the window could not be computed.
	Start string  `json:"sunlight_start,omitempty"`
	Stop  string  `json:"sunlight_stop,omitempty"`
	Hours float64 `json:"hours"`
	// LeftCoverDeg and RightCoverDeg are the cover angles before and after
	// the building in the row.
	LeftCoverDeg  float64 `json:"left_cover_deg"`
	RightCoverDeg float64 `json:"right_cover_deg"`
	Err           string  `json:"error,omitempty"`
}

// BuildingExposure aggregates the floors of one building.
type BuildingExposure struct {
	Name      string          `json:"name"`
	Floors    []FloorExposure `json:"floors"`
	MinHours  float64         `json:"min_hours"`
	MaxHours  float64         `json:"max_hours"`
	MeanHours float64         `json:"mean_hours"`
	// FirstFullFloor is the lowest floor that receives the whole day, or -1.
	FirstFullFloor int `json:"first_full_floor"`
}

// Summary is the exposure of every apartment in a neighborhood.
type Summary struct {
	Neighborhood   string             `json:"neighborhood"`
	DayLengthHours float64            `json:"day_length_hours"`
	Buildings      []BuildingExposure `json:"buildings"`
	Apartments     int                `json:"apartments"`
	Failed         int                `json:"failed"`
}
