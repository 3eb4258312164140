package shift

type CreateShiftRequest struct {
	Name             string   `json:"name" binding:"required"`
	StartTime        string   `json:"startTime" binding:"required"`
	EndTime          string   `json:"endTime" binding:"required"`
	AllowedLocations []string `json:"allowedLocations"`
}

type ShiftResponse struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	StartTime        string   `json:"startTime"`
	EndTime          string   `json:"endTime"`
	AllowedLocations []string `json:"allowedLocations,omitempty"`
}

func toResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:               s.ID,
		Name:             s.Name,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		AllowedLocations: s.AllowedLocations,
	}
}
