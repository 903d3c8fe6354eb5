package models

type CreateDrawingRequest struct {
	BoardID     uint    `json:"board_id"`
	PathData    string  `json:"path_data"`
	Color       string  `json:"color"`
	StrokeWidth float64 `json:"stroke_width"`
}
