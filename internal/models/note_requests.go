package models

type CreateNoteRequest struct {
	BoardID uint    `json:"board_id"`
	Content string  `json:"content"`
	Image   *string `json:"image"`
	Link    *string `json:"link"`
	Color   string  `json:"color"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	GroupID *string `json:"group_id"`
	ZIndex  int     `json:"z_index"`
}

type UpdateNoteRequest struct {
	Content *string  `json:"content"`
	Image   *string  `json:"image"`
	Link    *string  `json:"link"`
	Color   *string  `json:"color"`
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
	Width   *float64 `json:"width"`
	Height  *float64 `json:"height"`
	GroupID *string  `json:"group_id"`
	ZIndex  *int     `json:"z_index"`
}
