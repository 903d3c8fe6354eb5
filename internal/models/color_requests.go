package models

type CreateColorRequest struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	HexColor string `json:"hex_color"`
}

type UpdateColorRequest struct {
	Nickname *string `json:"nickname"`
	HexColor *string `json:"hex_color"`
}
