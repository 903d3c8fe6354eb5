package models

type BoardListResponse struct {
	Boards []Board `json:"boards"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
	Total  int64   `json:"total"`
}
