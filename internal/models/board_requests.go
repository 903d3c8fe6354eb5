package models

type CreateBoardRequest struct {
	Name            string `json:"name"`
	BackgroundColor string `json:"background_color"`
}

type UpdateBoardRequest struct {
	Name            *string `json:"name"`
	BackgroundColor *string `json:"background_color"`
}

type GrantAccessRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
