package dancer

type CreateRequest struct {
	Name      string  `json:"name" binding:"required,max=20"`
	Instagram *string `json:"instagram" binding:"omitempty,max=50"`
	Genre     *string `json:"genre"`
	UserID    *string `json:"user_id"`
}

type EditRequest struct {
	Names      []string `json:"names"`
	MainName   *string  `json:"main_name" binding:"omitempty,max=20"`
	Instagram  *string  `json:"instagram" binding:"omitempty,max=50"`
	Genre      *string  `json:"genre"`
	IsVerified *bool    `json:"is_verified"`
}

type NameAddRequest struct {
	Name string `json:"name" binding:"required,max=20"`
}

type Response struct {
	DancerID   string   `json:"dancer_id"`
	UserID     *string  `json:"user_id"`
	MainName   string   `json:"main_name"`
	Names      []string `json:"names"`
	Instagram  *string  `json:"instagram"`
	IsVerified bool     `json:"is_verified"`
	Genre      *string  `json:"genre"`
	Role       string   `json:"role"`
}

func toResponse(d *Dancer) Response {
	var genre *string
	if d.Genre != nil {
		g := string(*d.Genre)
		genre = &g
	}
	return Response{
		DancerID:   d.ID,
		UserID:     d.UserID,
		MainName:   d.MainName,
		Names:      d.Names,
		Instagram:  d.Instagram,
		IsVerified: d.IsVerified,
		Genre:      genre,
		Role:       "DANCER",
	}
}

type BulkUploadResponse struct {
	SuccessCount int        `json:"success_count"`
	ErrorCount   int        `json:"error_count"`
	Errors       []RowError `json:"errors"`
}
