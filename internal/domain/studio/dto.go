package studio

type CreateRequest struct {
	Name            string   `json:"name" binding:"required,max=50"`
	Instagram       *string  `json:"instagram" binding:"omitempty,max=50"`
	Location        *string  `json:"location" binding:"omitempty,max=255"`
	Lat             *float64 `json:"lat" binding:"omitempty,gte=-90,lte=90"`
	Lng             *float64 `json:"lng" binding:"omitempty,gte=-180,lte=180"`
	Station         *string  `json:"station" binding:"omitempty,max=100"`
	City            *string  `json:"city" binding:"omitempty,max=100"`
	District        *string  `json:"district" binding:"omitempty,max=100"`
	Email           *string  `json:"email" binding:"omitempty,max=100"`
	Website         *string  `json:"website" binding:"omitempty,max=255"`
	ReservationForm *string  `json:"reservation_form" binding:"omitempty,max=255"`
	DefaultDuration *string  `json:"default_duration"`
	DefaultPrice    *int64   `json:"default_price" binding:"omitempty,gte=0"`
	Youtube         *string  `json:"youtube" binding:"omitempty,max=255"`
	Bio             *string  `json:"bio" binding:"omitempty,max=500"`
	UserID          *string  `json:"user_id"`
}

type EditRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=1,max=50"`
	Instagram       *string  `json:"instagram" binding:"omitempty,max=50"`
	Location        *string  `json:"location" binding:"omitempty,max=255"`
	Lat             *float64 `json:"lat" binding:"omitempty,gte=-90,lte=90"`
	Lng             *float64 `json:"lng" binding:"omitempty,gte=-180,lte=180"`
	Station         *string  `json:"station" binding:"omitempty,max=100"`
	City            *string  `json:"city" binding:"omitempty,max=100"`
	District        *string  `json:"district" binding:"omitempty,max=100"`
	Email           *string  `json:"email" binding:"omitempty,max=100"`
	Website         *string  `json:"website" binding:"omitempty,max=255"`
	ReservationForm *string  `json:"reservation_form" binding:"omitempty,max=255"`
	DefaultDuration *string  `json:"default_duration"`
	DefaultPrice    *int64   `json:"default_price" binding:"omitempty,gte=0"`
	Youtube         *string  `json:"youtube" binding:"omitempty,max=255"`
	Bio             *string  `json:"bio" binding:"omitempty,max=500"`
	IsVerified      *bool    `json:"is_verified"`
}

type Response struct {
	StudioID        string   `json:"studio_id"`
	UserID          *string  `json:"user_id"`
	Name            string   `json:"name"`
	Instagram       *string  `json:"instagram"`
	Location        *string  `json:"location"`
	Lat             *float64 `json:"lat"`
	Lng             *float64 `json:"lng"`
	Station         *string  `json:"station"`
	City            *string  `json:"city"`
	District        *string  `json:"district"`
	Email           *string  `json:"email"`
	Website         *string  `json:"website"`
	IsVerified      bool     `json:"is_verified"`
	ReservationForm *string  `json:"reservation_form"`
	DefaultDuration *string  `json:"default_duration"`
	DefaultPrice    *int64   `json:"default_price"`
	Youtube         *string  `json:"youtube"`
	Bio             *string  `json:"bio"`
	Role            string   `json:"role"`
}

func toResponse(s *Studio) Response {
	return Response{
		StudioID:        s.ID,
		UserID:          s.UserID,
		Name:            s.Name,
		Instagram:       s.Instagram,
		Location:        s.Location,
		Lat:             s.Lat,
		Lng:             s.Lng,
		Station:         s.Station,
		City:            s.City,
		District:        s.District,
		Email:           s.Email,
		Website:         s.Website,
		IsVerified:      s.IsVerified,
		ReservationForm: s.ReservationForm,
		DefaultDuration: s.DefaultDuration,
		DefaultPrice:    s.DefaultPrice,
		Youtube:         s.Youtube,
		Bio:             s.Bio,
		Role:            "STUDIO",
	}
}

// ListItem is the lightweight shape for list/card views.
type ListItem struct {
	StudioID   string  `json:"studio_id"`
	Name       string  `json:"name"`
	Instagram  *string `json:"instagram"`
	Station    *string `json:"station"`
	City       *string `json:"city"`
	District   *string `json:"district"`
	IsVerified bool    `json:"is_verified"`
}

func toListItem(s Studio) ListItem {
	return ListItem{
		StudioID:   s.ID,
		Name:       s.Name,
		Instagram:  s.Instagram,
		Station:    s.Station,
		City:       s.City,
		District:   s.District,
		IsVerified: s.IsVerified,
	}
}
