package studio

type Studio struct {
	ID              string   `json:"studio_id" gorm:"column:studio_id;primaryKey;size:36"`
	UserID          *string  `json:"user_id,omitempty" gorm:"column:user_id;size:36;uniqueIndex"`
	Name            string   `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Instagram       *string  `json:"instagram,omitempty" gorm:"size:50;uniqueIndex"`
	Location        *string  `json:"location,omitempty" gorm:"size:255"`
	Lat             *float64 `json:"lat,omitempty"`
	Lng             *float64 `json:"lng,omitempty"`
	Station         *string  `json:"station,omitempty" gorm:"size:100"`
	City            *string  `json:"city,omitempty" gorm:"size:100"`
	District        *string  `json:"district,omitempty" gorm:"size:100"`
	Email           *string  `json:"email,omitempty" gorm:"size:100"`
	Website         *string  `json:"website,omitempty" gorm:"size:255"`
	IsVerified      bool     `json:"is_verified" gorm:"not null;default:false"`
	ReservationForm *string  `json:"reservation_form,omitempty" gorm:"size:255"`
	// HH:MM:SS, validated at the boundary.
	DefaultDuration *string `json:"default_duration,omitempty" gorm:"size:8"`
	DefaultPrice    *int64  `json:"default_price,omitempty"`
	Youtube         *string `json:"youtube,omitempty" gorm:"size:255"`
	Bio             *string `json:"bio,omitempty" gorm:"size:500"`
}

func (Studio) TableName() string { return "studios" }
