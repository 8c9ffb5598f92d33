package class

import "time"

type CreateRequest struct {
	StudioID  string   `json:"studio_id" binding:"required"`
	DancerIDs []string `json:"dancer_ids" binding:"required,min=1"`
	// ISO-8601 datetime, e.g. "2025-01-15T14:00:00+09:00".
	ClassDatetime string  `json:"class_datetime" binding:"required"`
	Timezone      string  `json:"timezone" binding:"required"`
	Level         *string `json:"level"`
	Genre         *string `json:"genre"`
}

type EditRequest struct {
	DancerIDs     []string `json:"dancer_ids"`
	ClassDatetime *string  `json:"class_datetime"`
	Timezone      *string  `json:"timezone"`
	Level         *string  `json:"level"`
	Genre         *string  `json:"genre"`
}

type Response struct {
	ClassID       string   `json:"class_id"`
	StudioID      string   `json:"studio_id"`
	DancerIDs     []string `json:"dancer_ids"`
	ClassDatetime string   `json:"class_datetime"`
	Timezone      string   `json:"timezone"`
	Level         *string  `json:"level"`
	Genre         *string  `json:"genre"`
}

func toResponse(c *Class) Response {
	ids := make([]string, 0, len(c.Dancers))
	for _, d := range c.Dancers {
		ids = append(ids, d.ID)
	}

	dt := c.DateTime
	if loc, err := time.LoadLocation(c.Timezone); err == nil {
		dt = dt.In(loc)
	}

	var level *string
	if c.Level != nil {
		v := string(*c.Level)
		level = &v
	}
	var genre *string
	if c.Genre != nil {
		v := string(*c.Genre)
		genre = &v
	}

	return Response{
		ClassID:       c.ID,
		StudioID:      c.StudioID,
		DancerIDs:     ids,
		ClassDatetime: dt.Format(time.RFC3339),
		Timezone:      c.Timezone,
		Level:         level,
		Genre:         genre,
	}
}
