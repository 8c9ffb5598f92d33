package class

import (
	"time"

	"dancedir/internal/domain/dancer"
)

// Level is the two-valued class difficulty tag.
type Level string

const (
	LevelBasic    Level = "BASIC"
	LevelAdvanced Level = "ADVANCED"
)

func ParseLevel(s string) (Level, bool) {
	l := Level(s)
	return l, l == LevelBasic || l == LevelAdvanced
}

type Class struct {
	ID       string    `json:"class_id" gorm:"column:class_id;primaryKey;size:36"`
	StudioID string    `json:"studio_id" gorm:"column:studio_id;size:36;not null;index"`
	DateTime time.Time `json:"class_datetime" gorm:"column:class_datetime;not null"`
	// IANA timezone name the datetime is presented in.
	Timezone string        `json:"timezone" gorm:"size:64;not null"`
	Level    *Level        `json:"level,omitempty" gorm:"size:16"`
	Genre    *dancer.Genre `json:"genre,omitempty" gorm:"size:20"`

	Dancers []dancer.Dancer `json:"-" gorm:"many2many:class_dancer_association;joinForeignKey:class_id;joinReferences:dancer_id"`
}

func (Class) TableName() string { return "classes" }
