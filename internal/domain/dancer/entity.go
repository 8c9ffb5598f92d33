package dancer

// Genre is the closed set of dance genres shared by dancers and classes.
type Genre string

const (
	GenreChoreography Genre = "CHOREOGRAPHY"
	GenreHiphop       Genre = "HIPHOP"
	GenreGirlsHiphop  Genre = "GIRLS HIPHOP"
	GenreBreaking     Genre = "BREAKING"
	GenreLocking      Genre = "LOCKING"
	GenrePopping      Genre = "POPPING"
	GenreHouse        Genre = "HOUSE"
	GenreKrump        Genre = "KRUMP"
	GenreWacking      Genre = "WACKING"
	GenreVoguing      Genre = "VOGUING"
	GenreHeel         Genre = "HEEL"
	GenreSoul         Genre = "SOUL"
	GenreAfro         Genre = "AFRO"
	GenreKpop         Genre = "K-POP"
	GenreContemporary Genre = "CONTEMPORARY"
	GenreJazz         Genre = "JAZZ"
	GenreDancehall    Genre = "DANCEHALL"
)

var genres = map[Genre]struct{}{
	GenreChoreography: {}, GenreHiphop: {}, GenreGirlsHiphop: {},
	GenreBreaking: {}, GenreLocking: {}, GenrePopping: {},
	GenreHouse: {}, GenreKrump: {}, GenreWacking: {},
	GenreVoguing: {}, GenreHeel: {}, GenreSoul: {},
	GenreAfro: {}, GenreKpop: {}, GenreContemporary: {},
	GenreJazz: {}, GenreDancehall: {},
}

// ParseGenre reports whether s names a known genre.
func ParseGenre(s string) (Genre, bool) {
	g := Genre(s)
	_, ok := genres[g]
	return g, ok
}

type Dancer struct {
	ID         string   `json:"dancer_id" gorm:"column:dancer_id;primaryKey;size:36"`
	UserID     *string  `json:"user_id,omitempty" gorm:"column:user_id;size:36;uniqueIndex"`
	MainName   string   `json:"main_name" gorm:"size:20;not null"`
	Names      []string `json:"names" gorm:"serializer:json;not null"`
	Instagram  *string  `json:"instagram,omitempty" gorm:"size:50;uniqueIndex"`
	IsVerified bool     `json:"is_verified" gorm:"not null;default:false"`
	Genre      *Genre   `json:"genre,omitempty" gorm:"size:20"`
}

func (Dancer) TableName() string { return "dancers" }
