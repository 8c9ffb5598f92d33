package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"dancedir/internal/database"
	"dancedir/internal/domain/class"
	"dancedir/internal/domain/dancer"
	"dancedir/internal/domain/studio"
	"dancedir/internal/domain/user"
)

// Seeds a development database with a handful of studios, dancers and
// classes. Existing rows are wiped first, so never point this at prod.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "dancedir.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}

	log.Println("running AutoMigrate...")
	if err := db.AutoMigrate(
		&user.User{},
		&user.BlockedToken{},
		&dancer.Dancer{},
		&studio.Studio{},
		&class.Class{},
	); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	log.Println("cleaning old data...")
	db.Exec("DELETE FROM class_dancer_association")
	db.Exec("DELETE FROM classes")
	db.Exec("DELETE FROM dancers")
	db.Exec("DELETE FROM studios")
	db.Exec("DELETE FROM blocked_tokens")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	log.Println("creating studios...")
	studioRepo := studio.NewRepository(db)
	studios := []*studio.Studio{
		{
			Name:            "1MILLION",
			Instagram:       strPtr("1milliondance"),
			Location:        strPtr("29 Dosan-daero 15-gil, Gangnam-gu, Seoul"),
			Lat:             f64Ptr(37.5172),
			Lng:             f64Ptr(127.0286),
			City:            strPtr("Seoul"),
			District:        strPtr("Gangnam-gu"),
			DefaultDuration: strPtr("01:30:00"),
			DefaultPrice:    i64Ptr(25000),
			IsVerified:      true,
		},
		{
			Name:            "JUSTJERK",
			Instagram:       strPtr("justjerkacademy"),
			Location:        strPtr("12 Yanghwa-ro 6-gil, Mapo-gu, Seoul"),
			Lat:             f64Ptr(37.5495),
			Lng:             f64Ptr(126.9137),
			City:            strPtr("Seoul"),
			District:        strPtr("Mapo-gu"),
			DefaultDuration: strPtr("01:00:00"),
			DefaultPrice:    i64Ptr(22000),
		},
	}
	for _, s := range studios {
		if err := studioRepo.Create(ctx, s); err != nil {
			log.Fatal("studio create failed: ", err)
		}
		log.Printf("studio created: %s (%s)", s.Name, s.ID)
	}

	log.Println("creating dancers...")
	dancerRepo := dancer.NewRepository(db)
	type dancerSeed struct {
		name      string
		aliases   []string
		instagram string
		genre     string
	}
	seeds := []dancerSeed{
		{"리아킴", []string{"Lia Kim"}, "liakimhappy", "CHOREOGRAPHY"},
		{"김민준", []string{"민준"}, "minjun_dance", "HIPHOP"},
		{"Bada Lee", nil, "badalee__", "CHOREOGRAPHY"},
		{"J-ho", []string{"정호"}, "jhodance", "KRUMP"},
	}
	dancers := make([]*dancer.Dancer, 0, len(seeds))
	for _, s := range seeds {
		d, err := dancerRepo.Create(ctx, dancer.CreateParams{
			Name:      s.name,
			Instagram: strPtr(s.instagram),
			Genre:     strPtr(s.genre),
		})
		if err != nil {
			log.Fatal("dancer create failed: ", err)
		}
		for _, alias := range s.aliases {
			if d, err = dancerRepo.AddName(ctx, d.ID, alias); err != nil {
				log.Fatal("dancer alias failed: ", err)
			}
		}
		dancers = append(dancers, d)
		log.Printf("dancer created: %s (@%s)", d.MainName, s.instagram)
	}

	log.Println("creating classes...")
	classRepo := class.NewRepository(db)
	seoul, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		log.Fatal(err)
	}
	basic := class.LevelBasic
	advanced := class.LevelAdvanced
	classSeeds := []class.CreateParams{
		{
			StudioID:  studios[0].ID,
			DancerIDs: []string{dancers[0].ID, dancers[1].ID},
			DateTime:  time.Date(2025, 1, 15, 14, 0, 0, 0, seoul),
			Timezone:  "Asia/Seoul",
			Level:     &basic,
			Genre:     dancers[0].Genre,
		},
		{
			StudioID:  studios[0].ID,
			DancerIDs: []string{dancers[2].ID},
			DateTime:  time.Date(2025, 1, 16, 19, 30, 0, 0, seoul),
			Timezone:  "Asia/Seoul",
			Level:     &advanced,
			Genre:     dancers[2].Genre,
		},
		{
			StudioID:  studios[1].ID,
			DancerIDs: []string{dancers[3].ID},
			DateTime:  time.Date(2025, 1, 17, 20, 0, 0, 0, seoul),
			Timezone:  "Asia/Seoul",
			Level:     &basic,
			Genre:     dancers[3].Genre,
		},
	}
	for _, p := range classSeeds {
		c, err := classRepo.Create(ctx, p)
		if err != nil {
			log.Fatal("class create failed: ", err)
		}
		log.Printf("class created: %s at %s", c.ID, c.DateTime.In(seoul).Format(time.RFC3339))
	}

	log.Println("seed completed")
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func i64Ptr(i int64) *int64     { return &i }
