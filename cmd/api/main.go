package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"dancedir/internal/database"
	"dancedir/internal/domain/class"
	"dancedir/internal/domain/dancer"
	"dancedir/internal/domain/search"
	"dancedir/internal/domain/studio"
	"dancedir/internal/domain/user"
	"dancedir/internal/middleware"
	jwtsvc "dancedir/internal/pkg/jwt"
)

func main() {
	// Local development reads DATABASE_URL etc. from .env; in deploys the
	// file is simply absent.
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(
		&user.User{},
		&user.BlockedToken{},
		&dancer.Dancer{},
		&studio.Studio{},
		&class.Class{},
	); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(secret, 24*time.Hour)

	userRepo := user.NewRepository(db)
	dancerRepo := dancer.NewRepository(db)
	studioRepo := studio.NewRepository(db)
	classRepo := class.NewRepository(db)
	searchRepo := search.NewRepository(db)

	userHandler := user.NewHandler(user.NewService(userRepo, j))
	dancerHandler := dancer.NewHandler(dancer.NewService(dancerRepo))
	studioHandler := studio.NewHandler(studio.NewService(studioRepo))
	classHandler := class.NewHandler(class.NewService(classRepo))
	searchHandler := search.NewHandler(searchRepo)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	root := r.Group("")
	{
		// public
		userHandler.RegisterAuthRoutes(root)
		dancerHandler.RegisterRoutes(root)
		studioHandler.RegisterRoutes(root)
		classHandler.RegisterRoutes(root)
		searchHandler.RegisterRoutes(root)

		// protected (user account endpoints)
		protected := root.Group("")
		protected.Use(middleware.Auth(j, userRepo))
		{
			userHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
