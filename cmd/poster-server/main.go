package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"watchhive/internal/config"
	"watchhive/internal/dbmongo"
	"watchhive/internal/dbmysql"
	"watchhive/internal/media"
	"watchhive/internal/poster"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadConfig()

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MySQL:", err)
	}

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Close(context.Background())

	storage := dbmongo.NewPosterStorage(mongoClient)
	refs := poster.NewPosterRepository(db)
	medias := media.NewMediaRepository(db)
	service := poster.NewPosterService(refs, storage, medias)
	posterServer := poster.NewHTTPServer(service)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.PosterServerPort)
	log.Printf("Poster server starting on %s", addr)
	log.Printf("Serving posters at: http://%s/posters/{mediaID}", addr)

	if err := http.ListenAndServe(addr, posterServer); err != nil {
		log.Fatal("Failed to start poster server:", err)
	}
}
