package di

import (
	"context"

	"gorm.io/gorm"

	"watchhive/internal/config"
	"watchhive/internal/dbmongo"
	"watchhive/internal/forum"
	"watchhive/internal/media"
	"watchhive/internal/poster"
	"watchhive/internal/review"
	"watchhive/internal/user"
	"watchhive/internal/userlist"
)

// Application bundles everything the servers need after wiring.
type Application struct {
	Config   *config.Config
	DB       *gorm.DB
	Mongo    *dbmongo.MongoClient
	Registry *forum.Registry

	UserHandler   *user.Handler
	MediaHandler  *media.Handler
	ListHandler   *userlist.Handler
	ReviewHandler *review.Handler
	ForumHandler  *forum.Handler
	WSHandler     *forum.WSHandler
	PosterHandler *poster.Handler
	PosterServer  *poster.HTTPServer
}

// Close releases the backing connections.
func (a *Application) Close(ctx context.Context) {
	if a.Mongo != nil {
		a.Mongo.Close(ctx)
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
