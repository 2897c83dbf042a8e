//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"watchhive/internal/config"
	"watchhive/internal/dbmongo"
	"watchhive/internal/dbmysql"
	"watchhive/internal/forum"
	"watchhive/internal/media"
	"watchhive/internal/poster"
	"watchhive/internal/review"
	"watchhive/internal/user"
	"watchhive/internal/userlist"
)

// This is just a declaration; wire generates the real body in wire_gen.go.
func InitializeApplication() (*Application, error) {
	wire.Build(
		config.LoadConfig,
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,
		dbmongo.NewPosterStorage,

		user.NewUserRepository,
		user.NewFollowRepository,
		userlist.NewListRepository,
		media.NewMediaRepository,
		review.NewReviewRepository,
		forum.NewForumRepository,
		poster.NewPosterRepository,

		forum.NewRegistry,

		user.NewUserService,
		userlist.NewListService,
		media.NewMediaService,
		review.NewReviewService,
		forum.NewGroupService,
		forum.NewMessageService,
		forum.NewPostService,
		poster.NewPosterService,

		wire.Bind(new(user.ListProvisioner), new(userlist.ListRepository)),
		wire.Bind(new(userlist.MediaChecker), new(media.MediaRepository)),
		wire.Bind(new(media.ListChecker), new(userlist.ListService)),
		wire.Bind(new(review.MediaChecker), new(media.MediaRepository)),
		wire.Bind(new(review.WatchedMarker), new(userlist.ListService)),
		wire.Bind(new(forum.UserChecker), new(user.UserRepository)),
		wire.Bind(new(forum.Broadcaster), new(*forum.Registry)),
		wire.Bind(new(poster.MediaChecker), new(media.MediaRepository)),

		user.NewHandler,
		media.NewHandler,
		userlist.NewHandler,
		review.NewHandler,
		forum.NewHandler,
		forum.NewWSHandler,
		poster.NewHandler,
		poster.NewHTTPServer,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
