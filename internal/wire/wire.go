//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/12OneTwo12/upvy-sub004/internal/config"
	"github.com/12OneTwo12/upvy-sub004/internal/content"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmongo"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
	"github.com/12OneTwo12/upvy-sub004/internal/feed"
	"github.com/12OneTwo12/upvy-sub004/internal/interaction"
	"github.com/12OneTwo12/upvy-sub004/internal/media"
	"github.com/12OneTwo12/upvy-sub004/internal/notif"
	"github.com/12OneTwo12/upvy-sub004/internal/search"
	"github.com/12OneTwo12/upvy-sub004/internal/user"
)

// InitializeApplication assembles the whole service graph. Wire generates
// the real body in wire_gen.go.
func InitializeApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		ProvideLogger,
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,
		dbmongo.NewMediaStorage,
		dbmysql.NewNotificationRepository,

		user.NewUserRepository,
		user.NewGraphRepository,
		user.NewDeviceRepository,
		user.NewUserService,
		user.NewHandler,

		content.NewRepository,
		ProvideBlobStore,
		content.NewService,
		ProvideContentUsecase,
		content.NewHandler,

		interaction.NewRepository,
		ProvideEventBus,
		ProvideInteractionService,
		ProvideInteractionUsecase,
		interaction.NewHandler,

		feed.NewFeedRepository,
		ProvideRecommender,
		ProvideComposer,
		ProvideFeedService,
		ProvideFeedUsecase,
		feed.NewFeedHandlers,

		search.NewRepository,
		search.NewService,
		ProvideSearchUsecase,
		search.NewHandler,

		notif.NewFCMClient,
		notif.NewService,
		ProvideNotifUsecase,
		notif.NewHandler,

		media.NewServer,

		ProvideRouter,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
