package wire

import (
	"net/http"

	"firebase.google.com/go/v4/messaging"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
	"github.com/12OneTwo12/upvy-sub004/internal/config"
	"github.com/12OneTwo12/upvy-sub004/internal/content"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmongo"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
	"github.com/12OneTwo12/upvy-sub004/internal/feed"
	"github.com/12OneTwo12/upvy-sub004/internal/interaction"
	"github.com/12OneTwo12/upvy-sub004/internal/logging"
	"github.com/12OneTwo12/upvy-sub004/internal/media"
	"github.com/12OneTwo12/upvy-sub004/internal/notif"
	"github.com/12OneTwo12/upvy-sub004/internal/search"
	"github.com/12OneTwo12/upvy-sub004/internal/user"
)

// Application is the assembled service: everything main needs to serve
// traffic and shut down cleanly.
type Application struct {
	Config *config.Config
	Logger zerolog.Logger
	DB     *gorm.DB
	Mongo  *dbmongo.MongoClient
	Bus    *interaction.EventBus
	Router *mux.Router
}

func ProvideLogger(cfg *config.Config) zerolog.Logger {
	return logging.New(cfg.Logging)
}

func ProvideBlobStore(storage *dbmongo.MediaStorage) content.BlobStore {
	return storage
}

func ProvideContentUsecase(svc *content.Service) content.Usecase {
	return svc
}

func ProvideInteractionUsecase(svc *interaction.Service) interaction.Usecase {
	return svc
}

func ProvideSearchUsecase(svc *search.Service) search.Usecase {
	return svc
}

func ProvideNotifUsecase(svc *notif.Service) notif.Usecase {
	return svc
}

func ProvideFeedUsecase(svc *feed.FeedService) feed.FeedUsecase {
	return svc
}

// ProvideEventBus starts the bus and subscribes every observer the
// configuration allows. The push observer is skipped when FCM is disabled.
func ProvideEventBus(
	cfg *config.Config,
	logger zerolog.Logger,
	interactionRepo interaction.Repository,
	notifRepo dbmysql.NotificationRepository,
	users user.UserRepository,
	devices user.DeviceRepository,
	fcm *messaging.Client,
) *interaction.EventBus {
	bus := interaction.NewEventBus(cfg.Events.Workers, cfg.Events.ChannelBufferSize, logger)

	bus.Subscribe(interaction.NewCounterObserver(interactionRepo))
	bus.Subscribe(interaction.NewHistoryObserver(interactionRepo))
	bus.Subscribe(notif.NewDatabaseObserver(notifRepo, users))
	if fcm != nil {
		bus.Subscribe(notif.NewPushObserver(fcm, devices, users, logger))
	}
	return bus
}

func ProvideInteractionService(repo interaction.Repository, bus *interaction.EventBus) *interaction.Service {
	return interaction.NewService(repo, bus)
}

func ProvideRecommender(cfg *config.Config, repo *feed.FeedRepository) *feed.Recommender {
	return feed.NewRecommender(repo, cfg.Feed.NeighborFanOut)
}

func ProvideComposer(cfg *config.Config, repo *feed.FeedRepository, rec *feed.Recommender, logger zerolog.Logger) *feed.Composer {
	return feed.NewComposer(feed.DefaultQuotaSources(cfg.Feed, repo, rec), cfg.Feed.PageSize, logger)
}

func ProvideFeedService(composer *feed.Composer, rec *feed.Recommender, repo *feed.FeedRepository, logger zerolog.Logger) *feed.FeedService {
	return feed.NewFeedService(composer, rec, repo, logger)
}

// ProvideRouter mounts every handler. Auth and login are public, media
// downloads are public, everything else sits behind the auth middleware.
func ProvideRouter(
	logger zerolog.Logger,
	userHandler *user.Handler,
	contentHandler *content.Handler,
	interactionHandler *interaction.Handler,
	feedHandlers *feed.FeedHandlers,
	searchHandler *search.Handler,
	notifHandler *notif.Handler,
	mediaServer *media.Server,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(common.RequestLogMiddleware(logger))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	userHandler.RegisterPublic(router)
	mediaServer.Register(router)

	authed := router.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)
	userHandler.RegisterAuthed(authed)
	contentHandler.Register(authed)
	interactionHandler.Register(authed)
	feedHandlers.Register(authed)
	searchHandler.Register(authed)
	notifHandler.Register(authed)

	return router
}
