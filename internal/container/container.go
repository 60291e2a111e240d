package container

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"venuebook/internal/cache"
	"venuebook/internal/config"
	"venuebook/internal/models"
	"venuebook/internal/queue"
	"venuebook/internal/services"
)

// Container holds all application dependencies. Everything is constructed
// here and passed down explicitly; no package-level state.
type Container struct {
	Logger      *slog.Logger
	MongoClient *mongo.Client

	IdentityService *services.IdentityService
	VenueService    *services.VenueService
	AmenityService  *services.AmenityService
	LinkService     *services.LinkService
	BookingService  *services.BookingService
}

func NewContainer(
	cfg *config.Config,
	logger *slog.Logger,
	mongoClient *mongo.Client,
	redisClient *redis.Client,
) *Container {
	repo := models.NewMongoRepo(mongoClient, cfg.MongoDatabase)
	catalog := cache.NewCatalog(redisClient, cfg.CacheTTL)
	publisher := queue.NewPublisher(cfg.AmqpURL)

	// The booking service adjusts amenity stock through the amenity service,
	// not the raw repo, so every stock write also invalidates the catalog
	// cache.
	amenityService := services.NewAmenityService(repo, repo, catalog)

	return &Container{
		Logger:          logger,
		MongoClient:     mongoClient,
		IdentityService: services.NewIdentityService(repo),
		VenueService:    services.NewVenueService(repo, repo, catalog),
		AmenityService:  amenityService,
		LinkService:     services.NewLinkService(repo, repo, repo),
		BookingService:  services.NewBookingService(repo, repo, amenityService, repo, repo, publisher, logger),
	}
}
