package container

import (
	"context"
	"fmt"

	"github.com/alexedwards/scs/v2"

	"bookshelf-backend/internal/config"
	infracache "bookshelf-backend/internal/infrastructure/cache"
	infradb "bookshelf-backend/internal/infrastructure/database"
	"bookshelf-backend/internal/session"
	"bookshelf-backend/pkg/cache"
	"bookshelf-backend/pkg/database"

	authorhandler "bookshelf-backend/internal/domains/author/handler"
	authorrepo "bookshelf-backend/internal/domains/author/repository"
	authorservice "bookshelf-backend/internal/domains/author/service"
	bookhandler "bookshelf-backend/internal/domains/book/handler"
	bookrepo "bookshelf-backend/internal/domains/book/repository"
	bookservice "bookshelf-backend/internal/domains/book/service"
)

// Container is the composition root. Concrete repository implementations
// are chosen here, once, at process start; everything below the handlers
// depends on interfaces only.
type Container struct {
	Config *config.Config

	// Infrastructure. DB and Sessions are mutually exclusive: exactly one
	// is non-nil depending on the configured storage backend.
	DB       *infradb.PostgresDB
	Sessions *scs.SessionManager
	Cache    cache.Cache

	AuthorRepo authorrepo.Repository
	BookRepo   bookrepo.Repository

	AuthorService authorservice.Service
	BookService   bookservice.Service

	AuthorHandler *authorhandler.AuthorHandler
	BookHandler   *bookhandler.BookHandler
}

// NewContainer loads configuration and wires the full dependency graph:
// config, infrastructure, repositories, services, handlers, in that order.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	c := &Container{Config: cfg}

	var tx database.Transactor

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := infradb.NewPostgresDB(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db

		c.Cache = cache.NewNoop()
		if cfg.Redis.Enabled {
			redisCache, err := infracache.NewRedisCache(ctx, cfg.Redis)
			if err != nil {
				return nil, fmt.Errorf("failed to initialize redis: %w", err)
			}
			c.Cache = redisCache
		}

		c.AuthorRepo = authorrepo.NewPostgresRepository(db.Pool, c.Cache)
		c.BookRepo = bookrepo.NewPostgresRepository(db.Pool, c.Cache)
		tx = database.NewTransactor(db.Pool)

	case config.BackendSession:
		c.Sessions = session.NewManager(cfg.Session)
		store := session.NewStore(c.Sessions)

		c.Cache = cache.NewNoop()
		c.AuthorRepo = authorrepo.NewSessionRepository(store)
		c.BookRepo = bookrepo.NewSessionRepository(store)
		tx = database.NewNoopTransactor()

	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}

	c.AuthorService = authorservice.NewAuthorService(c.AuthorRepo, c.BookRepo, tx)
	c.BookService = bookservice.NewBookService(c.BookRepo, c.AuthorRepo)

	c.AuthorHandler = authorhandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookhandler.NewBookHandler(c.BookService, c.AuthorService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
