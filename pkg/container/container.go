// Package container builds the application dependency graph:
// config, then infrastructure, then repositories, services and
// handlers for every domain.
package container

import (
	"context"
	"fmt"
	"time"

	"booktracker-backend/internal/config"
	infraCache "booktracker-backend/internal/infrastructure/cache"
	"booktracker-backend/internal/infrastructure/database"
	"booktracker-backend/pkg/cache"
	"booktracker-backend/pkg/jwt"
	"booktracker-backend/pkg/logger"

	"booktracker-backend/internal/domains/author"
	authorHandler "booktracker-backend/internal/domains/author/handler"
	authorRepo "booktracker-backend/internal/domains/author/repository"
	authorService "booktracker-backend/internal/domains/author/service"
	"booktracker-backend/internal/domains/book"
	bookHandler "booktracker-backend/internal/domains/book/handler"
	bookRepo "booktracker-backend/internal/domains/book/repository"
	bookService "booktracker-backend/internal/domains/book/service"
	"booktracker-backend/internal/domains/bookshelf"
	bookshelfHandler "booktracker-backend/internal/domains/bookshelf/handler"
	bookshelfRepo "booktracker-backend/internal/domains/bookshelf/repository"
	bookshelfService "booktracker-backend/internal/domains/bookshelf/service"
	"booktracker-backend/internal/domains/comment"
	commentHandler "booktracker-backend/internal/domains/comment/handler"
	commentRepo "booktracker-backend/internal/domains/comment/repository"
	commentService "booktracker-backend/internal/domains/comment/service"
	"booktracker-backend/internal/domains/genre"
	genreHandler "booktracker-backend/internal/domains/genre/handler"
	genreRepo "booktracker-backend/internal/domains/genre/repository"
	genreService "booktracker-backend/internal/domains/genre/service"
	"booktracker-backend/internal/domains/publisher"
	publisherHandler "booktracker-backend/internal/domains/publisher/handler"
	publisherRepo "booktracker-backend/internal/domains/publisher/repository"
	publisherService "booktracker-backend/internal/domains/publisher/service"
	"booktracker-backend/internal/domains/readingstatus"
	readingstatusHandler "booktracker-backend/internal/domains/readingstatus/handler"
	readingstatusRepo "booktracker-backend/internal/domains/readingstatus/repository"
	readingstatusService "booktracker-backend/internal/domains/readingstatus/service"
	"booktracker-backend/internal/domains/review"
	reviewHandler "booktracker-backend/internal/domains/review/handler"
	reviewRepo "booktracker-backend/internal/domains/review/repository"
	reviewService "booktracker-backend/internal/domains/review/service"
	"booktracker-backend/internal/domains/user"
	userHandler "booktracker-backend/internal/domains/user/handler"
	userRepo "booktracker-backend/internal/domains/user/repository"
	userService "booktracker-backend/internal/domains/user/service"
)

type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	UserRepo          user.Repository
	AuthorRepo        author.Repository
	PublisherRepo     publisher.Repository
	GenreRepo         genre.Repository
	BookRepo          book.Repository
	ReviewRepo        review.Repository
	CommentRepo       comment.Repository
	ReadingStatusRepo readingstatus.Repository
	BookshelfRepo     bookshelf.Repository

	UserService          user.Service
	AuthorService        author.Service
	PublisherService     publisher.Service
	GenreService         genre.Service
	BookService          book.Service
	ReviewService        review.Service
	CommentService       comment.Service
	ReadingStatusService readingstatus.Service
	BookshelfService     bookshelf.Service

	UserHandler          *userHandler.UserHandler
	AuthorHandler        *authorHandler.AuthorHandler
	PublisherHandler     *publisherHandler.PublisherHandler
	GenreHandler         *genreHandler.GenreHandler
	BookHandler          *bookHandler.BookHandler
	ReviewHandler        *reviewHandler.ReviewHandler
	CommentHandler       *commentHandler.CommentHandler
	ReadingStatusHandler *readingstatusHandler.ReadingStatusHandler
	BookshelfHandler     *bookshelfHandler.BookshelfHandler
}

// NewContainer wires the whole graph bottom-up. A failure at any
// step aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	c.Cache = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.PublisherRepo = publisherRepo.NewPostgresRepository(db.Pool)
	c.GenreRepo = genreRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.ReviewRepo = reviewRepo.NewPostgresRepository(db.Pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(db.Pool)
	c.ReadingStatusRepo = readingstatusRepo.NewPostgresRepository(db.Pool)
	c.BookshelfRepo = bookshelfRepo.NewPostgresRepository(db.Pool)

	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.PublisherService = publisherService.NewPublisherService(c.PublisherRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)
	c.ReadingStatusService = readingstatusService.NewReadingStatusService(c.ReadingStatusRepo)
	c.BookshelfService = bookshelfService.NewBookshelfService(c.BookshelfRepo)

	pageDefaults := cfg.API
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, pageDefaults.DefaultPageSize, pageDefaults.MaxPageSize)
	c.PublisherHandler = publisherHandler.NewPublisherHandler(c.PublisherService, pageDefaults.DefaultPageSize, pageDefaults.MaxPageSize)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService, pageDefaults.DefaultPageSize, pageDefaults.MaxPageSize)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService, pageDefaults.DefaultPageSize, pageDefaults.MaxPageSize)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService, pageDefaults.DefaultPageSize, pageDefaults.MaxPageSize)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService, pageDefaults.DefaultPageSize, pageDefaults.MaxPageSize)
	c.ReadingStatusHandler = readingstatusHandler.NewReadingStatusHandler(c.ReadingStatusService, pageDefaults.DefaultPageSize, pageDefaults.MaxPageSize)
	c.BookshelfHandler = bookshelfHandler.NewBookshelfHandler(c.BookshelfService, pageDefaults.DefaultPageSize, pageDefaults.MaxPageSize)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
