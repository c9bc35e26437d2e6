package genre

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/response"
)

// Genre is the simplest catalog entity: a unique name and a
// description, no cross-field invariants.
type Genre struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type GenreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r GenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
	)
}

var (
	ErrGenreNotFound = errors.New("genre not found")
	ErrNameTaken     = errors.New("a genre with this name already exists")
)

var errorStatus = map[error]int{
	ErrGenreNotFound: http.StatusNotFound,
	ErrNameTaken:     http.StatusConflict,
}

func HandleError(c *gin.Context, err error) {
	response.RenderError(c, err, errorStatus)
}

type Repository interface {
	Create(ctx context.Context, g *Genre) error
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)
	Update(ctx context.Context, g *Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, p query.Pagination) ([]Genre, int64, error)
}

type Service interface {
	Create(ctx context.Context, req GenreRequest) (*Genre, error)
	Get(ctx context.Context, id uuid.UUID) (*Genre, error)
	Update(ctx context.Context, id uuid.UUID, req GenreRequest) (*Genre, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, p query.Pagination) ([]Genre, int64, error)
}
