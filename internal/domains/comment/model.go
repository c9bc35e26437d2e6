package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a threaded reply on a review. ParentID is nil for a
// top-of-thread comment; a parent always belongs to the same
// review.
type Comment struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	ReviewID    uuid.UUID  `json:"review" db:"review_id"`
	UserID      uuid.UUID  `json:"user" db:"user_id"`
	ParentID    *uuid.UUID `json:"parent_comment" db:"parent_id"`
	CommentText string     `json:"comment_text" db:"comment_text"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

func (c *Comment) OwnedBy() uuid.UUID {
	return c.UserID
}

// CommentResponse is the read shape: the author rendered as a
// username, the thread parent kept as an identifier so clients can
// rebuild the tree.
type CommentResponse struct {
	ID            uuid.UUID  `json:"id"`
	Review        uuid.UUID  `json:"review"`
	User          string     `json:"user"`
	ParentComment *uuid.UUID `json:"parent_comment"`
	CommentText   string     `json:"comment_text"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
