package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"booktracker-backend/internal/domains/comment"
	"booktracker-backend/internal/shared/policy"
)

// maxThreadDepth bounds the ancestor walk in validateParent so a
// corrupted chain cannot loop forever.
const maxThreadDepth = 100

type commentService struct {
	commentRepo comment.Repository
}

func NewCommentService(commentRepo comment.Repository) comment.Service {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) Create(ctx context.Context, requester, reviewID uuid.UUID, req comment.CommentRequest) (*comment.CommentResponse, error) {
	if requester == uuid.Nil {
		return nil, policy.ErrAnonymous
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	// A new comment has no identity yet, so only the same-review
	// constraint applies to its parent.
	if err := s.validateParent(ctx, uuid.Nil, reviewID, req.ParentID); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &comment.Comment{
		ID:          uuid.New(),
		ReviewID:    reviewID,
		UserID:      requester,
		ParentID:    req.ParentID,
		CommentText: req.CommentText,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, c.ID)
}

func (s *commentService) Get(ctx context.Context, id uuid.UUID) (*comment.CommentResponse, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *commentService) Update(ctx context.Context, requester, id uuid.UUID, req comment.CommentRequest) (*comment.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.commentRepo.GetEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanModify(requester, c); err != nil {
		return nil, err
	}
	if err := s.validateParent(ctx, c.ID, c.ReviewID, req.ParentID); err != nil {
		return nil, err
	}

	c.CommentText = req.CommentText
	c.ParentID = req.ParentID
	c.UpdatedAt = time.Now()

	if err := s.commentRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, id)
}

func (s *commentService) Delete(ctx context.Context, requester, id uuid.UUID) error {
	c, err := s.commentRepo.GetEntity(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanModify(requester, c); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, id)
}

func (s *commentService) List(ctx context.Context, f *comment.Filter) ([]comment.CommentResponse, int64, error) {
	return s.commentRepo.List(ctx, f)
}

// validateParent checks a proposed parent: it must exist, belong
// to the given review, and the resulting chain must not run back
// through selfID. Walking the whole ancestor chain rejects longer
// cycles, not just a comment parenting itself.
func (s *commentService) validateParent(ctx context.Context, selfID, reviewID uuid.UUID, parentID *uuid.UUID) error {
	if parentID == nil {
		return nil
	}
	if selfID != uuid.Nil && *parentID == selfID {
		return validation.Errors{"parent_comment": comment.ErrParentCycle}
	}

	parent, err := s.commentRepo.GetEntity(ctx, *parentID)
	if err != nil {
		return validation.Errors{"parent_comment": comment.ErrParentNotFound}
	}
	if parent.ReviewID != reviewID {
		return validation.Errors{"parent_comment": comment.ErrParentDifferentReview}
	}

	for depth := 0; parent.ParentID != nil && depth < maxThreadDepth; depth++ {
		if selfID != uuid.Nil && *parent.ParentID == selfID {
			return validation.Errors{"parent_comment": comment.ErrParentCycle}
		}
		parent, err = s.commentRepo.GetEntity(ctx, *parent.ParentID)
		if err != nil {
			return err
		}
	}
	return nil
}
