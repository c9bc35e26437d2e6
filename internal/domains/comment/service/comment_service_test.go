package service

import (
	"context"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktracker-backend/internal/domains/comment"
	"booktracker-backend/internal/shared/policy"
)

type fakeRepo struct {
	comments map[uuid.UUID]*comment.Comment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{comments: make(map[uuid.UUID]*comment.Comment)}
}

func (f *fakeRepo) Create(_ context.Context, c *comment.Comment) error {
	cp := *c
	f.comments[c.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(_ context.Context, c *comment.Comment) error {
	if _, ok := f.comments[c.ID]; !ok {
		return comment.ErrCommentNotFound
	}
	cp := *c
	f.comments[c.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.comments[id]; !ok {
		return comment.ErrCommentNotFound
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeRepo) GetEntity(_ context.Context, id uuid.UUID) (*comment.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*comment.CommentResponse, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	return &comment.CommentResponse{
		ID:            c.ID,
		Review:        c.ReviewID,
		User:          "tester",
		ParentComment: c.ParentID,
		CommentText:   c.CommentText,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}, nil
}

func (f *fakeRepo) List(_ context.Context, _ *comment.Filter) ([]comment.CommentResponse, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepo) add(reviewID, userID uuid.UUID, parentID *uuid.UUID) *comment.Comment {
	c := &comment.Comment{
		ID:          uuid.New(),
		ReviewID:    reviewID,
		UserID:      userID,
		ParentID:    parentID,
		CommentText: "an existing comment",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.comments[c.ID] = c
	return c
}

func parentField(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "parent_comment")
}

func TestCreateReply(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCommentService(repo)

	reviewID := uuid.New()
	userID := uuid.New()
	parent := repo.add(reviewID, userID, nil)

	resp, err := svc.Create(context.Background(), userID, reviewID, comment.CommentRequest{
		CommentText: "replying here",
		ParentID:    &parent.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ParentComment)
	assert.Equal(t, parent.ID, *resp.ParentComment)
}

func TestCreateAnonymousDenied(t *testing.T) {
	svc := NewCommentService(newFakeRepo())

	_, err := svc.Create(context.Background(), uuid.Nil, uuid.New(), comment.CommentRequest{
		CommentText: "should not land",
	})
	assert.ErrorIs(t, err, policy.ErrAnonymous)
}

func TestCreateParentFromOtherReview(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCommentService(repo)

	userID := uuid.New()
	otherReviewParent := repo.add(uuid.New(), userID, nil)

	_, err := svc.Create(context.Background(), userID, uuid.New(), comment.CommentRequest{
		CommentText: "wrong thread",
		ParentID:    &otherReviewParent.ID,
	})
	parentField(t, err)
}

func TestCreateParentMissing(t *testing.T) {
	svc := NewCommentService(newFakeRepo())

	ghost := uuid.New()
	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), comment.CommentRequest{
		CommentText: "orphan reply",
		ParentID:    &ghost,
	})
	parentField(t, err)
}

func TestUpdateSelfParentRejected(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCommentService(repo)

	userID := uuid.New()
	c := repo.add(uuid.New(), userID, nil)

	_, err := svc.Update(context.Background(), userID, c.ID, comment.CommentRequest{
		CommentText: "still valid text",
		ParentID:    &c.ID,
	})
	parentField(t, err)
}

func TestUpdateLongerCycleRejected(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCommentService(repo)

	reviewID := uuid.New()
	userID := uuid.New()

	// a <- b <- c; re-parenting a under c closes the loop
	a := repo.add(reviewID, userID, nil)
	b := repo.add(reviewID, userID, &a.ID)
	c := repo.add(reviewID, userID, &b.ID)

	_, err := svc.Update(context.Background(), userID, a.ID, comment.CommentRequest{
		CommentText: "still valid text",
		ParentID:    &c.ID,
	})
	parentField(t, err)
}

func TestUpdateReparentWithinThread(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCommentService(repo)

	reviewID := uuid.New()
	userID := uuid.New()

	a := repo.add(reviewID, userID, nil)
	b := repo.add(reviewID, userID, &a.ID)
	c := repo.add(reviewID, userID, nil)

	// moving c under b is a legal re-parent
	resp, err := svc.Update(context.Background(), userID, c.ID, comment.CommentRequest{
		CommentText: "moved under b",
		ParentID:    &b.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ParentComment)
	assert.Equal(t, b.ID, *resp.ParentComment)
}

func TestUpdateNotOwnerDenied(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCommentService(repo)

	c := repo.add(uuid.New(), uuid.New(), nil)

	_, err := svc.Update(context.Background(), uuid.New(), c.ID, comment.CommentRequest{
		CommentText: "hostile takeover",
	})
	assert.ErrorIs(t, err, policy.ErrNotOwner)
}

func TestCommentTextTooShort(t *testing.T) {
	svc := NewCommentService(newFakeRepo())

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), comment.CommentRequest{
		CommentText: "  a ",
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "comment_text")
}
