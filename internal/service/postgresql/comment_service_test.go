package service

import (
	"testing"

	entity "tradepost/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture() (*CommentService, *fakeStore, *fakeCommentRepo, *fakeUserChecker) {
	store := newFakeStore()
	comments := newFakeCommentRepo()
	users := &fakeUserChecker{missing: make(map[uuid.UUID]bool)}
	svc := NewCommentService(comments, &fakeListingRepo{store: store}, users)
	return svc, store, comments, users
}

func TestCreateComment(t *testing.T) {
	svc, store, _, users := newCommentFixture()
	listing := store.addListing(uuid.New(), 1)
	author := uuid.New()

	c, err := svc.CreateComment(author, entity.CreateCommentInput{
		Text:      "Great condition",
		ListingID: listing.ID.String(),
		Rating:    4,
	})
	require.NoError(t, err)
	assert.Equal(t, author, c.AuthorID)
	assert.Equal(t, listing.ID, c.ListingID)

	_, err = svc.CreateComment(author, entity.CreateCommentInput{
		Text: "bad id", ListingID: "nope", Rating: 3,
	})
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = svc.CreateComment(author, entity.CreateCommentInput{
		Text: "too high", ListingID: listing.ID.String(), Rating: 6,
	})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.CreateComment(author, entity.CreateCommentInput{
		Text: "gone", ListingID: uuid.NewString(), Rating: 3,
	})
	assert.ErrorIs(t, err, ErrListingNotFound)

	ghost := uuid.New()
	users.missing[ghost] = true
	_, err = svc.CreateComment(ghost, entity.CreateCommentInput{
		Text: "who", ListingID: listing.ID.String(), Rating: 3,
	})
	assert.ErrorIs(t, err, ErrUnknownAuthor)
}

func TestUpdateComment(t *testing.T) {
	svc, store, _, _ := newCommentFixture()
	listing := store.addListing(uuid.New(), 1)
	author := uuid.New()
	c, err := svc.CreateComment(author, entity.CreateCommentInput{
		Text: "ok", ListingID: listing.ID.String(), Rating: 3,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateComment(author, c.ID, entity.UpdateCommentInput{Text: "better", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, "better", updated.Text)
	assert.Equal(t, 5, updated.Rating)

	_, err = svc.UpdateComment(author, c.ID, entity.UpdateCommentInput{Rating: 9})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.UpdateComment(uuid.New(), c.ID, entity.UpdateCommentInput{Text: "not mine"})
	assert.ErrorIs(t, err, ErrNotCommentOwner)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	_, err = svc.UpdateComment(author, uuid.New(), entity.UpdateCommentInput{Text: "x"})
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteComment(t *testing.T) {
	svc, store, comments, _ := newCommentFixture()
	listing := store.addListing(uuid.New(), 1)
	author := uuid.New()
	c, err := svc.CreateComment(author, entity.CreateCommentInput{
		Text: "ok", ListingID: listing.ID.String(), Rating: 3,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteComment(uuid.New(), c.ID), ErrNotCommentOwner)

	require.NoError(t, svc.DeleteComment(author, c.ID))
	assert.Nil(t, comments.comments[c.ID])
	assert.ErrorIs(t, svc.DeleteComment(author, c.ID), ErrCommentNotFound)
}

func TestCountByListing(t *testing.T) {
	svc, store, _, _ := newCommentFixture()
	listing := store.addListing(uuid.New(), 1)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateComment(uuid.New(), entity.CreateCommentInput{
			Text: "c", ListingID: listing.ID.String(), Rating: 4,
		})
		require.NoError(t, err)
	}

	count, err := svc.CountByListing(listing.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
