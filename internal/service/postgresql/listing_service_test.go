package service

import (
	"testing"

	entity "tradepost/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListingFixture() (*ListingService, *fakeStore, *fakeUserChecker) {
	store := newFakeStore()
	users := &fakeUserChecker{missing: make(map[uuid.UUID]bool)}
	svc := NewListingService(&fakeListingRepo{store: store}, users,
		entity.StateIDs{Published: 1, InProcess: 5, Approved: 6})
	return svc, store, users
}

func TestCreateListing(t *testing.T) {
	svc, store, users := newListingFixture()
	author := uuid.New()

	listing, err := svc.CreateListing(author, entity.CreateListingInput{
		Title:       "Mountain bike",
		Description: "Barely used",
		Price:       250,
	})
	require.NoError(t, err)
	assert.Equal(t, author, listing.AuthorID)
	assert.Equal(t, 1, listing.StateID)
	assert.NotNil(t, store.listings[listing.ID])

	ghost := uuid.New()
	users.missing[ghost] = true
	_, err = svc.CreateListing(ghost, entity.CreateListingInput{Title: "x", Price: 1})
	assert.ErrorIs(t, err, ErrUnknownAuthor)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestGetListingByID(t *testing.T) {
	svc, store, _ := newListingFixture()
	l := store.addListing(uuid.New(), 1)

	got, err := svc.GetListingByID(l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)

	_, err = svc.GetListingByID(uuid.New())
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestGetAllListingsKeywordFilter(t *testing.T) {
	svc, store, _ := newListingFixture()
	author := uuid.New()
	bike := store.addListing(author, 1)
	bike.Title = "Mountain bike"
	sofa := store.addListing(author, 1)
	sofa.Title = "Leather sofa"

	all, err := svc.GetAllListings(entity.ListingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.GetAllListings(entity.ListingFilter{Keyword: "bike"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, bike.ID, filtered[0].ID)
}

func TestUpdateListing(t *testing.T) {
	svc, store, _ := newListingFixture()
	l := store.addListing(uuid.New(), 1)

	updated, err := svc.UpdateListing(l.ID, entity.UpdateListingInput{Title: "New title", Price: 500})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, 500, updated.Price)
	// Untouched fields survive partial updates.
	assert.Equal(t, l.AuthorID, updated.AuthorID)
	assert.Equal(t, 1, updated.StateID)

	_, err = svc.UpdateListing(uuid.New(), entity.UpdateListingInput{Title: "x"})
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestDeleteListing(t *testing.T) {
	svc, store, _ := newListingFixture()
	l := store.addListing(uuid.New(), 1)

	require.NoError(t, svc.DeleteListing(l.ID))
	assert.Nil(t, store.listings[l.ID])

	assert.ErrorIs(t, svc.DeleteListing(l.ID), ErrListingNotFound)
}
