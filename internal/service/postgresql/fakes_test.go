package service

import (
	"fmt"
	"strings"

	entity "tradepost/internal/domain"

	"github.com/google/uuid"
)

// In-memory stand-ins for the postgres and mongo repositories. The fake
// transaction methods mirror the status guards of the real ones so state
// machine violations surface the same way.

type fakeStore struct {
	exchanges map[uuid.UUID]*entity.Exchange
	listings  map[uuid.UUID]*entity.Listing
	states    map[int]entity.State
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		exchanges: make(map[uuid.UUID]*entity.Exchange),
		listings:  make(map[uuid.UUID]*entity.Listing),
		states: map[int]entity.State{
			1: {ID: 1, Name: "Published"},
			5: {ID: 5, Name: "InProcess"},
			6: {ID: 6, Name: "Approved"},
		},
	}
}

func (s *fakeStore) addListing(authorID uuid.UUID, stateID int) *entity.Listing {
	l := &entity.Listing{
		ID:       uuid.New(),
		Title:    "listing " + uuid.NewString()[:8],
		Price:    100,
		AuthorID: authorID,
		StateID:  stateID,
	}
	s.listings[l.ID] = l
	return l
}

type fakeExchangeRepo struct {
	store *fakeStore
}

func (r *fakeExchangeRepo) CreateExchange(e *entity.Exchange) error {
	copied := *e
	r.store.exchanges[e.ID] = &copied
	return nil
}

func (r *fakeExchangeRepo) GetExchangeByID(id uuid.UUID) (*entity.Exchange, error) {
	e, ok := r.store.exchanges[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExchangeRepo) ExistsPendingBetween(requestedID, offeredID uuid.UUID) (bool, error) {
	for _, e := range r.store.exchanges {
		if e.RequestedListingID == requestedID && e.OfferedListingID == offeredID &&
			e.Status == entity.ExchangeStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeExchangeRepo) FindPendingByRequestedListing(listingID uuid.UUID) ([]entity.Exchange, error) {
	var out []entity.Exchange
	for _, e := range r.store.exchanges {
		if e.RequestedListingID == listingID && e.Status == entity.ExchangeStatusPending {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeExchangeRepo) FindByParticipant(userID uuid.UUID, asOwner bool, statuses []string) ([]entity.Exchange, error) {
	var out []entity.Exchange
	for _, e := range r.store.exchanges {
		id := e.RequesterID
		if asOwner {
			id = e.OwnerID
		}
		if id != userID {
			continue
		}
		for _, st := range statuses {
			if e.Status == st {
				out = append(out, *e)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeExchangeRepo) MarkRejected(e *entity.Exchange) error {
	stored := r.store.exchanges[e.ID]
	if stored == nil || stored.Status != entity.ExchangeStatusPending {
		return fmt.Errorf("exchange is not pending: %w", entity.ErrInvalidState)
	}
	stored.Status = entity.ExchangeStatusRejected
	stored.RespondedAt = e.RespondedAt
	return nil
}

func (r *fakeExchangeRepo) AcceptExchangeTransaction(e *entity.Exchange, inProcessStateID int) error {
	stored := r.store.exchanges[e.ID]
	if stored == nil || stored.Status != entity.ExchangeStatusPending {
		return fmt.Errorf("exchange is not pending: %w", entity.ErrInvalidState)
	}
	stored.Status = entity.ExchangeStatusAccepted
	stored.RespondedAt = e.RespondedAt

	r.store.listings[stored.RequestedListingID].StateID = inProcessStateID
	r.store.listings[stored.OfferedListingID].StateID = inProcessStateID

	for _, other := range r.store.exchanges {
		if other.ID != stored.ID && other.RequestedListingID == stored.RequestedListingID &&
			other.Status == entity.ExchangeStatusPending {
			other.Status = entity.ExchangeStatusRejected
			other.RespondedAt = e.RespondedAt
		}
	}
	return nil
}

func (r *fakeExchangeRepo) ConfirmExchangeTransaction(id uuid.UUID, asOwner bool, approvedStateID int) (*entity.Exchange, error) {
	stored := r.store.exchanges[id]
	if stored == nil || stored.Status != entity.ExchangeStatusAccepted {
		return nil, fmt.Errorf("exchange is not accepted: %w", entity.ErrInvalidState)
	}
	if asOwner {
		stored.OwnerConfirmation = entity.ConfirmationConfirmed
	} else {
		stored.RequesterConfirmation = entity.ConfirmationConfirmed
	}
	if stored.FullyConfirmed() {
		r.store.listings[stored.RequestedListingID].StateID = approvedStateID
		r.store.listings[stored.OfferedListingID].StateID = approvedStateID
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeExchangeRepo) RevertExchangeTransaction(id uuid.UUID, asOwner bool, publishedStateID int) (*entity.Exchange, error) {
	stored := r.store.exchanges[id]
	if stored == nil || stored.Status != entity.ExchangeStatusAccepted {
		return nil, fmt.Errorf("exchange is not accepted: %w", entity.ErrInvalidState)
	}
	if asOwner {
		stored.OwnerConfirmation = entity.ConfirmationReverted
	} else {
		stored.RequesterConfirmation = entity.ConfirmationReverted
	}
	stored.Status = entity.ExchangeStatusCancelled
	r.store.listings[stored.RequestedListingID].StateID = publishedStateID
	r.store.listings[stored.OfferedListingID].StateID = publishedStateID
	copied := *stored
	return &copied, nil
}

type fakeListingRepo struct {
	store *fakeStore
}

func (r *fakeListingRepo) CreateListing(l *entity.Listing) error {
	copied := *l
	r.store.listings[l.ID] = &copied
	return nil
}

func (r *fakeListingRepo) GetListingByID(id uuid.UUID) (*entity.Listing, error) {
	l, ok := r.store.listings[id]
	if !ok {
		return nil, nil
	}
	copied := *l
	return &copied, nil
}

func (r *fakeListingRepo) GetAllListings(filter entity.ListingFilter) ([]entity.Listing, error) {
	var out []entity.Listing
	for _, l := range r.store.listings {
		if filter.Keyword != "" &&
			!strings.Contains(strings.ToLower(l.Title), strings.ToLower(filter.Keyword)) &&
			!strings.Contains(strings.ToLower(l.Description), strings.ToLower(filter.Keyword)) {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (r *fakeListingRepo) GetListingsByAuthor(authorID uuid.UUID) ([]entity.Listing, error) {
	var out []entity.Listing
	for _, l := range r.store.listings {
		if l.AuthorID == authorID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) UpdateListing(l *entity.Listing) error {
	copied := *l
	r.store.listings[l.ID] = &copied
	return nil
}

func (r *fakeListingRepo) DeleteListing(id uuid.UUID) error {
	delete(r.store.listings, id)
	return nil
}

type fakeStateRepo struct {
	store *fakeStore
}

func (r *fakeStateRepo) GetAllStates() ([]entity.State, error) {
	var out []entity.State
	for _, s := range r.store.states {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeStateRepo) GetStateByID(id int) (*entity.State, error) {
	s, ok := r.store.states[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeStateRepo) SeedStates(states []entity.State) error {
	for _, s := range states {
		if _, ok := r.store.states[s.ID]; !ok {
			r.store.states[s.ID] = s
		}
	}
	return nil
}

type fakeCommentRepo struct {
	comments map[uuid.UUID]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uuid.UUID]*entity.Comment)}
}

func (r *fakeCommentRepo) CreateComment(c *entity.Comment) error {
	copied := *c
	r.comments[c.ID] = &copied
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(id uuid.UUID) (*entity.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCommentRepo) GetCommentsByListing(listingID uuid.UUID) ([]entity.Comment, error) {
	var out []entity.Comment
	for _, c := range r.comments {
		if c.ListingID == listingID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) GetCommentsByAuthor(authorID uuid.UUID) ([]entity.Comment, error) {
	var out []entity.Comment
	for _, c := range r.comments {
		if c.AuthorID == authorID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) CountByListing(listingID uuid.UUID) (int64, error) {
	list, _ := r.GetCommentsByListing(listingID)
	return int64(len(list)), nil
}

func (r *fakeCommentRepo) UpdateComment(c *entity.Comment) error {
	copied := *c
	r.comments[c.ID] = &copied
	return nil
}

func (r *fakeCommentRepo) DeleteComment(id uuid.UUID) error {
	delete(r.comments, id)
	return nil
}

type fakeLogRepo struct {
	histories     []*entity.StatusHistory
	notifications []*entity.Notification
}

func (r *fakeLogRepo) SaveHistoryStatus(doc *entity.StatusHistory) error {
	r.histories = append(r.histories, doc)
	return nil
}

func (r *fakeLogRepo) SaveNotification(doc *entity.Notification) error {
	r.notifications = append(r.notifications, doc)
	return nil
}

type fakeUserChecker struct {
	missing map[uuid.UUID]bool
	err     error
}

func (c *fakeUserChecker) UserExists(userID uuid.UUID) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	return !c.missing[userID], nil
}
