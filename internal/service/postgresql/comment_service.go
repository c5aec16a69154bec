package service

import (
	"fmt"
	"log"
	"time"

	entity "tradepost/internal/domain"
	repo "tradepost/internal/repository/postgresql"

	"github.com/google/uuid"
)

var (
	ErrCommentNotFound = fmt.Errorf("comment not found: %w", entity.ErrNotFound)
	ErrInvalidRating   = fmt.Errorf("rating must be between 1 and 5: %w", entity.ErrValidation)
	ErrNotCommentOwner = fmt.Errorf("you can only modify your own comments: %w", entity.ErrUnauthorized)
)

type CommentService struct {
	commentRepo repo.CommentRepository
	listingRepo repo.ListingRepository
	users       UserExistenceChecker
}

func NewCommentService(commentRepo repo.CommentRepository, listingRepo repo.ListingRepository, users UserExistenceChecker) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		listingRepo: listingRepo,
		users:       users,
	}
}

func (s *CommentService) CreateComment(authorID uuid.UUID, input entity.CreateCommentInput) (*entity.Comment, error) {
	listingID, err := uuid.Parse(input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("invalid listing_id: %w", entity.ErrValidation)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	listing, err := s.listingRepo.GetListingByID(listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	if ok, err := s.users.UserExists(authorID); err != nil || !ok {
		if err != nil {
			log.Printf("Warning: user existence check failed for %s: %v", authorID.String(), err)
		}
		return nil, ErrUnknownAuthor
	}

	comment := &entity.Comment{
		ID:        uuid.New(),
		Text:      input.Text,
		AuthorID:  authorID,
		ListingID: listingID,
		Rating:    input.Rating,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) GetCommentsByListing(listingID uuid.UUID) ([]entity.Comment, error) {
	return s.commentRepo.GetCommentsByListing(listingID)
}

func (s *CommentService) GetCommentsByAuthor(authorID uuid.UUID) ([]entity.Comment, error) {
	return s.commentRepo.GetCommentsByAuthor(authorID)
}

func (s *CommentService) CountByListing(listingID uuid.UUID) (int64, error) {
	return s.commentRepo.CountByListing(listingID)
}

func (s *CommentService) UpdateComment(userID, commentID uuid.UUID, input entity.UpdateCommentInput) (*entity.Comment, error) {
	comment, err := s.commentRepo.GetCommentByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.AuthorID != userID {
		return nil, ErrNotCommentOwner
	}

	if input.Text != "" {
		comment.Text = input.Text
	}
	if input.Rating != 0 {
		if input.Rating < 1 || input.Rating > 5 {
			return nil, ErrInvalidRating
		}
		comment.Rating = input.Rating
	}

	if err := s.commentRepo.UpdateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(userID, commentID uuid.UUID) error {
	comment, err := s.commentRepo.GetCommentByID(commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.AuthorID != userID {
		return ErrNotCommentOwner
	}
	return s.commentRepo.DeleteComment(commentID)
}
