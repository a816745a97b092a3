package service

import (
	"context"
	"time"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/repository"
)

type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

func (s *contactServiceImpl) Submit(ctx context.Context, c *model.Contact) error {
	c.Status = "New"
	if c.Priority == "" {
		c.Priority = "Medium"
	}
	if c.Source == "" {
		c.Source = "website"
	}
	c.IsRead = false
	return s.repo.Create(ctx, c)
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *contactServiceImpl) Get(ctx context.Context, id string) (*model.Contact, error) {
	return s.repo.FindByIDMarkRead(ctx, id)
}

func (s *contactServiceImpl) SetStatus(ctx context.Context, id, status string) (*model.Contact, error) {
	return s.repo.SetStatus(ctx, id, status)
}

func (s *contactServiceImpl) SetPriority(ctx context.Context, id, priority string) (*model.Contact, error) {
	return s.repo.SetPriority(ctx, id, priority)
}

func (s *contactServiceImpl) Assign(ctx context.Context, id, adminID string) (*model.Contact, error) {
	return s.repo.Assign(ctx, id, adminID)
}

func (s *contactServiceImpl) SetFollowUp(ctx context.Context, id string, at *time.Time) (*model.Contact, error) {
	return s.repo.SetFollowUp(ctx, id, at)
}

func (s *contactServiceImpl) AddNote(ctx context.Context, id, text, author string) (*model.Contact, error) {
	note := model.ContactNote{
		Text:      text,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.AddNote(ctx, id, note)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *contactServiceImpl) Stats(ctx context.Context) (*model.ContactStats, error) {
	return s.repo.Stats(ctx)
}
