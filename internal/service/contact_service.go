package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/repository"
	"github.com/cloudpower/site-backend/pkg/logger"
)

const (
	msgContactNotFound = "聯絡訊息不存在"

	notifyTimeout = 30 * time.Second
)

// Notifier delivers an HTML mail. *mailer.Mailer implements it.
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// ContactService defines the business logic for the contact form
type ContactService interface {
	Create(ctx context.Context, req *domain.CreateContactRequest) (*domain.Contact, error)
	List(ctx context.Context, params ListParams) (*domain.Page[domain.Contact], error)
	Get(ctx context.Context, id string) (*domain.Contact, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	// Wait blocks until in-flight notification mails finish.
	Wait()
}

type contactService struct {
	repo     repository.ContentRepository[domain.Contact]
	notifier Notifier
	notifyTo string
	location *time.Location
	now      func() time.Time
	pending  sync.WaitGroup
}

// NewContactService creates a new ContactService. Notifications are sent
// to notifyTo; an empty notifyTo disables them.
func NewContactService(repo repository.ContentRepository[domain.Contact], notifier Notifier, notifyTo string, loc *time.Location) ContactService {
	if loc == nil {
		loc = time.UTC
	}
	return &contactService{
		repo:     repo,
		notifier: notifier,
		notifyTo: notifyTo,
		location: loc,
		now:      time.Now,
	}
}

// Create stores the message and mails the notification in the background.
// Mail failures never reach the caller.
func (s *contactService) Create(ctx context.Context, req *domain.CreateContactRequest) (*domain.Contact, error) {
	contact := &domain.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	logger.GetLogger().Info().Str("id", contact.ID).Msg("contact message received")

	msg := *contact
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.notify(&msg)
	}()

	return contact, nil
}

func (s *contactService) notify(c *domain.Contact) {
	log := logger.GetLogger()
	if s.notifyTo == "" || s.notifier == nil {
		log.Warn().Str("id", c.ID).Msg("contact notify address not set, skipping mail")
		return
	}

	subject, body, err := s.renderNotification(c)
	if err != nil {
		log.Error().Err(err).Str("id", c.ID).Msg("render contact notification")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	if err := s.notifier.Send(ctx, s.notifyTo, subject, body); err != nil {
		log.Error().Err(err).Str("id", c.ID).Msg("send contact notification")
		return
	}
	log.Info().Str("id", c.ID).Msg("contact notification sent")
}

func (s *contactService) renderNotification(c *domain.Contact) (string, string, error) {
	now := s.now().In(s.location)
	subject := fmt.Sprintf("[聯絡表單] 來自 %s 的新訊息 時間 %s", c.Name, now.Format("2006-01-02 15:04:05"))

	var buf bytes.Buffer
	err := contactMailTemplate.Execute(&buf, map[string]string{
		"Name":      c.Name,
		"Email":     c.Email,
		"Phone":     c.Phone,
		"Message":   c.Message,
		"Timestamp": now.Format("2006/01/02 15:04:05"),
	})
	if err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}

func (s *contactService) List(ctx context.Context, params ListParams) (*domain.Page[domain.Contact], error) {
	items, pagination, err := s.repo.List(ctx, repository.ListFilter{
		Page:  params.Page,
		Limit: params.Limit,
		Query: params.Query,
	})
	if err != nil {
		return nil, err
	}
	return &domain.Page[domain.Contact]{Data: items, Pagination: pagination}, nil
}

func (s *contactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgContactNotFound)
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, msgContactNotFound)
	}
	audit(actor, "contact", id).Msg("contact deleted")
	return nil
}

func (s *contactService) Wait() {
	s.pending.Wait()
}

// html/template escapes every field, including mailto and tel hrefs.
var contactMailTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html lang="zh-TW">
<head><meta charset="utf-8"><title>新聯繫表單通知</title></head>
<body style="margin:0;padding:24px;background:#f8f9fa;font-family:'Microsoft JhengHei','PingFang TC',Arial,sans-serif;color:#333333;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width:560px;margin:0 auto;background:#ffffff;border:1px solid #666666;border-radius:16px;">
    <tr><td style="padding:24px 32px;border-bottom:3px solid #F8B914;">
      <h1 style="margin:0;font-size:20px;color:#222222;">新聯繫表單通知</h1>
      <p style="margin:8px 0 0;font-size:13px;color:#666666;">{{.Timestamp}}</p>
    </td></tr>
    <tr><td style="padding:24px 32px;">
      <p style="margin:0 0 4px;font-size:13px;color:#666666;">姓名</p>
      <p style="margin:0 0 16px;font-size:16px;">{{.Name}}</p>
      <p style="margin:0 0 4px;font-size:13px;color:#666666;">Email</p>
      <p style="margin:0 0 16px;font-size:16px;"><a href="mailto:{{.Email}}" style="color:#1C73E8;">{{.Email}}</a></p>
      <p style="margin:0 0 4px;font-size:13px;color:#666666;">電話</p>
      <p style="margin:0 0 16px;font-size:16px;"><a href="tel:{{.Phone}}" style="color:#36A251;">{{.Phone}}</a></p>
      <p style="margin:0 0 4px;font-size:13px;color:#666666;">訊息內容</p>
      <div style="margin:0;padding:16px;background:#f8f9fa;border-left:4px solid #ef6c00;white-space:pre-wrap;font-size:15px;">{{.Message}}</div>
    </td></tr>
  </table>
</body>
</html>
`))
