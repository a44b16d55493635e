package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func contactRequest() *domain.CreateContactRequest {
	return &domain.CreateContactRequest{
		Name:    `<b>Ann</b>`,
		Email:   "ann@example.com",
		Phone:   "0912345678",
		Message: `<script>alert("hi")</script>`,
	}
}

func newContactService(t *testing.T, notifier Notifier, notifyTo string) (*contactService, *mockContentRepo[domain.Contact]) {
	t.Helper()
	taipei, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	repo := new(mockContentRepo[domain.Contact])
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Contact")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Contact).ID = "m1"
	}).Return(nil)

	svc := NewContactService(repo, notifier, notifyTo, taipei).(*contactService)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 16, 4, 5, 0, time.UTC) }
	return svc, repo
}

func TestContactCreate_SendsEscapedNotification(t *testing.T) {
	notifier := new(mockNotifier)
	svc, _ := newContactService(t, notifier, "ops@example.com")

	var subject, body string
	notifier.On("Send", mock.Anything, "ops@example.com", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		subject = args.String(2)
		body = args.String(3)
	}).Return(nil)

	contact, err := svc.Create(context.Background(), contactRequest())
	require.NoError(t, err)
	svc.Wait()

	assert.Equal(t, "m1", contact.ID)
	assert.Equal(t, "[聯絡表單] 來自 <b>Ann</b> 的新訊息 時間 2025-03-02 00:04:05", subject)
	assert.Contains(t, body, "&lt;b&gt;Ann&lt;/b&gt;")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "2025/03/02 00:04:05")
	notifier.AssertExpectations(t)
}

func TestContactCreate_MailFailureIsSwallowed(t *testing.T) {
	notifier := new(mockNotifier)
	svc, _ := newContactService(t, notifier, "ops@example.com")
	notifier.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	contact, err := svc.Create(context.Background(), contactRequest())
	svc.Wait()

	require.NoError(t, err)
	assert.NotNil(t, contact)
	notifier.AssertExpectations(t)
}

func TestContactCreate_NoRecipientSkipsMail(t *testing.T) {
	notifier := new(mockNotifier)
	svc, repo := newContactService(t, notifier, "")

	_, err := svc.Create(context.Background(), contactRequest())
	svc.Wait()

	require.NoError(t, err)
	repo.AssertExpectations(t)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestContactDelete_NotFound(t *testing.T) {
	svc, repo := newContactService(t, nil, "")
	repo.On("Delete", mock.Anything, "gone").Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), testActor, "gone")

	appErr := appError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "聯絡訊息不存在", appErr.Message)
}
