package service

import (
	"context"

	"github.com/vidscope/vidscope/pkg/domain"
	"github.com/vidscope/vidscope/pkg/repository"
)

// SyncService provides unified repository access for the sync pipeline
// and the HTTP server. It satisfies the consumer-side interfaces both
// declare without either of them importing the repository package.
type SyncService struct {
	accountRepo      *repository.AccountRepository
	sourceRepo       *repository.SourceRepository
	videoRepo        *repository.VideoRepository
	notificationRepo *repository.NotificationRepository
}

// NewSyncService creates a new sync service
func NewSyncService(repos *repository.Repositories) *SyncService {
	return &SyncService{
		accountRepo:      repos.Account,
		sourceRepo:       repos.Source,
		videoRepo:        repos.Video,
		notificationRepo: repos.Notification,
	}
}

// Account methods

func (s *SyncService) CreateAccount(ctx context.Context, account *domain.Account) error {
	return s.accountRepo.CreateAccount(ctx, account)
}

func (s *SyncService) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return s.accountRepo.GetAccount(ctx, id)
}

func (s *SyncService) GetAccountsWithCredential(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.GetAccountsWithCredential(ctx)
}

func (s *SyncService) UpdateCredential(ctx context.Context, accountID int64, credential string) error {
	return s.accountRepo.UpdateCredential(ctx, accountID, credential)
}

// Source methods

func (s *SyncService) CreateSource(ctx context.Context, source *domain.Source) error {
	return s.sourceRepo.CreateSource(ctx, source)
}

func (s *SyncService) GetSources(ctx context.Context, accountID int64) ([]domain.Source, error) {
	return s.sourceRepo.GetSources(ctx, accountID)
}

func (s *SyncService) GetActiveSources(ctx context.Context, accountID int64) ([]domain.Source, error) {
	return s.sourceRepo.GetActiveSources(ctx, accountID)
}

func (s *SyncService) DeleteSource(ctx context.Context, id int64) error {
	return s.sourceRepo.DeleteSource(ctx, id)
}

// Video methods

func (s *SyncService) ExistingKeys(ctx context.Context, accountID int64, platform string, keys []string) (map[string]struct{}, error) {
	return s.videoRepo.ExistingKeys(ctx, accountID, platform, keys)
}

func (s *SyncService) UpsertVideos(ctx context.Context, videos []domain.Video) (int64, error) {
	return s.videoRepo.UpsertVideos(ctx, videos)
}

func (s *SyncService) GetVideos(ctx context.Context, accountID int64, limit, offset int) ([]domain.Video, error) {
	return s.videoRepo.GetVideos(ctx, accountID, limit, offset)
}

// Notification methods

func (s *SyncService) CreateNotification(ctx context.Context, notification *domain.Notification) error {
	return s.notificationRepo.CreateNotification(ctx, notification)
}

func (s *SyncService) GetNotifications(ctx context.Context, accountID int64, limit int) ([]domain.Notification, error) {
	return s.notificationRepo.GetNotifications(ctx, accountID, limit)
}
