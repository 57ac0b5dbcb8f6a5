package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-WorkplaceService/internal/integrations/holidays"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/settings/models"
	"github.com/m04kA/SMC-WorkplaceService/pkg/logger"
	"github.com/m04kA/SMC-WorkplaceService/pkg/ptr"
)

type repoStub struct {
	stored *domain.Settings
	getErr error
	saved  *domain.Settings
}

func (r *repoStub) Get(ctx context.Context) (*domain.Settings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.stored == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	cp := *r.stored
	return &cp, nil
}

func (r *repoStub) Save(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	cp := *s
	cp.UpdatedAt = time.Date(2023, 4, 20, 12, 0, 0, 0, time.UTC)
	r.saved = &cp
	return &cp, nil
}

type cacheStub struct {
	invalidations int
	err           error
}

func (c *cacheStub) InvalidateAll(ctx context.Context) error {
	c.invalidations++
	return c.err
}

func newService(repo *repoStub) *Service {
	return NewService(repo, holidays.NewOracle(), &cacheStub{}, logger.NewNop())
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	svc := newService(&repoStub{})

	got, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultISORegion, got.ISORegion)
	assert.Equal(t, domain.DefaultMinOfficePercent, got.MinOfficePercent)
}

func TestLoad_StoreError(t *testing.T) {
	svc := newService(&repoStub{getErr: errors.New("connection refused")})

	_, err := svc.Load(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGet(t *testing.T) {
	svc := newService(&repoStub{stored: &domain.Settings{ISORegion: "DE", MinOfficePercent: 40}})

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "DE", got.ISORegion)
	assert.Equal(t, 40, got.MinOfficePercent)
	assert.Contains(t, got.SupportedRegions, "ES-AN")
	assert.Nil(t, got.UpdatedAt)
}

func TestUpdate_PartialAndNormalized(t *testing.T) {
	repo := &repoStub{stored: &domain.Settings{ISORegion: "ES-AN", MinOfficePercent: 20}}
	svc := newService(repo)

	got, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{ISORegion: ptr.Ptr(" es-md ")})
	require.NoError(t, err)

	assert.Equal(t, "ES-MD", got.ISORegion)
	assert.Equal(t, 20, got.MinOfficePercent)
	require.NotNil(t, got.UpdatedAt)
	assert.Equal(t, "ES-MD", repo.saved.ISORegion)
}

func TestUpdate_ZeroThresholdAllowed(t *testing.T) {
	repo := &repoStub{}
	svc := newService(repo)

	got, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{MinOfficePercent: ptr.Ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, got.MinOfficePercent)
	assert.Equal(t, domain.DefaultISORegion, got.ISORegion)
}

func TestUpdate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.UpdateSettingsRequest
		wantErr error
	}{
		{"nil request", nil, ErrInvalidInput},
		{"unknown region", &models.UpdateSettingsRequest{ISORegion: ptr.Ptr("XX-YY")}, ErrInvalidRegion},
		{"empty region", &models.UpdateSettingsRequest{ISORegion: ptr.Ptr("")}, ErrInvalidRegion},
		{"negative threshold", &models.UpdateSettingsRequest{MinOfficePercent: ptr.Ptr(-1)}, ErrInvalidThreshold},
		{"threshold above 100", &models.UpdateSettingsRequest{MinOfficePercent: ptr.Ptr(101)}, ErrInvalidThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repoStub{}
			cache := &cacheStub{}
			svc := NewService(repo, holidays.NewOracle(), cache, logger.NewNop())

			_, err := svc.Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.saved)
			assert.Zero(t, cache.invalidations)
		})
	}
}

func TestUpdate_InvalidatesSummaries(t *testing.T) {
	cache := &cacheStub{}
	svc := NewService(&repoStub{}, holidays.NewOracle(), cache, logger.NewNop())

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{MinOfficePercent: ptr.Ptr(50)})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidations)
}

func TestUpdate_CacheFailureDoesNotFail(t *testing.T) {
	repo := &repoStub{}
	cache := &cacheStub{err: errors.New("connection refused")}
	svc := NewService(repo, holidays.NewOracle(), cache, logger.NewNop())

	got, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{ISORegion: ptr.Ptr("DE")})
	require.NoError(t, err)
	assert.Equal(t, "DE", got.ISORegion)
	assert.Equal(t, 1, cache.invalidations)
	require.NotNil(t, repo.saved)
}
