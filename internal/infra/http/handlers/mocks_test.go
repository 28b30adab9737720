package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/outreach-guardian/internal/entity"
	"github.com/xavierca1/outreach-guardian/internal/infra/queue"
)

// MockLeadStore
type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) FindByKey(ctx context.Context, channel, handle string) (*entity.Lead, error) {
	args := m.Called(ctx, channel, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadStore) RecordAttempt(ctx context.Context, channel, handle, newStatus, date string, allowTerminalOverwrite bool) error {
	args := m.Called(ctx, channel, handle, newStatus, date, allowTerminalOverwrite)
	return args.Error(0)
}

func (m *MockLeadStore) UpsertStatus(ctx context.Context, channel, handle, status string) error {
	args := m.Called(ctx, channel, handle, status)
	return args.Error(0)
}

func (m *MockLeadStore) SetIntent(ctx context.Context, channel, handle, intent string) error {
	args := m.Called(ctx, channel, handle, intent)
	return args.Error(0)
}

func (m *MockLeadStore) UpdateScore(ctx context.Context, channel, handle, intent string, score int) (string, error) {
	args := m.Called(ctx, channel, handle, intent, score)
	return args.String(0), args.Error(1)
}

func (m *MockLeadStore) List(ctx context.Context, status string, limit uint64) ([]entity.Lead, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadStore) ListHot(ctx context.Context, minScore int, limit uint64) ([]entity.Lead, error) {
	args := m.Called(ctx, minScore, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadStore) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockStatsStore
type MockStatsStore struct {
	mock.Mock
}

func (m *MockStatsStore) GetByDate(ctx context.Context, date string) (entity.DailyStats, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(entity.DailyStats), args.Error(1)
}

func (m *MockStatsStore) IncrementAIReplies(ctx context.Context, date string) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

// MockChatClient
type MockChatClient struct {
	mock.Mock
}

func (m *MockChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
