package usecases

import (
	"context"

	"mesaayuda/internal/domain/profile"
	"mesaayuda/internal/shared/logger"
)

type mockProfileRepository struct {
	GetOrCreateFunc func(ctx context.Context, candidate *profile.Profile) (*profile.Profile, error)
	GetByUserIDFunc func(ctx context.Context, userID string) (*profile.Profile, error)
	UpdateFunc      func(ctx context.Context, p *profile.Profile) error
	ListFunc        func(ctx context.Context) ([]*profile.Profile, error)
}

func (m *mockProfileRepository) GetOrCreate(ctx context.Context, candidate *profile.Profile) (*profile.Profile, error) {
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, candidate)
	}
	return candidate, nil
}

func (m *mockProfileRepository) GetByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) List(ctx context.Context) ([]*profile.Profile, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockIdentityDirectory struct {
	ListUsersFunc func(ctx context.Context) ([]IdentityUser, error)
}

func (m *mockIdentityDirectory) ListUsers(ctx context.Context) ([]IdentityUser, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
