package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"build-promotion-service/internal/core/domain"
	ports "build-promotion-service/internal/core/ports/output"
)

// MockBuildStore is a mock of BuildStore.
type MockBuildStore struct {
	mock.Mock
}

func (m *MockBuildStore) List(ctx context.Context) ([]*domain.Build, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Build), args.Error(1)
}

func (m *MockBuildStore) Exists(ctx context.Context, version string) (bool, error) {
	args := m.Called(ctx, version)
	return args.Bool(0), args.Error(1)
}

func (m *MockBuildStore) Remove(ctx context.Context, version string) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

// MockActivePointer is a mock of ActivePointer.
type MockActivePointer struct {
	mock.Mock
}

func (m *MockActivePointer) Get(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockActivePointer) Set(ctx context.Context, version string) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

// MockBinaryInstaller is a mock of BinaryInstaller.
type MockBinaryInstaller struct {
	mock.Mock
}

func (m *MockBinaryInstaller) Install(ctx context.Context, version string) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

// MockProcessSupervisor is a mock of ProcessSupervisor.
type MockProcessSupervisor struct {
	mock.Mock
}

func (m *MockProcessSupervisor) Restart(ctx context.Context, service string) ports.RestartOutcome {
	args := m.Called(ctx, service)
	return args.Get(0).(ports.RestartOutcome)
}

func (m *MockProcessSupervisor) Status(ctx context.Context) ([]domain.ServiceProcess, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceProcess), args.Error(1)
}

// MockHealthClient is a mock of HealthClient.
type MockHealthClient struct {
	mock.Mock
}

func (m *MockHealthClient) Probe(ctx context.Context) domain.HealthSnapshot {
	args := m.Called(ctx)
	return args.Get(0).(domain.HealthSnapshot)
}

// MockWaitlistRepo is a mock of WaitlistRepository.
type MockWaitlistRepo struct {
	mock.Mock
}

func (m *MockWaitlistRepo) Add(ctx context.Context, entry *domain.WaitlistEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
