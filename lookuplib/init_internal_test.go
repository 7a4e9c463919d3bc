package lookuplib

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type ProviderMock struct {
	mock.Mock
}

func (m *ProviderMock) Lookup(ctx context.Context, ip string) (ProviderLookupResult, error) {
	args := m.Called(ctx, ip)

	return args.Get(0).(ProviderLookupResult), args.Error(1)
}

func (m *ProviderMock) Name() string {
	return m.Called().String(0)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) LookupOK(index int, ip, provider string) {
	m.Called(index, ip, provider)
}

func (m *LoggerMock) LookupError(index int, ip, provider string, err error) {
	m.Called(index, ip, provider, err)
}

func strPtr(s string) *string {
	return &s
}
