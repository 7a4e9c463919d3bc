package lookuplib

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite

	ctx      context.Context
	provider *ProviderMock
	logger   *LoggerMock
	client   *Client
}

func (suite *ClientTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.provider = &ProviderMock{}
	suite.logger = &LoggerMock{}
	suite.client = NewClient(suite.provider, suite.logger)

	suite.provider.On("Name").Return("mocked").Maybe()
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.provider.AssertExpectations(suite.T())
	suite.logger.AssertExpectations(suite.T())
}

func (suite *ClientTestSuite) TestEmpty() {
	results := suite.client.LookupAll(suite.ctx, nil)

	suite.Equal(0, results.Len())
	suite.provider.AssertNotCalled(suite.T(), "Lookup", mock.Anything, mock.Anything)
}

func (suite *ClientTestSuite) TestPartialFailure() {
	result := ProviderLookupResult{
		IP:      strPtr("8.8.8.8"),
		City:    strPtr("Mountain View"),
		Country: strPtr("US"),
	}
	lookupErr := errors.New("unexpected status code 500")

	suite.provider.On("Lookup", suite.ctx, "8.8.8.8").Once().Return(result, nil)
	suite.provider.On("Lookup", suite.ctx, "1.1.1.1").Once().Return(ProviderLookupResult{}, lookupErr)
	suite.logger.On("LookupOK", 1, "8.8.8.8", "mocked").Once()
	suite.logger.On("LookupError", 2, "1.1.1.1", "mocked", lookupErr).Once()

	results := suite.client.LookupAll(suite.ctx, []string{"8.8.8.8", "1.1.1.1"})

	suite.Equal([]string{"1. 8.8.8.8", "2. 1.1.1.1"}, results.Keys())

	first, ok := results.Get("1. 8.8.8.8")
	suite.True(ok)
	suite.True(first.OK())
	suite.Equal("Mountain View", *first.Result.City)
	suite.Nil(first.Result.Postal)

	second, ok := results.Get("2. 1.1.1.1")
	suite.True(ok)
	suite.False(second.OK())
	suite.Contains(second.Error, "500")
}

func (suite *ClientTestSuite) TestFailuresDoNotAbort() {
	lookupErr := errors.New("connection refused")
	ips := []string{"10.0.0.1", "10.0.0.2", "8.8.8.8", "10.0.0.1"}

	suite.provider.On("Lookup", suite.ctx, "10.0.0.1").Twice().Return(ProviderLookupResult{}, lookupErr)
	suite.provider.On("Lookup", suite.ctx, "10.0.0.2").Once().Return(ProviderLookupResult{}, lookupErr)
	suite.provider.On("Lookup", suite.ctx, "8.8.8.8").Once().Return(ProviderLookupResult{}, nil)
	suite.logger.On("LookupError", mock.Anything, mock.Anything, "mocked", lookupErr).Times(3)
	suite.logger.On("LookupOK", 3, "8.8.8.8", "mocked").Once()

	results := suite.client.LookupAll(suite.ctx, ips)

	suite.Equal([]string{
		"1. 10.0.0.1",
		"2. 10.0.0.2",
		"3. 8.8.8.8",
		"4. 10.0.0.1",
	}, results.Keys())

	record, _ := results.Get("3. 8.8.8.8")
	suite.True(record.OK())

	record, _ = results.Get("4. 10.0.0.1")
	suite.Equal("connection refused", record.Error)
}

func TestClient(t *testing.T) {
	suite.Run(t, &ClientTestSuite{})
}
