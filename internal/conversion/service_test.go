package conversion

import (
	"context"
	"errors"
	"testing"

	"fxconvert/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Testify mocks ---

type MockRateClient struct{ mock.Mock }

func (m *MockRateClient) GetExchangeRates(ctx context.Context, base string) (domain.RateTable, error) {
	args := m.Called(ctx, base)
	rates, _ := args.Get(0).(domain.RateTable)
	return rates, args.Error(1)
}

type MockObserver struct{ mock.Mock }

func (m *MockObserver) ObserveConversion(outcome string) {
	m.Called(outcome)
}

func request(amount, from, to string) domain.ConversionRequest {
	return domain.ConversionRequest{Amount: decimal.RequireFromString(amount), From: from, To: to}
}

// --- Convert ---

func TestService_Convert_SameCurrency_NoCall(t *testing.T) {
	cases := []struct{ from, to string }{
		{"USD", "USD"},
		{"usd", "USD"},
		{"eUr", "EuR"},
	}

	for _, tc := range cases {
		t.Run(tc.from+"_"+tc.to, func(t *testing.T) {
			client := new(MockRateClient)
			observer := new(MockObserver)
			observer.On("ObserveConversion", OutcomeSameCurrency).Once()
			svc := NewService(client, observer)

			res, err := svc.Convert(context.Background(), request("123.456", tc.from, tc.to))

			require.NoError(t, err)
			require.True(t, res.Converted.Equal(decimal.RequireFromString("123.456")))
			client.AssertNotCalled(t, "GetExchangeRates", mock.Anything, mock.Anything)
			observer.AssertExpectations(t)
		})
	}
}

func TestService_Convert_Success(t *testing.T) {
	client := new(MockRateClient)
	observer := new(MockObserver)
	svc := NewService(client, observer)

	client.On("GetExchangeRates", mock.Anything, "USD").
		Return(domain.RateTable{"EUR": decimal.RequireFromString("0.92"), "GBP": decimal.RequireFromString("0.79")}, nil).Once()
	observer.On("ObserveConversion", OutcomeConverted).Once()

	res, err := svc.Convert(context.Background(), request("100", "usd", "eur"))

	require.NoError(t, err)
	require.True(t, res.Converted.Equal(decimal.RequireFromString("92")))
	require.Equal(t, "USD", res.Request.From)
	require.Equal(t, "EUR", res.Request.To)
	require.Equal(t, "100.00 USD = 92.00 EUR", res.String())
	client.AssertExpectations(t)
	observer.AssertExpectations(t)
}

func TestService_Convert_DoesNotRound(t *testing.T) {
	client := new(MockRateClient)
	svc := NewService(client, nil)

	client.On("GetExchangeRates", mock.Anything, "USD").
		Return(domain.RateTable{"JPY": decimal.RequireFromString("149.8765")}, nil).Once()

	res, err := svc.Convert(context.Background(), request("1.5", "USD", "JPY"))

	require.NoError(t, err)
	require.Equal(t, "224.81475", res.Converted.String())
}

func TestService_Convert_UnknownCurrency(t *testing.T) {
	client := new(MockRateClient)
	observer := new(MockObserver)
	svc := NewService(client, observer)

	client.On("GetExchangeRates", mock.Anything, "USD").
		Return(domain.RateTable{"EUR": decimal.RequireFromString("0.92")}, nil).Once()
	observer.On("ObserveConversion", OutcomeUnknownCurrency).Once()

	_, err := svc.Convert(context.Background(), request("10", "USD", "xyz"))

	require.ErrorIs(t, err, domain.ErrUnknownCurrency)
	require.Contains(t, err.Error(), "'XYZ'")
	require.Contains(t, err.Error(), "conversion failed")
	observer.AssertExpectations(t)
}

func TestService_Convert_ZeroRateIsUnknownCurrency(t *testing.T) {
	client := new(MockRateClient)
	observer := new(MockObserver)
	svc := NewService(client, observer)

	client.On("GetExchangeRates", mock.Anything, "USD").
		Return(domain.RateTable{"XYZ": decimal.Zero}, nil).Once()
	observer.On("ObserveConversion", OutcomeUnknownCurrency).Once()

	_, err := svc.Convert(context.Background(), request("10", "USD", "XYZ"))

	require.ErrorIs(t, err, domain.ErrUnknownCurrency)
	require.Contains(t, err.Error(), "'XYZ'")
	observer.AssertExpectations(t)
}

func TestService_Convert_ClientErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		outcome string
	}{
		{name: "missing api key", err: domain.ErrMissingAPIKey, outcome: OutcomeMissingAPIKey},
		{name: "unavailable", err: errors.Join(domain.ErrUpstreamUnavailable, errors.New("dial tcp")), outcome: OutcomeUnavailable},
		{name: "api error", err: &domain.APIError{StatusCode: 200, ErrorType: "invalid-key"}, outcome: OutcomeAPIError},
		{name: "decode error", err: errors.New("failed to decode response"), outcome: OutcomeFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := new(MockRateClient)
			observer := new(MockObserver)
			svc := NewService(client, observer)

			client.On("GetExchangeRates", mock.Anything, "EUR").Return(nil, tc.err).Once()
			observer.On("ObserveConversion", tc.outcome).Once()

			_, err := svc.Convert(context.Background(), request("5", "EUR", "USD"))

			require.ErrorIs(t, err, tc.err)
			require.Contains(t, err.Error(), "conversion failed: ")
			require.Contains(t, err.Error(), tc.err.Error())
			client.AssertExpectations(t)
			observer.AssertExpectations(t)
		})
	}
}
