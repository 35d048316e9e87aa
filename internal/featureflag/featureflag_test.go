package featureflag_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/open-feature/go-sdk/openfeature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payment-service/internal/featureflag"
)

// MockProvider реализует openfeature.FeatureProvider, вычисляет только булевы флаги.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Metadata() openfeature.Metadata {
	return openfeature.Metadata{Name: "mock"}
}

func (m *MockProvider) BooleanEvaluation(ctx context.Context, flag string, def bool, _ openfeature.FlattenedContext) openfeature.BoolResolutionDetail {
	args := m.Called(ctx, flag, def)
	return args.Get(0).(openfeature.BoolResolutionDetail)
}

func (m *MockProvider) StringEvaluation(_ context.Context, _ string, def string, _ openfeature.FlattenedContext) openfeature.StringResolutionDetail {
	return openfeature.StringResolutionDetail{Value: def}
}

func (m *MockProvider) FloatEvaluation(_ context.Context, _ string, def float64, _ openfeature.FlattenedContext) openfeature.FloatResolutionDetail {
	return openfeature.FloatResolutionDetail{Value: def}
}

func (m *MockProvider) IntEvaluation(_ context.Context, _ string, def int64, _ openfeature.FlattenedContext) openfeature.IntResolutionDetail {
	return openfeature.IntResolutionDetail{Value: def}
}

func (m *MockProvider) ObjectEvaluation(_ context.Context, _ string, def interface{}, _ openfeature.FlattenedContext) openfeature.InterfaceResolutionDetail {
	return openfeature.InterfaceResolutionDetail{Value: def}
}

func (m *MockProvider) Hooks() []openfeature.Hook {
	return nil
}

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) IncFlagError(flag string) {
	m.Called(flag)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func detail(value bool, reason openfeature.Reason) openfeature.BoolResolutionDetail {
	return openfeature.BoolResolutionDetail{
		Value:                    value,
		ProviderResolutionDetail: openfeature.ProviderResolutionDetail{Reason: reason},
	}
}

func generalError(def bool) openfeature.BoolResolutionDetail {
	return openfeature.BoolResolutionDetail{
		Value: def,
		ProviderResolutionDetail: openfeature.ProviderResolutionDetail{
			ResolutionError: openfeature.NewGeneralResolutionError("connection refused"),
			Reason:          openfeature.ErrorReason,
		},
	}
}

func TestClient_Bool(t *testing.T) {
	tests := []struct {
		name       string
		def        bool
		setupMocks func(*MockProvider, *MockCounter)
		want       bool
	}{
		{
			name: "flag enabled",
			setupMocks: func(p *MockProvider, c *MockCounter) {
				p.On("BooleanEvaluation", mock.Anything, "paymentServiceFailure", false).
					Return(detail(true, openfeature.StaticReason)).Once()
			},
			want: true,
		},
		{
			name: "flag disabled",
			def:  true,
			setupMocks: func(p *MockProvider, c *MockCounter) {
				p.On("BooleanEvaluation", mock.Anything, "paymentServiceFailure", true).
					Return(detail(false, openfeature.StaticReason)).Once()
			},
			want: false,
		},
		{
			name: "flag missing - default",
			def:  true,
			setupMocks: func(p *MockProvider, c *MockCounter) {
				p.On("BooleanEvaluation", mock.Anything, "paymentServiceFailure", true).
					Return(detail(true, openfeature.DefaultReason)).Once()
			},
			want: true,
		},
		{
			name: "provider error - fail open to default",
			setupMocks: func(p *MockProvider, c *MockCounter) {
				p.On("BooleanEvaluation", mock.Anything, "paymentServiceFailure", false).
					Return(generalError(false)).Once()
				c.On("IncFlagError", "paymentServiceFailure").Once()
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockProvider)
			counter := new(MockCounter)
			tt.setupMocks(provider, counter)

			client, err := featureflag.NewClient(t.Name(), provider, counter, newNoopLogger())
			require.NoError(t, err)
			got := client.Bool(context.Background(), "paymentServiceFailure", tt.def)

			assert.Equal(t, tt.want, got)
			provider.AssertExpectations(t)
			counter.AssertExpectations(t)
		})
	}
}

func TestClient_Bool_NilCounter(t *testing.T) {
	provider := new(MockProvider)
	provider.On("BooleanEvaluation", mock.Anything, "x", true).Return(generalError(true))

	client, err := featureflag.NewClient(t.Name(), provider, nil, newNoopLogger())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.True(t, client.Bool(context.Background(), "x", true))
	})
}

func TestClient_Lookup(t *testing.T) {
	client, err := featureflag.NewClient(t.Name(),
		featureflag.NewStaticProvider(map[string]bool{"paymentServiceFailure": true}), nil, newNoopLogger())
	require.NoError(t, err)

	v, found, err := client.Lookup(context.Background(), "paymentServiceFailure")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, v)

	v, found, err = client.Lookup(context.Background(), "other")
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, v)
}

func TestClient_Lookup_ProviderError(t *testing.T) {
	provider := new(MockProvider)
	provider.On("BooleanEvaluation", mock.Anything, "paymentServiceFailure", false).Return(generalError(false))
	counter := new(MockCounter)
	counter.On("IncFlagError", "paymentServiceFailure").Once()

	client, err := featureflag.NewClient(t.Name(), provider, counter, newNoopLogger())
	require.NoError(t, err)

	_, _, err = client.Lookup(context.Background(), "paymentServiceFailure")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "featureflag.Client.Lookup")
	counter.AssertExpectations(t)
}

// Клиенты разных доменов не видят провайдеры друг друга.
func TestNewClient_DomainsAreIsolated(t *testing.T) {
	on, err := featureflag.NewClient(t.Name()+"/on",
		featureflag.NewStaticProvider(map[string]bool{"paymentServiceFailure": true}), nil, newNoopLogger())
	require.NoError(t, err)
	off, err := featureflag.NewClient(t.Name()+"/off",
		featureflag.NewStaticProvider(map[string]bool{"paymentServiceFailure": false}), nil, newNoopLogger())
	require.NoError(t, err)

	assert.True(t, on.Bool(context.Background(), "paymentServiceFailure", false))
	assert.False(t, off.Bool(context.Background(), "paymentServiceFailure", true))
}

func TestParseBool(t *testing.T) {
	for _, raw := range []string{"true", "TRUE", " 1 ", "on", "yes", `"true"`} {
		v, err := featureflag.ParseBool(raw)
		require.NoError(t, err, raw)
		assert.True(t, v, raw)
	}
	for _, raw := range []string{"false", "0", "off", "no"} {
		v, err := featureflag.ParseBool(raw)
		require.NoError(t, err, raw)
		assert.False(t, v, raw)
	}

	_, err := featureflag.ParseBool("maybe")
	require.Error(t, err)
	assert.ErrorIs(t, err, featureflag.ErrInvalidValue)
}

func TestStaticProvider(t *testing.T) {
	flags := map[string]bool{"paymentServiceFailure": true}
	p := featureflag.NewStaticProvider(flags)
	flags["paymentServiceFailure"] = false
	ctx := context.Background()

	res := p.BooleanEvaluation(ctx, "paymentServiceFailure", false, nil)
	require.NoError(t, res.Error())
	assert.True(t, res.Value)
	assert.Equal(t, openfeature.StaticReason, res.Reason)

	res = p.BooleanEvaluation(ctx, "other", true, nil)
	require.NoError(t, res.Error())
	assert.True(t, res.Value)
	assert.Equal(t, openfeature.DefaultReason, res.Reason)

	str := p.StringEvaluation(ctx, "paymentServiceFailure", "x", nil)
	assert.Equal(t, "x", str.Value)
	assert.Equal(t, openfeature.ErrorReason, str.Reason)
	assert.Error(t, str.Error())
}
