package featureflag

import (
	"context"

	"github.com/open-feature/go-sdk/openfeature"
)

// boolOnly отвечает ошибкой типа на все вычисления, кроме булевых.
type boolOnly struct{}

func typeMismatch() openfeature.ProviderResolutionDetail {
	return openfeature.ProviderResolutionDetail{
		ResolutionError: openfeature.NewTypeMismatchResolutionError("only boolean flags are supported"),
		Reason:          openfeature.ErrorReason,
	}
}

func (boolOnly) StringEvaluation(_ context.Context, _ string, def string, _ openfeature.FlattenedContext) openfeature.StringResolutionDetail {
	return openfeature.StringResolutionDetail{Value: def, ProviderResolutionDetail: typeMismatch()}
}

func (boolOnly) FloatEvaluation(_ context.Context, _ string, def float64, _ openfeature.FlattenedContext) openfeature.FloatResolutionDetail {
	return openfeature.FloatResolutionDetail{Value: def, ProviderResolutionDetail: typeMismatch()}
}

func (boolOnly) IntEvaluation(_ context.Context, _ string, def int64, _ openfeature.FlattenedContext) openfeature.IntResolutionDetail {
	return openfeature.IntResolutionDetail{Value: def, ProviderResolutionDetail: typeMismatch()}
}

func (boolOnly) ObjectEvaluation(_ context.Context, _ string, def interface{}, _ openfeature.FlattenedContext) openfeature.InterfaceResolutionDetail {
	return openfeature.InterfaceResolutionDetail{Value: def, ProviderResolutionDetail: typeMismatch()}
}

func (boolOnly) Hooks() []openfeature.Hook {
	return nil
}

// resolved значение флага, найденного в источнике.
func resolved(value bool, reason openfeature.Reason) openfeature.BoolResolutionDetail {
	return openfeature.BoolResolutionDetail{
		Value:                    value,
		ProviderResolutionDetail: openfeature.ProviderResolutionDetail{Reason: reason},
	}
}

// missing флаг не задан: значение по умолчанию без ошибки.
func missing(def bool) openfeature.BoolResolutionDetail {
	return resolved(def, openfeature.DefaultReason)
}

func failed(def bool, resErr openfeature.ResolutionError) openfeature.BoolResolutionDetail {
	return openfeature.BoolResolutionDetail{
		Value: def,
		ProviderResolutionDetail: openfeature.ProviderResolutionDetail{
			ResolutionError: resErr,
			Reason:          openfeature.ErrorReason,
		},
	}
}
