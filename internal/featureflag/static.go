package featureflag

import (
	"context"

	"github.com/open-feature/go-sdk/openfeature"
)

// StaticProvider неизменяемый набор флагов из конфига, для локального запуска.
type StaticProvider struct {
	boolOnly
	flags map[string]bool
}

func NewStaticProvider(flags map[string]bool) *StaticProvider {
	copied := make(map[string]bool, len(flags))
	for k, v := range flags {
		copied[k] = v
	}
	return &StaticProvider{flags: copied}
}

func (p *StaticProvider) Metadata() openfeature.Metadata {
	return openfeature.Metadata{Name: "static"}
}

func (p *StaticProvider) BooleanEvaluation(_ context.Context, flag string, def bool, _ openfeature.FlattenedContext) openfeature.BoolResolutionDetail {
	v, ok := p.flags[flag]
	if !ok {
		return missing(def)
	}
	return resolved(v, openfeature.StaticReason)
}

var _ openfeature.FeatureProvider = (*StaticProvider)(nil)
