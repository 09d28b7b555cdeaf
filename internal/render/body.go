package render

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/wsuwp/colorpalette/internal/logging"
	"github.com/wsuwp/colorpalette/internal/palette"
)

// ClassResolver computes palette classes for an item.
type ClassResolver interface {
	ResolveClassNames(ctx context.Context, itemID string, eligible bool) []string
}

// BodyClasser appends palette classes to a document's root class list.
type BodyClasser struct {
	resolver ClassResolver
	policy   *Policy
	logger   zerolog.Logger
}

// NewBodyClasser creates a BodyClasser. A nil policy uses DefaultRule.
func NewBodyClasser(resolver ClassResolver, policy *Policy) (*BodyClasser, error) {
	if policy == nil {
		var err error
		if policy, err = NewPolicy(DefaultRule); err != nil {
			return nil, err
		}
	}
	return &BodyClasser{
		resolver: resolver,
		policy:   policy,
		logger:   logging.Component("render"),
	}, nil
}

// Classes returns the palette classes for target. Rule failures are
// treated as not eligible.
func (b *BodyClasser) Classes(ctx context.Context, target Target) []string {
	eligible, err := b.policy.Eligible(target)
	if err != nil {
		b.logger.Warn().Err(err).Str("item_id", target.ItemID).Msg("eligibility rule failed, using default palette")
		eligible = false
	}
	if eligible && target.ItemID == "" {
		eligible = false
	}
	if !eligible {
		return palette.DefaultClassNames()
	}
	return b.resolver.ResolveClassNames(ctx, target.ItemID, true)
}

// BodyClasses appends the palette classes for target to classes.
func (b *BodyClasser) BodyClasses(ctx context.Context, classes []string, target Target) []string {
	out := make([]string, 0, len(classes)+2)
	out = append(out, classes...)
	return append(out, b.Classes(ctx, target)...)
}
