package components

import (
	"github.com/philmade/gather-shop/internal/infra/store"
	"github.com/philmade/gather-shop/internal/pkg/cache"
	"github.com/philmade/gather-shop/internal/pkg/clock"

	"go.uber.org/fx"
)

// StoreModule owns all in-memory state: orders, feedback and the upstream
// lookup cache. Constructed once at startup, nothing survives a restart.
var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		cache.NewStore,
		store.NewOrderStore,
		store.NewFeedbackStore,
	),
)
