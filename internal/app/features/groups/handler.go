// internal/app/features/groups/handler.go
package groups

import (
	groupstore "github.com/genielearn/genielearn/internal/app/store/groups"
	messagestore "github.com/genielearn/genielearn/internal/app/store/messages"
	profilestore "github.com/genielearn/genielearn/internal/app/store/profiles"
	"github.com/genielearn/genielearn/internal/app/system/session"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the groups feature:
// listing, stats, join, member resolution, and group messages.
type Handler struct {
	Log      *zap.Logger
	Groups   *groupstore.Store
	Profiles *profilestore.Store
	Messages *messagestore.Store
	Sessions *session.Resolver
}

func NewHandler(
	groups *groupstore.Store,
	profiles *profilestore.Store,
	messages *messagestore.Store,
	sessions *session.Resolver,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Log:      logger,
		Groups:   groups,
		Profiles: profiles,
		Messages: messages,
		Sessions: sessions,
	}
}
