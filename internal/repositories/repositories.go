package repositories

import (
	"context"

	"github.com/yoockh/medassist/internal/models"
)

// ConversationRepository keeps one ordered message log per session.
// Implementations must be safe for concurrent use.
type ConversationRepository interface {
	// Append adds msgs to the end of the session's log as one unit.
	Append(ctx context.Context, sessionID string, msgs ...models.Message) error
	// List returns the session's log in append order; unknown sessions yield an empty slice.
	List(ctx context.Context, sessionID string) ([]models.Message, error)
}
