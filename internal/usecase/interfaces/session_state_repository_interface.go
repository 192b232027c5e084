package interfaces

import (
	"context"

	"colohub/internal/domain/entities"
)

//go:generate mockgen -source=session_state_repository_interface.go -destination=mocks/session_state_repository_mock.go -package=mocks

// ISessionStateRepository abstracts the key-value store holding the session
// state tree. The store treats it as a best-effort mirror: the in-memory
// tree is the source of truth, and a failed Save never rolls back a
// transition.
type ISessionStateRepository interface {
	// Load returns the persisted tree; found is false when no snapshot
	// exists yet under the configured key.
	Load(ctx context.Context) (state entities.SessionState, found bool, err error)
	Save(ctx context.Context, state entities.SessionState) error
}
