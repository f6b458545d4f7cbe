package guard

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shreyansh404/attendanceManagment/internal/shared/apperror"
	"github.com/shreyansh404/attendanceManagment/internal/user"
)

// Guard resolves the acting user behind a verified token and enforces the
// role and ownership rules shared by the shift and attendance surfaces.
type Guard struct {
	users user.Repository
}

func New(users user.Repository) *Guard {
	return &Guard{users: users}
}

// CurrentActor looks up the user named by the token's email claim. A valid
// token for a user that no longer exists is unauthenticated, not not-found.
func (g *Guard) CurrentActor(ctx context.Context, email string) (*user.User, error) {
	if email == "" {
		return nil, apperror.ErrUnauthorized
	}

	actor, err := g.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}

	return actor, nil
}

func (g *Guard) RequireManager(actor *user.User) error {
	if actor == nil || actor.Role != user.RoleManager {
		return apperror.ErrForbidden
	}
	return nil
}

// RequireOwnership passes only when the staff member's owning-manager
// reference points at the given manager.
func (g *Guard) RequireOwnership(manager, staffMember *user.User) error {
	if manager == nil || staffMember == nil {
		return apperror.ErrForbidden
	}
	if staffMember.ManagerID == nil || *staffMember.ManagerID != manager.ID {
		return apperror.ErrForbidden
	}
	return nil
}
