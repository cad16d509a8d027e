package services

import "github.com/bekosher/bekosher-api/models"

// Actor is the authenticated caller. It is built by the auth middleware and
// trusted as-is by the services.
type Actor struct {
	UserID          uint
	Email           string
	Role            models.Role
	EstablishmentID uint
}

func (a Actor) Is(role models.Role) bool {
	return a.Role == role
}

func requireEstablishmentActor(actor Actor) error {
	if !actor.Is(models.RoleEstablishment) || actor.EstablishmentID == 0 {
		return forbidden("only establishments can perform this action")
	}
	return nil
}
