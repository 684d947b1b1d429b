package commands

import (
	"errors"

	"courierapp/internal/pkg/guard"
)

var ErrTeardownSessionCommandIsNotConstructed = errors.New(
	"TeardownSessionCommand must be created via NewTeardownSessionCommand constructor",
)

// TeardownSessionCommand is the explicit session-teardown event: logging out
// wipes every locally cached order snapshot in one step, instead of letting
// stale data linger until the next fetch happens to overwrite it.
type TeardownSessionCommand struct {
	guard guard.ConstructorGuard
}

// NewTeardownSessionCommand creates a new session teardown command.
// This is a parameterless command.
func NewTeardownSessionCommand() TeardownSessionCommand {
	return TeardownSessionCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrTeardownSessionCommandIsNotConstructed if validation fails.
func (c TeardownSessionCommand) Validate() error {
	return c.guard.Validate(ErrTeardownSessionCommandIsNotConstructed)
}
