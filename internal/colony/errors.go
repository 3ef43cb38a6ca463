// internal/colony/errors.go
package colony

import "errors"

// Broken caller contracts. These abort the operation that hit them.
var (
	ErrTwoAnts        = errors.New("two ants in one place")
	ErrNotInPlace     = errors.New("insect is not in place")
	ErrAntNotAllowed  = errors.New("ants cannot occupy this place")
	ErrUnknownPlace   = errors.New("unknown place")
	ErrUnknownAnt     = errors.New("unknown ant type")
	ErrNoEntrances    = errors.New("colony has no bee entrances")
	ErrDuplicatePlace = errors.New("duplicate place name")
)

// ErrNotEnoughFood is the one expected deployment failure: the placement is
// skipped and the game goes on.
var ErrNotEnoughFood = errors.New("not enough food")

// ErrBeesWin is raised by the goal place and by the true queen's death. The
// turn loop converts it into the BeesWin outcome.
var ErrBeesWin = errors.New("the ant queen has perished")

// errAntsWin ends the turn loop once every bee is gone.
var errAntsWin = errors.New("all bees are vanquished")
