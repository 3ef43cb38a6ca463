// internal/colony/queen.go
package colony

import "go-colony-defense/internal/config"

// QueenAnt is a water-safe thrower. The first queen built for a colony is the
// true queen: she cannot be removed, her death ends the game, and she doubles
// the damage of every ant between her and the goal once. Later queens are
// impostors and destroy themselves on their first turn.
type QueenAnt struct {
	ThrowerAnt
	isTrue  bool
	doubled map[Ant]struct{}
}

// NewQueenAnt builds a queen for c. The colony remembers its true queen, so
// separate colonies never interfere with each other.
func NewQueenAnt(c *Colony) *QueenAnt {
	q := &QueenAnt{
		ThrowerAnt: ThrowerAnt{
			antBase:  newAntBase("Queen", 1, 1),
			maxRange: config.ThrowerMaxRange,
		},
		doubled: make(map[Ant]struct{}),
	}
	q.waterSafe = true
	q.bind(q)
	if c != nil && c.queen == nil {
		q.isTrue = true
		c.queen = q
	}
	return q
}

// IsTrue reports whether q is the colony's true queen.
func (q *QueenAnt) IsTrue() bool { return q.isTrue }

// Doubled reports whether a's damage has already been doubled by q.
func (q *QueenAnt) Doubled(a Ant) bool {
	_, ok := q.doubled[a]
	return ok
}

func (q *QueenAnt) Action(c *Colony) error {
	if !q.isTrue {
		return q.ReduceArmor(q.armor)
	}
	if err := q.ThrowerAnt.Action(c); err != nil {
		return err
	}
	if q.place == nil {
		return nil
	}
	for spot := q.place.exit; spot != nil && !spot.IsGoal(); spot = spot.exit {
		if spot.ant == nil {
			continue
		}
		q.double(spot.ant)
		if inner := spot.ant.Contained(); inner != nil {
			q.double(inner)
		}
	}
	return nil
}

func (q *QueenAnt) double(a Ant) {
	if a == Ant(q) {
		return
	}
	if _, seen := q.doubled[a]; seen {
		return
	}
	a.doubleDamage()
	q.doubled[a] = struct{}{}
}

// ReduceArmor signals the end of the game instead of letting the true queen die.
func (q *QueenAnt) ReduceArmor(amount float64) error {
	if q.isTrue && q.armor-amount <= 0 {
		q.armor -= amount
		return ErrBeesWin
	}
	return reduceArmor(q, &q.insect, amount)
}
