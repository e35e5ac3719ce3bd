package input

import (
	"fmt"

	"github.com/milk9111/megaman/common"
)

type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	}
	return "none"
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return DirectionLeft, true
	case "right":
		return DirectionRight, true
	case "up":
		return DirectionUp, true
	case "down":
		return DirectionDown, true
	case "none", "":
		return DirectionNone, true
	}
	return DirectionNone, false
}

// CommandKind tags a Command.
type CommandKind int

const (
	CommandShoot CommandKind = iota + 1
	CommandSwipe
	CommandHold
	CommandStep
	CommandJump
)

// Command is what the character acts on. At is in scene space and only
// meaningful for Shoot and Swipe. Ahead marks a shot fired in the facing
// direction instead of at a location.
type Command struct {
	Kind      CommandKind
	At        common.Vec2
	Direction Direction
	Ahead     bool
}

func Shoot(at common.Vec2) Command {
	return Command{Kind: CommandShoot, At: at}
}

func ShootAhead() Command {
	return Command{Kind: CommandShoot, Ahead: true}
}

func Swipe(dir Direction, end common.Vec2) Command {
	return Command{Kind: CommandSwipe, Direction: dir, At: end}
}

func Hold(dir Direction) Command {
	return Command{Kind: CommandHold, Direction: dir}
}

func Step(dir Direction) Command {
	return Command{Kind: CommandStep, Direction: dir}
}

func Jump() Command {
	return Command{Kind: CommandJump}
}

func (c Command) String() string {
	switch c.Kind {
	case CommandShoot:
		if c.Ahead {
			return "shoot(ahead)"
		}
		return fmt.Sprintf("shoot(%.1f,%.1f)", c.At.X, c.At.Y)
	case CommandSwipe:
		return fmt.Sprintf("swipe(%s)", c.Direction)
	case CommandHold:
		return fmt.Sprintf("hold(%s)", c.Direction)
	case CommandStep:
		return fmt.Sprintf("step(%s)", c.Direction)
	case CommandJump:
		return "jump"
	}
	return "unknown"
}
