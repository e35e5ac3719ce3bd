package component

// Locomotion is the movement half of a character's state.
type Locomotion int

const (
	LocomotionStill Locomotion = iota
	LocomotionRunning
	LocomotionJumping
)

func (l Locomotion) String() string {
	switch l {
	case LocomotionRunning:
		return "running"
	case LocomotionJumping:
		return "jumping"
	}
	return "still"
}

// Attack is the shooting half of a character's state.
type Attack int

const (
	AttackIdle Attack = iota
	AttackShooting
)

// CharacterState is the combined state, derived from locomotion and attack.
type CharacterState int

const (
	StateStill CharacterState = iota
	StateRunning
	StateJumping
	StateStillAndShooting
	StateRunningAndShooting
	StateJumpingAndShooting
)

// StateOf combines the two halves.
func StateOf(l Locomotion, a Attack) CharacterState {
	s := CharacterState(l)
	if a == AttackShooting {
		s += StateStillAndShooting
	}
	return s
}

// Split is the inverse of StateOf.
func (s CharacterState) Split() (Locomotion, Attack) {
	if s >= StateStillAndShooting {
		return Locomotion(s - StateStillAndShooting), AttackShooting
	}
	return Locomotion(s), AttackIdle
}

func (s CharacterState) String() string {
	switch s {
	case StateStill:
		return "still"
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateStillAndShooting:
		return "stillAndShooting"
	case StateRunningAndShooting:
		return "runningAndShooting"
	case StateJumpingAndShooting:
		return "jumpingAndShooting"
	}
	return "unknown"
}

// Character is the controller state and tunables of a shooting character.
// Transitions counts real state changes only.
type Character struct {
	Locomotion  Locomotion
	Attack      Attack
	Transitions int

	MaxLiveShots      int
	TimeToCrossScreen float64
	StepSize          float64
	StepDuration      float64
	JumpHeight        float64
	JumpDuration      float64
	ShotClearance     float64
	CannonOffset      float64
}

// State returns the combined state.
func (c *Character) State() CharacterState {
	if c == nil {
		return StateStill
	}
	return StateOf(c.Locomotion, c.Attack)
}

var CharacterComponent = NewComponent[Character]()
