package system

import "github.com/milk9111/megaman/ecs/component"

// Action keys on a character.
const (
	stateKey    = "state"
	movementKey = "movement"
	jumpKey     = "jump"
)

// Clip names a character prefab provides.
const (
	ClipStill        = "still"
	ClipStartRunning = "startRunning"
	ClipRunning      = "running"
	ClipJumping      = "jumping"
	ClipStillShoot   = "stillShoot"
	ClipRunShoot     = "runShoot"
	ClipJumpShoot    = "jumpShoot"
)

type stateAnimation struct {
	clip string
	once bool
}

// stateAnimations maps each combined state to the clip it shows. Shooting
// clips play once and then hand back to the locomotion clip.
var stateAnimations = map[component.CharacterState]stateAnimation{
	component.StateStill:              {clip: ClipStill},
	component.StateRunning:            {clip: ClipRunning},
	component.StateJumping:            {clip: ClipJumping},
	component.StateStillAndShooting:   {clip: ClipStillShoot, once: true},
	component.StateRunningAndShooting: {clip: ClipRunShoot, once: true},
	component.StateJumpingAndShooting: {clip: ClipJumpShoot, once: true},
}

// ClipForState returns the clip a state shows and whether it loops.
func ClipForState(s component.CharacterState) (string, bool) {
	anim, ok := stateAnimations[s]
	if !ok {
		return ClipStill, true
	}
	return anim.clip, !anim.once
}
