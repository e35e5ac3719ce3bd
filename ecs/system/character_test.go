package system

import (
	"math"
	"testing"

	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
	"github.com/milk9111/megaman/input"
)

func TestCharacterStateRoundTrip(t *testing.T) {
	cases := []struct {
		loco   component.Locomotion
		attack component.Attack
		want   string
	}{
		{component.LocomotionStill, component.AttackIdle, "still"},
		{component.LocomotionRunning, component.AttackIdle, "running"},
		{component.LocomotionJumping, component.AttackIdle, "jumping"},
		{component.LocomotionStill, component.AttackShooting, "stillAndShooting"},
		{component.LocomotionRunning, component.AttackShooting, "runningAndShooting"},
		{component.LocomotionJumping, component.AttackShooting, "jumpingAndShooting"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			s := component.StateOf(c.loco, c.attack)
			if s.String() != c.want {
				t.Fatalf("got %q, want %q", s.String(), c.want)
			}
			loco, attack := s.Split()
			if loco != c.loco || attack != c.attack {
				t.Fatalf("split %v into %v/%v", s, loco, attack)
			}
		})
	}
}

func TestSameStateRequestIsIgnored(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, 200, 100)
	Still(w, e)
	Still(w, e)
	if ch := character(t, w, e); ch.Transitions != 0 {
		t.Fatalf("expected no transitions, got %d", ch.Transitions)
	}
	if n := w.Events().Count(ecs.EventStateChanged); n != 0 {
		t.Fatalf("expected no state events, got %d", n)
	}

	Run(w, e)
	Run(w, e)
	if ch := character(t, w, e); ch.Transitions != 1 || ch.State() != component.StateRunning {
		t.Fatalf("expected one transition to running, got %d to %v", ch.Transitions, ch.State())
	}
}

func TestRunStartsWithStartRunningClip(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, 200, 100)
	Run(w, e)
	advance(w, 1)
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if anim.Current != ClipStartRunning {
		t.Fatalf("expected %s, got %s", ClipStartRunning, anim.Current)
	}
	advance(w, ticksFor(0.15))
	if anim.Current != ClipRunning {
		t.Fatalf("expected %s after the lead-in, got %s", ClipRunning, anim.Current)
	}
}

func TestFaceLocation(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, 100, 100)
	steps := []struct {
		x      float64
		turned bool
		scaleX float64
	}{
		{150, false, 4},
		{100, true, -4},
		{50, false, -4},
		{200, true, 4},
	}
	for i, s := range steps {
		turned := FaceLocation(w, e, common.Vec2{X: s.x, Y: 100})
		if turned != s.turned {
			t.Fatalf("step %d: turned = %v, want %v", i, turned, s.turned)
		}
		if got := transform(t, w, e).ScaleX; got != s.scaleX {
			t.Fatalf("step %d: scaleX = %v, want %v", i, got, s.scaleX)
		}
	}
}

func TestShootCapsLiveShots(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, 200, 100)
	target := common.Vec2{X: 1000, Y: 100}
	for i := 0; i < 3; i++ {
		if !Shoot(w, e, target) {
			t.Fatalf("shot %d refused", i)
		}
	}
	if Shoot(w, e, target) {
		t.Fatalf("expected fourth shot to be refused")
	}
	if n := LiveShots(w, e); n != 3 {
		t.Fatalf("expected 3 live shots, got %d", n)
	}
	ch := character(t, w, e)
	if ch.State() != component.StateStillAndShooting || ch.Transitions != 1 {
		t.Fatalf("expected one transition to stillAndShooting, got %d to %v", ch.Transitions, ch.State())
	}
}

func TestRefusedShotChangesNothing(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, 200, 100)
	for i := 0; i < 3; i++ {
		Shoot(w, e, common.Vec2{X: 1000, Y: 100})
	}
	advance(w, ticksFor(0.3))
	before := *character(t, w, e)

	if Shoot(w, e, common.Vec2{X: 0, Y: 100}) {
		t.Fatalf("expected shot to be refused")
	}
	if transform(t, w, e).ScaleX != 4 {
		t.Fatalf("refused shot must not turn the character")
	}
	if after := *character(t, w, e); after != before {
		t.Fatalf("refused shot changed state: %+v -> %+v", before, after)
	}
}

func TestShootingClipRevertsToLocomotion(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, 200, 100)
	Shoot(w, e, common.Vec2{X: 1000, Y: 100})
	advance(w, ticksFor(0.25))

	ch := character(t, w, e)
	if ch.State() != component.StateStill {
		t.Fatalf("expected still after the shooting clip, got %v", ch.State())
	}
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if anim.Current != ClipStill {
		t.Fatalf("expected still clip, got %s", anim.Current)
	}
}

func TestShootBehindWhileRunningStops(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, 200, 100)
	MoveTo(w, e, common.Vec2{X: 1000, Y: 100})
	advance(w, 10)

	Shoot(w, e, common.Vec2{X: 0, Y: 100})
	ch := character(t, w, e)
	if ch.State() != component.StateStillAndShooting {
		t.Fatalf("expected stillAndShooting, got %v", ch.State())
	}
	if HasAction(w, e, movementKey) {
		t.Fatalf("expected movement to be cancelled")
	}
	if !transform(t, w, e).FacingLeft() {
		t.Fatalf("expected to face the target")
	}
}

func TestShootAheadWhileRunningKeepsRunning(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, 200, 100)
	MoveTo(w, e, common.Vec2{X: 1000, Y: 100})
	advance(w, 10)

	if !ShootAhead(w, e) {
		t.Fatalf("expected shot")
	}
	if s := character(t, w, e).State(); s != component.StateRunningAndShooting {
		t.Fatalf("expected runningAndShooting, got %v", s)
	}
	if !HasAction(w, e, movementKey) {
		t.Fatalf("expected movement to continue")
	}
}

func TestMoveToClampsAndLandsStill(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, 200, 100)
	MoveTo(w, e, common.Vec2{X: 5000, Y: 300})
	if s := character(t, w, e).State(); s != component.StateRunning {
		t.Fatalf("expected running, got %v", s)
	}
	advance(w, ticksFor(3))

	tr := transform(t, w, e)
	if math.Abs(tr.X-(common.BaseWidth-48)) > 1e-6 || tr.Y != 100 {
		t.Fatalf("expected to stop at the right edge on the same row, got (%v,%v)", tr.X, tr.Y)
	}
	if s := character(t, w, e).State(); s != component.StateStill {
		t.Fatalf("expected still on arrival, got %v", s)
	}
}

func TestMoveToAtEdgeKeepsFacingDestination(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, common.BaseWidth-48, 100)
	MoveTo(w, e, common.Vec2{X: 5000, Y: 100})
	if tr := transform(t, w, e); tr.ScaleX <= 0 {
		t.Fatalf("expected to keep facing right at the wall, got scale %v", tr.ScaleX)
	}
}

func TestMoveOneStepTo(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, 200, 100)

	MoveOneStepTo(w, e, input.DirectionRight)
	advance(w, ticksFor(0.25))
	if x := transform(t, w, e).X; math.Abs(x-248) > 1e-6 {
		t.Fatalf("expected one step right to 248, got %v", x)
	}

	MoveOneStepTo(w, e, input.DirectionLeft)
	advance(w, 2)
	MoveOneStepTo(w, e, input.DirectionDown)
	if HasAction(w, e, movementKey) || character(t, w, e).State() != component.StateStill {
		t.Fatalf("expected down to stop the step")
	}

	MoveOneStepTo(w, e, input.DirectionUp)
	if s := character(t, w, e).State(); s != component.StateJumping {
		t.Fatalf("expected up to jump, got %v", s)
	}
}

func TestJumpRisesAndLands(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, 200, 100)
	MoveTo(w, e, common.Vec2{X: 1000, Y: 100})
	Jump(w, e)

	ch := character(t, w, e)
	if ch.State() != component.StateJumping {
		t.Fatalf("expected jumping, got %v", ch.State())
	}
	if HasAction(w, e, movementKey) {
		t.Fatalf("expected jump to cancel movement")
	}
	transitions := ch.Transitions
	Jump(w, e)
	MoveTo(w, e, common.Vec2{X: 10, Y: 100})
	Still(w, e)
	if ch.Transitions != transitions || HasAction(w, e, movementKey) {
		t.Fatalf("expected requests mid-jump to be ignored")
	}

	// 18 ticks per 0.3s leg
	advance(w, 18)
	if y := transform(t, w, e).Y; math.Abs(y-220) > 1e-6 {
		t.Fatalf("expected apex at 220, got %v", y)
	}
	advance(w, 18)
	if y := transform(t, w, e).Y; math.Abs(y-100) > 1e-6 {
		t.Fatalf("expected to land at 100, got %v", y)
	}
	if ch.State() != component.StateStill {
		t.Fatalf("expected still after landing, got %v", ch.State())
	}
}

func TestJumpWhileShootingKeepsAttack(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, 200, 100)
	Shoot(w, e, common.Vec2{X: 1000, Y: 100})
	Jump(w, e)
	if s := character(t, w, e).State(); s != component.StateJumpingAndShooting {
		t.Fatalf("expected jumpingAndShooting, got %v", s)
	}
}

func TestStateChangesArePublished(t *testing.T) {
	w := newTestWorld()
	e := newTestCharacter(t, w, 200, 100)
	Run(w, e)
	Still(w, e)

	events := w.Events().Drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	got, ok := events[0].Data.(ecs.StateChanged)
	if !ok || got.Entity != e || got.From != "still" || got.To != "running" {
		t.Fatalf("unexpected first event %+v", events[0])
	}
}
