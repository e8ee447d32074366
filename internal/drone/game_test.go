package drone

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/neon-drone/internal/config"
	"github.com/vovakirdan/neon-drone/internal/core"
	"github.com/vovakirdan/neon-drone/internal/profile"
	_ "github.com/vovakirdan/neon-drone/internal/skins"
)

func newTestGame(t *testing.T, seed int64, fieldH float64) *Game {
	t.Helper()
	rt := core.DefaultConfig()
	rt.Seed = seed
	if fieldH > 0 {
		rt.FieldH = fieldH
	}
	return New(config.DefaultConfig(), rt, profile.Default())
}

func startTestGame(t *testing.T, seed int64, fieldH float64) *Game {
	t.Helper()
	g := newTestGame(t, seed, fieldH)
	if err := g.Start(config.DifficultyNormal); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return g
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func liftInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionLift)
	return in
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func findEvent(events []Event, kind EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

func TestNewStartsInMenu(t *testing.T) {
	g := newTestGame(t, 1, 0)

	if g.Phase() != PhaseMenu {
		t.Errorf("Phase() = %v, expected menu", g.Phase())
	}
	d := g.Drone()
	if d.X != 200 {
		t.Errorf("drone X = %v, expected a quarter of the field", d.X)
	}

	// Lift is ignored outside a session
	res := g.Step(liftInput())
	if len(res.Events) != 0 {
		t.Errorf("menu Step emitted %d events, expected none", len(res.Events))
	}
	if g.Drone().Velocity != 0 {
		t.Error("menu Step should not move the drone")
	}
}

func TestStartResetsSession(t *testing.T) {
	g := startTestGame(t, 7, 0)

	for i := 0; i < 20; i++ {
		in := idle()
		if i%5 == 0 {
			in = liftInput()
		}
		g.Step(in)
	}
	g.drone.Shield = true
	g.drone.SlowMo = 40
	g.score = 3

	if err := g.Start(config.DifficultyHard); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	d := g.Drone()
	if g.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", g.Phase())
	}
	if g.Score() != 0 || g.Frame() != 0 {
		t.Errorf("score/frame = %d/%d, expected 0/0", g.Score(), g.Frame())
	}
	if d.Y != 240 || d.Velocity != 0 || d.Shield || d.SlowMo != 0 {
		t.Errorf("drone not reset: %+v", d)
	}
	if len(g.Particles()) != 0 || len(g.Obstacles()) != 0 {
		t.Error("entity stores should be empty after Start")
	}
	if p, _ := g.Difficulty(); p != config.DifficultyHard {
		t.Errorf("difficulty = %v, expected hard", p)
	}
}

func TestStartUnknownDifficulty(t *testing.T) {
	g := newTestGame(t, 1, 0)

	err := g.Start("nightmare")
	if !errors.Is(err, config.ErrUnknownDifficulty) {
		t.Errorf("Start() error = %v, expected ErrUnknownDifficulty", err)
	}
	if g.Phase() != PhaseMenu {
		t.Errorf("Phase() = %v, expected menu after failed start", g.Phase())
	}
}

func TestGravityWithoutInput(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		frames int
	}{
		{config.DifficultyEasy, 30},
		{config.DifficultyNormal, 50},
		{config.DifficultyHard, 40},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			g := newTestGame(t, 3, 5000)
			if err := g.Start(tc.preset); err != nil {
				t.Fatalf("Start() failed: %v", err)
			}
			_, diff := g.Difficulty()
			y0 := g.Drone().Y

			for i := 0; i < tc.frames; i++ {
				g.Step(idle())
			}

			n := float64(tc.frames)
			wantV := n * diff.Gravity
			wantY := y0 + diff.Gravity*n*(n+1)/2

			d := g.Drone()
			if math.Abs(d.Velocity-wantV) > 1e-9 {
				t.Errorf("velocity = %v, expected %v", d.Velocity, wantV)
			}
			if math.Abs(d.Y-wantY) > 1e-9 {
				t.Errorf("y = %v, expected %v", d.Y, wantY)
			}
		})
	}
}

func TestNormalScenarioFiftyFrames(t *testing.T) {
	g := startTestGame(t, 11, 5000)
	y0 := g.Drone().Y

	for i := 0; i < 50; i++ {
		res := g.Step(idle())
		if res.Phase != PhasePlaying {
			t.Fatalf("frame %d: Phase = %v, expected playing", i, res.Phase)
		}
	}

	if got := g.Drone().Y - y0; got != 637.5 {
		t.Errorf("drone fell %v, expected 637.5", got)
	}
	if n := len(g.Obstacles()); n != 0 {
		t.Errorf("%d obstacles spawned within 50 frames, expected none", n)
	}
}

func TestLiftOverridesVelocity(t *testing.T) {
	for _, prior := range []float64{7, -3, 0} {
		g := startTestGame(t, 1, 0)
		g.drone.Velocity = prior

		res := g.Step(liftInput())

		_, diff := g.Difficulty()
		want := diff.Lift + diff.Gravity
		if got := g.Drone().Velocity; got != want {
			t.Errorf("prior %v: velocity after lift frame = %v, expected %v", prior, got, want)
		}
		e, ok := findEvent(res.Events, EventLift)
		if !ok {
			t.Fatalf("prior %v: no lift event", prior)
		}
		if e.Sound() != SoundLift {
			t.Errorf("lift Sound() = %q, expected %q", e.Sound(), SoundLift)
		}
	}
}

func TestObstacleSpawnCadence(t *testing.T) {
	g := startTestGame(t, 5, 10000)

	for i := 0; i < 110; i++ {
		g.Step(idle())
	}
	if n := len(g.Obstacles()); n != 0 {
		t.Fatalf("%d obstacles before frame 110, expected none", n)
	}

	g.Step(idle())
	obs := g.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("%d obstacles at frame 110, expected 1", len(obs))
	}

	o := obs[0]
	if o.X != 796 {
		t.Errorf("obstacle X = %v, expected spawn at the right edge then one scroll step", o.X)
	}
	if o.Width != 60 {
		t.Errorf("obstacle width = %v, expected 60", o.Width)
	}
	if o.Top < 80 {
		t.Errorf("obstacle top = %v, expected at least 80", o.Top)
	}
	_, diff := g.Difficulty()
	if gap := 10000 - o.Top - o.Bottom; math.Abs(gap-diff.ObstacleGap) > 1e-9 && !o.Moving {
		t.Errorf("gap = %v, expected %v", gap, diff.ObstacleGap)
	}
}

func TestObstacleScoredOnce(t *testing.T) {
	g := startTestGame(t, 1, 0)
	g.obstacles = []Obstacle{{X: 100, Width: 60, Top: 10, Bottom: 10}}

	scoreEvents := 0
	for i := 0; i < 10; i++ {
		res := g.Step(idle())
		scoreEvents += countEvents(res.Events, EventScore)
	}

	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	if scoreEvents != 1 {
		t.Errorf("score events = %d, expected 1", scoreEvents)
	}
}

func TestShieldAbsorbsOneObstacle(t *testing.T) {
	g := startTestGame(t, 1, 0)
	g.drone.Shield = true
	g.obstacles = []Obstacle{
		{X: 190, Width: 60, Top: 300, Bottom: 10},
		{X: 600, Width: 60, Top: 10, Bottom: 10},
	}

	res := g.Step(idle())

	if res.Phase != PhasePlaying {
		t.Fatalf("Phase = %v, expected playing after shielded impact", res.Phase)
	}
	if g.Drone().Shield {
		t.Error("shield should be consumed")
	}
	obs := g.Obstacles()
	if len(obs) != 1 || obs[0].X != 596 {
		t.Errorf("obstacles = %+v, expected only the untouched one", obs)
	}
	e, ok := findEvent(res.Events, EventImpact)
	if !ok {
		t.Fatal("no impact event")
	}
	if e.Sound() != SoundCrash {
		t.Errorf("impact Sound() = %q, expected %q", e.Sound(), SoundCrash)
	}

	// Unshielded now: the next hit is fatal
	g.obstacles = append(g.obstacles, Obstacle{X: 190, Width: 60, Top: 300, Bottom: 10})
	res = g.Step(idle())
	if res.Phase != PhaseGameOver {
		t.Errorf("Phase = %v, expected gameover", res.Phase)
	}
	if countEvents(res.Events, EventCrash) != 1 {
		t.Error("expected one crash event")
	}
}

func TestOutOfBoundsEndsSession(t *testing.T) {
	tests := []struct {
		name          string
		y             float64
		score         int
		highScore     int
		wantHighScore int
		wantEvent     bool
	}{
		{"above field, not beaten", -50, 3, 5, 5, false},
		{"above field, beaten", -50, 7, 5, 7, true},
		{"below field, tied", 470, 5, 5, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := startTestGame(t, 1, 0)
			p := profile.Default()
			p.HighScore = tc.highScore
			g.SetProfile(p)
			g.score = tc.score
			g.drone.Y = tc.y

			res := g.Step(idle())

			if res.Phase != PhaseGameOver {
				t.Fatalf("Phase = %v, expected gameover", res.Phase)
			}
			if got := g.Profile().HighScore; got != tc.wantHighScore {
				t.Errorf("HighScore = %d, expected %d", got, tc.wantHighScore)
			}
			if _, ok := findEvent(res.Events, EventHighScore); ok != tc.wantEvent {
				t.Errorf("highscore event = %v, expected %v", ok, tc.wantEvent)
			}

			over, ok := findEvent(res.Events, EventGameOver)
			if !ok {
				t.Fatal("no gameover event")
			}
			if over.Result == nil || over.Result.Stats.Score != tc.score {
				t.Errorf("result = %+v, expected score %d", over.Result, tc.score)
			}
			if over.Profile == nil || over.Profile.HighScore != tc.wantHighScore {
				t.Errorf("profile snapshot = %+v", over.Profile)
			}

			// Score is frozen
			g.Step(liftInput())
			if g.Score() != tc.score {
				t.Errorf("Score() = %d after gameover, expected %d", g.Score(), tc.score)
			}
		})
	}
}

func TestGameOverEvaluatesMissionsOnce(t *testing.T) {
	g := startTestGame(t, 1, 0)
	g.score = 12
	g.stats.BitsCollected = 5
	g.drone.Y = -40

	res := g.Step(idle())

	if n := countEvents(res.Events, EventMission); n != 2 {
		t.Fatalf("mission events = %d, expected 2", n)
	}
	p := g.Profile()
	if p.DataBits != 35 {
		t.Errorf("DataBits = %d, expected rewards 20+15", p.DataBits)
	}
	if !p.MissionDone("score10") || !p.MissionDone("collect5") {
		t.Errorf("missions = %v", p.CompletedMissions())
	}

	// Same stats again: already completed, no reward
	if err := g.Start(config.DifficultyNormal); err != nil {
		t.Fatal(err)
	}
	g.score = 12
	g.stats.BitsCollected = 5
	g.drone.Y = -40
	res = g.Step(idle())

	if n := countEvents(res.Events, EventMission); n != 0 {
		t.Errorf("mission events = %d on replay, expected 0", n)
	}
	if got := g.Profile().DataBits; got != 35 {
		t.Errorf("DataBits = %d on replay, expected 35", got)
	}
}

func TestGameOverReturnsToMenu(t *testing.T) {
	g := startTestGame(t, 1, 0)
	g.drone.Y = -40
	g.Step(idle())

	for i := 1; i < 90; i++ {
		res := g.Step(liftInput())
		if res.Phase != PhaseGameOver {
			t.Fatalf("step %d: Phase = %v, expected gameover", i, res.Phase)
		}
		if len(res.Events) != 0 {
			t.Fatalf("step %d: gameover emitted %d events", i, len(res.Events))
		}
	}

	res := g.Step(idle())
	if res.Phase != PhaseMenu {
		t.Errorf("Phase = %v after 90 frames, expected menu", res.Phase)
	}
	if countEvents(res.Events, EventMenu) != 1 {
		t.Error("expected a menu event")
	}
}

func TestStartFromGameOver(t *testing.T) {
	g := startTestGame(t, 1, 0)
	g.score = 4
	g.drone.Y = -40
	g.Step(idle())

	if err := g.Start(config.DifficultyEasy); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if g.Phase() != PhasePlaying || g.Score() != 0 {
		t.Errorf("phase/score = %v/%d, expected playing/0", g.Phase(), g.Score())
	}

	// The abandoned countdown must not fire
	for i := 0; i < 100; i++ {
		res := g.Step(liftInput())
		if countEvents(res.Events, EventMenu) != 0 {
			t.Fatal("stale gameover countdown returned to menu")
		}
		if res.Phase != PhasePlaying {
			break
		}
	}
}

func TestPickups(t *testing.T) {
	t.Run("data-bits", func(t *testing.T) {
		g := startTestGame(t, 1, 0)
		g.coins = []Coin{
			{Pickup{X: 216, Y: 248, Size: 15}},
			{Pickup{X: 226, Y: 250, Size: 15}},
			{Pickup{X: 700, Y: 100, Size: 15}},
		}

		res := g.Step(idle())

		if n := countEvents(res.Events, EventCoin); n != 2 {
			t.Errorf("coin events = %d, expected 2", n)
		}
		if got := g.Profile().DataBits; got != 2 {
			t.Errorf("DataBits = %d, expected 2", got)
		}
		if got := g.Stats().BitsCollected; got != 2 {
			t.Errorf("BitsCollected = %d, expected 2", got)
		}
		if len(g.Coins()) != 1 {
			t.Errorf("%d coins left, expected the distant one", len(g.Coins()))
		}
	})

	t.Run("shield", func(t *testing.T) {
		g := startTestGame(t, 1, 0)
		g.powerUps = []PowerUp{{Pickup: Pickup{X: 216, Y: 243, Size: 25}, Kind: PowerUpShield}}

		res := g.Step(idle())

		e, ok := findEvent(res.Events, EventPowerUp)
		if !ok || e.PowerUp != PowerUpShield {
			t.Fatalf("powerup event = %+v, %v", e, ok)
		}
		if e.Sound() != SoundPowerUp {
			t.Errorf("Sound() = %q, expected %q", e.Sound(), SoundPowerUp)
		}
		if !g.Drone().Shield {
			t.Error("shield should be active")
		}
		s := g.Stats()
		if s.ShieldsUsed != 1 || s.PowerUpsUsed != 1 {
			t.Errorf("stats = %+v, expected one shield", s)
		}
	})

	t.Run("slow-mo halves speed", func(t *testing.T) {
		g := startTestGame(t, 1, 0)
		g.powerUps = []PowerUp{{Pickup: Pickup{X: 216, Y: 243, Size: 25}, Kind: PowerUpSlowMo}}

		g.Step(idle())
		if got := g.Drone().SlowMo; got != 300 {
			t.Fatalf("SlowMo = %d, expected 300", got)
		}

		g.obstacles = []Obstacle{{X: 700, Width: 60, Top: 10, Bottom: 10}}
		g.Step(idle())

		if got := g.Obstacles()[0].X; got != 698 {
			t.Errorf("obstacle X = %v, expected half-speed scroll to 698", got)
		}
		if got := g.Drone().SlowMo; got != 299 {
			t.Errorf("SlowMo = %d, expected 299", got)
		}
	})
}

func TestOffscreenRemoval(t *testing.T) {
	g := startTestGame(t, 1, 0)
	g.obstacles = []Obstacle{
		{X: -58, Width: 60, Top: 10, Bottom: 10},
		{X: 400, Width: 60, Top: 10, Bottom: 10},
	}
	g.coins = []Coin{{Pickup{X: -12, Y: 100, Size: 15}}}
	g.powerUps = []PowerUp{{Pickup: Pickup{X: -22, Y: 100, Size: 25}}}

	g.Step(idle())

	if obs := g.Obstacles(); len(obs) != 1 || obs[0].X != 396 {
		t.Errorf("obstacles = %+v, expected only the visible one", obs)
	}
	if len(g.Coins()) != 0 || len(g.PowerUps()) != 0 {
		t.Error("off-screen pickups should be removed")
	}
}

func TestObstacleOscillation(t *testing.T) {
	tests := []struct {
		name    string
		top     float64
		dir     float64
		wantTop float64
		wantDir float64
	}{
		{"moves down", 100, 1, 101, 1},
		{"reverses past max", 190, 1, 191, -1},
		{"reverses past min", 50, -1, 49, 1},
		{"above band heading in", 200, -1, 199, -1},
		{"below band heading in", 40, 1, 41, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := startTestGame(t, 1, 0)
			g.obstacles = []Obstacle{{
				X: 700, Width: 60, Top: tc.top, Bottom: 100,
				Moving: true, Dir: tc.dir, MinTop: 50, MaxTop: 190,
			}}

			g.Step(idle())

			o := g.Obstacles()[0]
			if o.Top != tc.wantTop || o.Dir != tc.wantDir {
				t.Errorf("top/dir = %v/%v, expected %v/%v", o.Top, o.Dir, tc.wantTop, tc.wantDir)
			}
			if want := 100 - (tc.wantTop - tc.top); o.Bottom != want {
				t.Errorf("bottom = %v, expected %v", o.Bottom, want)
			}
		})
	}
}

func TestObstacleOutsideBandReturns(t *testing.T) {
	g := startTestGame(t, 1, 5000)
	g.obstacles = []Obstacle{{
		X: 700, Width: 60, Top: 200, Bottom: 100,
		Moving: true, Dir: 1, MinTop: 50, MaxTop: 190,
	}}

	minTop := 200.0
	for range 40 {
		g.Step(idle())
		minTop = min(minTop, g.Obstacles()[0].Top)
	}

	if minTop >= 190 {
		t.Errorf("lowest top over 40 frames = %v, expected below 190", minTop)
	}
}

func TestParticlesExpire(t *testing.T) {
	g := startTestGame(t, 1, 5000)
	g.particles = []Particle{
		{X: 100, Y: 100, VX: 2, Life: 1},
		{X: 100, Y: 100, VX: 2, VY: 1, Life: 5},
	}
	// Exhaust spawning depends on the RNG; only the seeded particles are checked.
	g.tuning.Particles.Chance = 0

	g.Step(idle())

	ps := g.Particles()
	if len(ps) != 1 {
		t.Fatalf("%d particles, expected 1", len(ps))
	}
	if ps[0].X != 98 || ps[0].Y != 99 || ps[0].Life != 4 {
		t.Errorf("particle = %+v", ps[0])
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (*Game, string) {
		g := startTestGame(t, 12345, 0)
		for i := 0; i < 600; i++ {
			in := idle()
			if i%14 == 0 {
				in = liftInput()
			}
			if g.Step(in).Phase != PhasePlaying {
				break
			}
		}
		s := core.NewScreen(80, 24)
		g.Render(s)
		return g, s.String()
	}

	g1, s1 := run()
	g2, s2 := run()

	if g1.Score() != g2.Score() || g1.Frame() != g2.Frame() {
		t.Errorf("score/frame differ: %d/%d vs %d/%d", g1.Score(), g1.Frame(), g2.Score(), g2.Frame())
	}
	if g1.Drone() != g2.Drone() {
		t.Errorf("drones differ: %+v vs %+v", g1.Drone(), g2.Drone())
	}
	if len(g1.Obstacles()) != len(g2.Obstacles()) {
		t.Error("obstacle stores differ")
	}
	if s1 != s2 {
		t.Error("rendered frames differ")
	}
}

func TestResize(t *testing.T) {
	g := startTestGame(t, 1, 0)
	g.Step(idle())
	y := g.Drone().Y

	g.Resize(1000, 600)

	if g.Phase() != PhasePlaying {
		t.Error("Resize should not end the session")
	}
	d := g.Drone()
	if d.X != 250 || d.Y != y {
		t.Errorf("drone = %+v, expected x=250 and unchanged y", d)
	}
	if w, h := g.Field(); w != 1000 || h != 600 {
		t.Errorf("Field() = %v×%v", w, h)
	}
}

func TestBackgroundScrollsInEveryPhase(t *testing.T) {
	g := newTestGame(t, 9, 0)
	before := g.stars[0].X

	g.Step(idle())

	if g.stars[0].X == before {
		t.Error("stars should scroll in the menu")
	}
}

func TestDelayFrames(t *testing.T) {
	tests := []struct {
		delay time.Duration
		rate  int
		want  int
	}{
		{1500 * time.Millisecond, 60, 90},
		{1500 * time.Millisecond, 30, 45},
		{10 * time.Millisecond, 60, 1},
		{0, 60, 0},
		{time.Second, 0, 60},
	}

	for _, tc := range tests {
		if got := delayFrames(tc.delay, tc.rate); got != tc.want {
			t.Errorf("delayFrames(%v, %d) = %d, expected %d", tc.delay, tc.rate, got, tc.want)
		}
	}
}

func TestEventSound(t *testing.T) {
	tests := []struct {
		kind EventKind
		want Sound
	}{
		{EventLift, SoundLift},
		{EventScore, SoundScore},
		{EventImpact, SoundCrash},
		{EventCrash, SoundCrash},
		{EventPowerUp, SoundPowerUp},
		{EventCoin, SoundCoin},
		{EventMission, SoundNone},
		{EventGameOver, SoundNone},
		{EventMenu, SoundNone},
	}

	for _, tc := range tests {
		if got := (Event{Kind: tc.kind}).Sound(); got != tc.want {
			t.Errorf("%v.Sound() = %q, expected %q", tc.kind, got, tc.want)
		}
	}
}
