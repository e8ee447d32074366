package tui

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/neon-drone/internal/audio"
	"github.com/vovakirdan/neon-drone/internal/config"
	"github.com/vovakirdan/neon-drone/internal/core"
	"github.com/vovakirdan/neon-drone/internal/drone"
	"github.com/vovakirdan/neon-drone/internal/profile"
	"github.com/vovakirdan/neon-drone/internal/skins"
	"github.com/vovakirdan/neon-drone/internal/storage"
)

// view identifies the active screen.
type view int

const (
	viewMain view = iota
	viewDifficulty
	viewShop
	viewMissions
	viewScores
	viewGame
)

// Services are the side effects the app drives. Every field is optional.
type Services struct {
	Store  *storage.Store
	Owner  string
	Audio  *audio.Player
	Logger *log.Logger
}

// savedMsg reports the outcome of a background save.
type savedMsg struct {
	what string
	err  error
}

// pendingRun is a finished session on its way to the store. The mutex lets
// Flush wait for a save already in flight instead of writing it twice.
type pendingRun struct {
	mu      sync.Mutex
	profile profile.Profile
	record  *storage.SessionRecord
}

func (r *pendingRun) save(store *storage.Store, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.record == nil {
		return nil
	}
	if err := store.SaveProfile(owner, r.profile); err != nil {
		return err
	}
	if _, err := store.SaveSession(*r.record); err != nil {
		return err
	}
	r.record = nil
	return nil
}

// App is the top-level Bubble Tea model. It owns the simulation and steps it
// once per tick; menus are drawn over the scrolling background.
type App struct {
	cfg  config.Config
	rt   core.RuntimeConfig
	game *drone.Game
	svc  Services

	screen *core.Screen
	keys   KeyMap
	help   help.Model

	view       view
	mainCursor int
	diffCursor int
	shop       ShopModel
	missions   MissionsModel
	scores     ScoreboardModel

	input     core.InputFrame
	pending   *pendingRun
	completed []string // Missions finished in the last session
	width     int
	height    int
	quitting  bool
}

// NewApp creates the app for the given runtime. A zero seed is replaced by
// the current time.
func NewApp(cfg config.Config, rt core.RuntimeConfig, p profile.Profile, svc Services) App {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if svc.Owner == "" {
		svc.Owner = storage.DefaultOwner
	}
	if svc.Logger == nil {
		svc.Logger = log.Default()
	}
	rt = rt.WithScreen(rt.ScreenW, rt.ScreenH, cfg.Tuning.CellWidth, cfg.Tuning.CellHeight)

	h := help.New()
	h.ShowAll = false

	a := App{
		cfg:      cfg,
		rt:       rt,
		game:     drone.New(cfg, rt, p),
		svc:      svc,
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:     DefaultKeyMap(),
		help:     h,
		input:    core.NewInputFrame(),
		width:    rt.ScreenW,
		height:   rt.ScreenH,
		shop:     NewShopModel(rt.ScreenH),
		missions: NewMissionsModel(rt.ScreenH),
		scores:   NewScoreboardModel(svc.Store, rt.ScreenW, rt.ScreenH),
	}
	return a
}

// Init starts the frame loop.
func (a App) Init() tea.Cmd {
	return tickCmd(a.rt.FrameDuration())
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case TickMsg:
		return a.handleTick()
	case tea.MouseMsg:
		if a.view == viewGame && MapMouse(msg) == core.ActionLift {
			a.input.Set(core.ActionLift)
		}
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case savedMsg:
		if msg.err != nil {
			a.svc.Logger.Warn("save failed", "what", msg.what, "owner", a.svc.Owner, "error", msg.err)
		}
		return a, nil
	}
	return a, nil
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	a.rt = a.rt.WithScreen(w, h, a.cfg.Tuning.CellWidth, a.cfg.Tuning.CellHeight)
	a.screen.Resize(w, h)
	a.game.Resize(a.rt.FieldW, a.rt.FieldH)
	a.help.Width = w

	shop := NewShopModel(h)
	shop.status, shop.failed = a.shop.status, a.shop.failed
	a.shop = shop
	a.shop.Refresh(a.game.Profile())
	a.missions = NewMissionsModel(h)
	a.missions.Refresh(a.game.Profile())
	a.scores.Resize(w, h)
}

// handleTick advances the simulation by one frame and reacts to its events.
func (a App) handleTick() (tea.Model, tea.Cmd) {
	res := a.game.Step(a.input)
	a.input.Clear()

	cmds := []tea.Cmd{tickCmd(a.rt.FrameDuration())}
	a.svc.Audio.PlayEvents(res.Events)

	for _, e := range res.Events {
		switch e.Kind {
		case drone.EventMission:
			a.completed = append(a.completed, e.Mission.Description)
			a.svc.Logger.Info("mission complete", "owner", a.svc.Owner, "mission", e.Mission.ID)
		case drone.EventGameOver:
			a.svc.Logger.Info("session over",
				"owner", a.svc.Owner,
				"difficulty", e.Result.Difficulty,
				"score", e.Score,
				"bits", e.Result.Stats.BitsCollected,
			)
			a.pending = a.newPendingRun(*e.Profile, *e.Result)
			cmds = append(cmds, a.saveSessionCmd(a.pending))
		case drone.EventMenu:
			a.view = viewMain
		}
	}

	return a, tea.Batch(cmds...)
}

// handleKey routes a key press to the active screen.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		a.quitting = true
		return a, tea.Quit
	}

	switch a.view {
	case viewGame:
		if key.Matches(msg, a.keys.Lift) && a.game.Phase() == drone.PhasePlaying {
			a.input.Set(core.ActionLift)
		}
		return a, nil
	case viewMain:
		return a.updateMainMenu(msg)
	case viewDifficulty:
		return a.updateDifficultyMenu(msg)
	case viewShop:
		return a.updateShop(msg)
	case viewMissions:
		if key.Matches(msg, a.keys.Back) {
			a.view = viewMain
			return a, nil
		}
		var cmd tea.Cmd
		a.missions.table, cmd = a.missions.table.Update(msg)
		return a, cmd
	case viewScores:
		if key.Matches(msg, a.keys.Back) {
			a.view = viewMain
			return a, nil
		}
		var cmd tea.Cmd
		a.scores, cmd = a.scores.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateMainMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := mainMenuItems()
	switch a.keys.MapKey(msg) {
	case core.ActionUp:
		a.mainCursor = (a.mainCursor - 1 + len(items)) % len(items)
	case core.ActionDown:
		a.mainCursor = (a.mainCursor + 1) % len(items)
	case core.ActionConfirm:
		switch items[a.mainCursor] {
		case menuPlay:
			a.view = viewDifficulty
		case menuShop:
			a.shop.SetStatus("", false)
			a.shop.Refresh(a.game.Profile())
			a.view = viewShop
		case menuMissions:
			a.missions.Refresh(a.game.Profile())
			a.view = viewMissions
		case menuScores:
			a.scores.Reload()
			a.view = viewScores
		case menuQuit:
			a.quitting = true
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a App) updateDifficultyMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	presets := config.Presets()
	n := len(presets) + 1 // Back row
	switch a.keys.MapKey(msg) {
	case core.ActionUp:
		a.diffCursor = (a.diffCursor - 1 + n) % n
	case core.ActionDown:
		a.diffCursor = (a.diffCursor + 1) % n
	case core.ActionBack:
		a.view = viewMain
	case core.ActionConfirm:
		if a.diffCursor >= len(presets) {
			a.view = viewMain
			return a, nil
		}
		if err := a.game.Start(presets[a.diffCursor]); err != nil {
			a.svc.Logger.Error("cannot start session", "difficulty", presets[a.diffCursor], "error", err)
			return a, nil
		}
		a.completed = nil
		a.view = viewGame
	}
	return a, nil
}

func (a App) updateShop(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.view = viewMain
		return a, nil
	case key.Matches(msg, a.keys.Select):
		v, ok := a.shop.Selected()
		if !ok {
			return a, nil
		}
		p := a.game.Profile()
		action, err := skins.Select(&p, v.ID)
		if err != nil {
			a.shop.SetStatus(shopError(err), true)
			return a, nil
		}
		switch action {
		case skins.ActionBought:
			a.shop.SetStatus(fmt.Sprintf("Unlocked %s", v.Title), false)
		case skins.ActionEquipped:
			a.shop.SetStatus(fmt.Sprintf("Equipped %s", v.Title), false)
		default:
			return a, nil
		}
		a.game.SetProfile(p)
		a.shop.Refresh(a.game.Profile())
		return a, a.saveProfileCmd(a.game.Profile())
	}

	var cmd tea.Cmd
	a.shop.table, cmd = a.shop.table.Update(msg)
	return a, cmd
}

// shopError turns a purchase error into a status line.
func shopError(err error) string {
	switch {
	case errors.Is(err, profile.ErrInsufficientFunds):
		return "Not enough data-bits"
	case errors.Is(err, profile.ErrLocked):
		return "Variant is locked"
	default:
		return err.Error()
	}
}

// saveProfileCmd persists the profile off the update loop.
func (a App) saveProfileCmd(p profile.Profile) tea.Cmd {
	store, owner := a.svc.Store, a.svc.Owner
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return savedMsg{what: "profile", err: store.SaveProfile(owner, p)}
	}
}

// newPendingRun builds the store records for a finished session.
func (a App) newPendingRun(p profile.Profile, res drone.SessionResult) *pendingRun {
	return &pendingRun{
		profile: p,
		record: &storage.SessionRecord{
			RunID:      uuid.NewString(),
			Owner:      a.svc.Owner,
			Difficulty: string(res.Difficulty),
			Score:      res.Stats.Score,
			Bits:       res.Stats.BitsCollected,
			Shields:    res.Stats.ShieldsUsed,
			PowerUps:   res.Stats.PowerUpsUsed,
			Frames:     res.Frames,
		},
	}
}

// saveSessionCmd persists the end-of-session profile and the run record.
func (a App) saveSessionCmd(run *pendingRun) tea.Cmd {
	store, owner := a.svc.Store, a.svc.Owner
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return savedMsg{what: "session", err: run.save(store, owner)}
	}
}

// Flush writes what the background saves may not have reached: the last
// session, if its command never ran, and the current profile. The program
// does not wait for in-flight commands on exit, so call Flush after Run.
func (a App) Flush() error {
	if a.svc.Store == nil {
		return nil
	}
	if a.pending != nil {
		if err := a.pending.save(a.svc.Store, a.svc.Owner); err != nil {
			return fmt.Errorf("tui: cannot save session: %w", err)
		}
	}
	if err := a.svc.Store.SaveProfile(a.svc.Owner, a.game.Profile()); err != nil {
		return fmt.Errorf("tui: cannot save profile: %w", err)
	}
	return nil
}

// View renders the active screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewShop:
		return a.shop.View(a.game.Profile(), a.width, a.help.View(a.keys))
	case viewMissions:
		return a.missions.View(a.width, a.help.View(a.keys))
	case viewScores:
		return a.scores.View()
	}

	a.game.Render(a.screen)
	switch a.view {
	case viewMain:
		drawMainMenu(a.screen, a.game.Profile(), a.mainCursor)
	case viewDifficulty:
		drawDifficultyMenu(a.screen, a.cfg, a.diffCursor)
	case viewGame:
		drawHUD(a.screen, a.game, a.rt.TickRate)
		if a.game.Phase() == drone.PhaseGameOver {
			drawGameOver(a.screen, a.game, a.completed)
		}
	}
	return RenderScreen(a.screen)
}

// Game exposes the simulation for inspection.
func (a App) Game() *drone.Game {
	return a.game
}

// Run starts the Bubble Tea program and blocks until the player quits.
// It returns the final model so the caller can Flush it.
func Run(app App) (App, error) {
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	m, err := p.Run()
	if final, ok := m.(App); ok {
		app = final
	}
	return app, err
}
