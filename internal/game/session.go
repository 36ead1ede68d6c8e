package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"room-crawler/internal/component"
	"room-crawler/internal/config"
	"room-crawler/internal/factory"
	"room-crawler/internal/gamemap"
	"room-crawler/internal/generate"
	"room-crawler/internal/system"
)

// State tracks the session state machine.
type State uint8

const (
	StatePlaying State = iota
	StateDead
	StateQuit
)

// MaxMessages caps the notification log.
const MaxMessages = 50

// Notifications that are not tied to an encounter.
const (
	MsgDeadEnd   = "Dead end!"
	MsgRoomAdd   = "A new room opens up."
	MsgNewRun    = "A new dungeon takes shape."
	MsgNoPassage = "No passage that way."
)

// Session is one player's game: a generated room chain, the player walking
// through it and the notifications produced along the way.
type Session struct {
	ID uuid.UUID

	cfg    *config.Config
	logger *zap.Logger
	seeds  *rand.Rand // draws a fresh seed for every reset

	seed     int32
	rng      *rand.Rand
	grid     *gamemap.Grid
	rooms    []*generate.Room
	index    map[gamemap.Point]*generate.Room
	deadEnd  bool
	player   *component.Player
	visited  map[gamemap.Point]bool
	revealed int
	debug    bool
	state    State
	messages []string
	runLog   RunLog
	logged   bool
}

// NewSession builds the first dungeon of a session. The configured seed is
// used for the first run only; every reset draws a new one.
func NewSession(cfg *config.Config, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		ID:    uuid.New(),
		cfg:   cfg,
		seeds: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.logger = logger.With(zap.String("session", s.ID.String()))

	seed := s.nextSeed()
	if cfg.Seed != "" {
		parsed, err := config.ParseSeed(cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("session seed: %w", err)
		}
		seed = parsed
	}
	if err := s.build(seed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) nextSeed() int32 {
	return int32(s.seeds.Uint32())
}

// build generates a dungeon from seed and puts a fresh player in its first room.
func (s *Session) build(seed int32) error {
	rng := rand.New(rand.NewSource(int64(seed)))
	grid := s.grid
	if grid == nil {
		grid = s.cfg.NewGrid()
	} else {
		grid.Reset()
	}
	res, err := generate.Generate(s.cfg.Generator(rng), grid)
	if err != nil {
		return fmt.Errorf("generate dungeon: %w", err)
	}

	s.seed = seed
	s.rng = rng
	s.grid = grid
	s.rooms = res.Rooms
	s.index = generate.Index(res.Rooms)
	s.deadEnd = res.DeadEnd
	s.revealed = 0
	s.state = StatePlaying
	s.messages = nil
	s.logged = false

	start := res.Rooms[0].Pos
	if s.player == nil {
		s.player = factory.NewPlayer(s.cfg.PlayerSpec(), start)
	} else {
		factory.ResetPlayer(s.player, s.cfg.PlayerSpec(), start)
	}
	s.visited = map[gamemap.Point]bool{start: true}
	s.runLog = newRunLog(s.SeedString())
	s.runLog.RoomsBuilt = len(s.rooms)
	s.runLog.RoomsVisited = 1

	s.logger.Info("dungeon generated",
		zap.String("seed", s.SeedString()),
		zap.Int("rooms", len(s.rooms)),
		zap.Bool("dead_end", res.DeadEnd),
		zap.Int("grid_width", grid.Width),
		zap.Int("grid_height", grid.Height),
	)
	if res.DeadEnd {
		s.addMessage(MsgDeadEnd)
	}
	return nil
}

// Handle applies one action and reports whether the session continues.
func (s *Session) Handle(a Action) bool {
	switch a {
	case ActionQuit:
		s.finishRun("quit")
		s.state = StateQuit
		return false
	case ActionReset:
		s.Reset()
		return true
	case ActionToggleDebug:
		s.debug = !s.debug
		return true
	}

	if s.state != StatePlaying {
		return true
	}

	if dir, ok := actionToDirection(a); ok {
		s.Move(dir)
		return true
	}
	switch a {
	case ActionAddRoom:
		s.AddRoom()
	case ActionRevealNext:
		s.RevealNext()
	case ActionHideLast:
		s.HideLast()
	}
	return true
}

// Reset ends the current run and starts over on a new seed.
func (s *Session) Reset() {
	s.finishRun("reset")
	if err := s.build(s.nextSeed()); err != nil {
		s.logger.Error("reset failed", zap.Error(err))
		s.addMessage("Could not build a dungeon.")
		return
	}
	s.addMessage(MsgNewRun)
}

// Move walks the player through the opening on side dir and triggers the
// event of the room entered.
func (s *Session) Move(dir gamemap.Direction) system.MoveResult {
	if s.state != StatePlaying {
		return system.MoveBlocked
	}
	res, room := system.TryMove(s.player, s.index, dir)
	if res == system.MoveBlocked {
		s.addMessage(MsgNoPassage)
		return res
	}
	s.runLog.Moves++
	if !s.visited[room.Pos] {
		s.visited[room.Pos] = true
		s.runLog.RoomsVisited++
	}
	s.logger.Debug("player moved",
		zap.Stringer("dir", dir),
		zap.Int("x", room.Pos.X),
		zap.Int("y", room.Pos.Y),
		zap.Bool("backtrack", res == system.MoveBacktrack),
	)
	s.enter(room)
	return res
}

func (s *Session) enter(room *generate.Room) {
	if !room.Event.Pending() {
		return
	}
	ev := room.Event
	out := system.TriggerEvent(s.player, room, s.cfg.MaxRounds)
	for _, m := range out.Messages {
		s.addMessage(m)
	}

	switch ev.Kind {
	case component.EventBattle:
		if out.Battle != nil {
			s.recordBattle(ev.Enemy, out.Battle)
		}
	case component.EventConsumable:
		if out.Consumed {
			s.runLog.ConsumablesUsed[ev.Consumable.String()]++
		}
	case component.EventPowerUp:
		s.runLog.PowerUpsTaken[ev.PowerUp.String()]++
	}
}

func (s *Session) recordBattle(enemy component.EnemyStats, br *system.BattleResult) {
	s.runLog.DamageDealt += br.DamageDealt
	s.runLog.DamageTaken += br.DamageTaken
	for _, r := range br.Rounds {
		s.logger.Debug("battle round",
			zap.String("enemy", enemy.Name),
			zap.Int("round", r.N),
			zap.Int("player_strike", r.PlayerStrike),
			zap.Int("enemy_strike", r.EnemyStrike),
			zap.Int("absorbed", r.Absorbed),
			zap.Int("player_health", r.PlayerHealth),
			zap.Int("enemy_health", r.EnemyHealth),
			zap.Int("shield", r.Shield),
		)
	}
	s.logger.Info("battle resolved",
		zap.String("enemy", enemy.Name),
		zap.Stringer("outcome", br.Outcome),
		zap.Bool("foresight", br.Foresight),
		zap.Int("rounds", len(br.Rounds)),
		zap.Int("player_health", s.player.Health.Current),
	)

	switch br.Outcome {
	case system.OutcomeWon:
		s.runLog.BattlesWon++
	case system.OutcomeLost:
		s.runLog.BattlesLost++
		s.runLog.CauseOfDefeat = enemy.Name
		s.state = StateDead
		s.finishRun("defeated")
	case system.OutcomeStalemate:
		s.runLog.Stalemates++
	}
}

// AddRoom extends the chain from its last room.
func (s *Session) AddRoom() (*generate.Room, error) {
	last := s.rooms[len(s.rooms)-1]
	room, err := generate.Extend(s.cfg.Generator(s.rng), s.grid, last)
	if errors.Is(err, generate.ErrDeadEnd) {
		s.deadEnd = true
		s.addMessage(MsgDeadEnd)
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	s.rooms = append(s.rooms, room)
	s.index[room.Pos] = room
	s.runLog.RoomsBuilt++
	s.addMessage(MsgRoomAdd)
	return room, nil
}

// RevealNext reveals one more room, up to the last one.
func (s *Session) RevealNext() {
	if s.revealed < len(s.rooms)-1 {
		s.revealed++
	}
}

// HideLast hides the most recently revealed room, down to the first one.
func (s *Session) HideLast() {
	if s.revealed > 0 {
		s.revealed--
	}
}

// finishRun emits the run summary once per run.
func (s *Session) finishRun(reason string) {
	if s.logged {
		return
	}
	s.logged = true
	s.logger.Info("run finished",
		zap.String("reason", reason),
		zap.Object("run", s.runLog),
	)
}

func (s *Session) addMessage(msg string) {
	s.messages = append(s.messages, msg)
	if len(s.messages) > MaxMessages {
		s.messages = s.messages[len(s.messages)-MaxMessages:]
	}
}

// Player returns the session's player.
func (s *Session) Player() *component.Player { return s.player }

// Rooms returns the room chain in generation order.
func (s *Session) Rooms() []*generate.Room { return s.rooms }

// CurrentRoom returns the room the player stands in.
func (s *Session) CurrentRoom() *generate.Room { return s.index[s.player.Pos] }

// Revealed is the index of the last revealed room.
func (s *Session) Revealed() int { return s.revealed }

// DeadEnd reports whether the chain can no longer grow from its last room.
func (s *Session) DeadEnd() bool { return s.deadEnd }

// Seed returns the raw seed of the current run.
func (s *Session) Seed() int32 { return s.seed }

// SeedString returns the seed in its base36 display form.
func (s *Session) SeedString() string { return config.FormatSeed(s.seed) }

func (s *Session) State() State       { return s.state }
func (s *Session) Debug() bool        { return s.debug }
func (s *Session) Messages() []string { return s.messages }
func (s *Session) RunLog() RunLog     { return s.runLog }
