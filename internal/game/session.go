package game

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/chargeturn/data"
	"github.com/samdwyer/chargeturn/internal/battle"
	"github.com/samdwyer/chargeturn/internal/entity"
	"github.com/samdwyer/chargeturn/internal/gamedata"
	"github.com/samdwyer/chargeturn/internal/telemetry"
)

// Session runs one battle from start to outcome. It owns the roster, the
// scheduler, and the action layer that turns a scheduled actor into a
// committed action with a speed factor. The scheduler itself never sees any
// of this: it only learns who acts next.
type Session struct {
	cfg     Config
	party   *entity.Party
	troop   *entity.Troop
	roster  battle.RosterOf
	sched   *battle.TurnScheduler
	factors *battle.SpeedFactorTable
	depth   int
	rng     *rand.Rand

	outcome         Outcome
	turnCount       int
	forecast        []battle.Combatant
	forecastChanges int
	log             []string
}

// damageable is a combatant the demo action layer can strike. Damage rules
// are deliberately trivial; this session exists to exercise the scheduler.
type damageable interface {
	battle.Combatant
	TakeDamage(amount int) int
}

// NewSession builds a battle from configuration: scheduler tuning and battler
// definitions from gamedata, membership from the roster file. Any
// configuration problem fails here; a constructed session cannot hit a
// configuration error mid-battle.
func NewSession(cfg Config) (*Session, error) {
	def, err := gamedata.LoadSchedulerDef()
	if err != nil {
		return nil, err
	}
	model, factors, err := def.Compile()
	if err != nil {
		return nil, err
	}

	actorReg, err := gamedata.LoadActorRegistry()
	if err != nil {
		return nil, err
	}
	enemyReg, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}

	var rosterFile *data.RosterFile
	if cfg.RosterPath != "" {
		rosterFile, err = data.LoadRoster(cfg.RosterPath)
	} else {
		rosterFile, err = data.DefaultRoster()
	}
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		party:   &entity.Party{},
		troop:   &entity.Troop{},
		factors: factors,
		depth:   def.ForecastDepth,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}
	if cfg.ForecastDepth > 0 {
		s.depth = cfg.ForecastDepth
	}
	if s.cfg.MaxTurns == 0 {
		s.cfg.MaxTurns = defaultMaxTurns
	}

	// Party slots first, then troop: this is the tie-break order.
	for _, slot := range rosterFile.Party {
		adef := actorReg.GetByID(slot.Actor)
		if adef == nil {
			return nil, fmt.Errorf("roster references unknown actor %q", slot.Actor)
		}
		a := entity.NewActor(adef)
		if slot.Name != "" {
			a.Name = slot.Name
		}
		s.party.Members = append(s.party.Members, a)
		s.roster = append(s.roster, a)
	}
	for _, slot := range rosterFile.Troop {
		edef := enemyReg.GetByID(slot.Enemy)
		if edef == nil {
			return nil, fmt.Errorf("roster references unknown enemy %q", slot.Enemy)
		}
		e := entity.NewEnemy(edef)
		if slot.Name != "" {
			e.Name = slot.Name
		}
		s.troop.Enemies = append(s.troop.Enemies, e)
		s.roster = append(s.roster, e)
	}

	s.sched = battle.NewTurnScheduler(s.roster, model)
	return s, nil
}

// Run drives the battle to its outcome.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	tracer := telemetry.Tracer("battle")
	ctx, startSpan := tracer.Start(ctx, "battle.start")
	startSpan.SetAttributes(
		attribute.Int("party_size", len(s.party.Members)),
		attribute.Int("troop_size", len(s.troop.Enemies)),
		attribute.Int("threshold", s.sched.Model().Threshold()),
	)
	startSpan.End()

	s.logf("Battle begins: %d party members vs %d enemies", len(s.party.Members), len(s.troop.Enemies))
	s.refreshForecast()

	for s.outcome == OutcomeNone {
		if s.turnCount >= s.cfg.MaxTurns {
			s.outcome = OutcomeTurnLimit
			s.logf("Turn limit reached after %d turns", s.turnCount)
			break
		}
		if err := s.step(ctx); err != nil {
			return s.outcome, err
		}
	}

	_, endSpan := tracer.Start(ctx, "battle.end")
	endSpan.SetAttributes(
		attribute.String("outcome", s.outcome.String()),
		attribute.Int("turns_taken", s.turnCount),
		attribute.Int("rounds", s.sched.Rounds()),
		attribute.Int("party_alive", s.party.AliveCount()),
	)
	endSpan.End()
	return s.outcome, nil
}

// step resolves one turn: ask the scheduler who acts, choose and execute that
// combatant's action, then commit with the action's speed factor.
func (s *Session) step(ctx context.Context) error {
	actor, err := s.sched.AdvanceToNextActor()
	if err != nil {
		return fmt.Errorf("resolve turn %d: %w", s.turnCount+1, err)
	}

	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("actor", actor.DisplayName()),
		attribute.Int("turn", s.turnCount),
		attribute.Int("rounds", s.sched.Rounds()),
	)

	var action entity.Action
	switch a := actor.(type) {
	case *entity.Actor:
		action = s.chooseActorAction(a)
		a.Pending = action
	case *entity.Enemy:
		action = s.chooseEnemyAction(a)
		a.Pending = action
	default:
		return fmt.Errorf("turn %d: unknown combatant kind for %s", s.turnCount+1, actor.DisplayName())
	}

	s.executeAction(actor, action, span)

	// The speed factor is looked up only now, when the action is final.
	factor := s.factors.Lookup(action.Kind, action.SubID)
	span.SetAttributes(
		attribute.String("action", action.Kind.String()),
		attribute.Int("speed_factor", factor),
	)
	if err := s.sched.CommitTurn(actor, factor); err != nil {
		return fmt.Errorf("commit turn %d: %w", s.turnCount+1, err)
	}
	s.turnCount++

	s.checkOutcome()
	s.refreshForecast()
	return nil
}

// chooseActorAction picks the party actor's action: usually a weapon attack,
// sometimes a known skill so skill speed factors come into play.
func (s *Session) chooseActorAction(a *entity.Actor) entity.Action {
	if len(a.SkillIDs) > 0 && s.rng.Intn(3) == 0 {
		skill := a.SkillIDs[s.rng.Intn(len(a.SkillIDs))]
		return entity.Action{Kind: battle.ActionSkill, SubID: skill}
	}
	return entity.Action{Kind: battle.ActionAttack, SubID: a.WeaponID}
}

// chooseEnemyAction picks the enemy's action: attack if anyone is left to
// hit, otherwise pass the turn.
func (s *Session) chooseEnemyAction(e *entity.Enemy) entity.Action {
	if s.party.AliveCount() == 0 {
		return entity.Action{Kind: battle.ActionNothing}
	}
	return entity.Action{Kind: battle.ActionAttack}
}

// executeAction applies the action's effect. Skills and attacks both land a
// plain strike on the weakest opposing battler; everything else just logs.
func (s *Session) executeAction(actor battle.Combatant, action entity.Action, span trace.Span) {
	switch action.Kind {
	case battle.ActionAttack, battle.ActionSkill:
		target := s.chooseTarget(actor)
		if target == nil {
			s.logf("%s finds no target", label(actor))
			return
		}
		damage := strike(actor, target)
		span.SetAttributes(
			attribute.String("target", target.DisplayName()),
			attribute.Int("damage", damage),
		)
		verb := "attacks"
		if action.Kind == battle.ActionSkill {
			verb = fmt.Sprintf("uses skill %d on", action.SubID)
		}
		s.logf("%s %s %s for %d", label(actor), verb, label(target), damage)
		if !target.IsAlive() {
			s.logf("%s is defeated", label(target))
		}
	case battle.ActionNothing:
		s.logf("%s does nothing", label(actor))
	default:
		s.logf("%s acts (%s)", label(actor), action.Kind)
	}
}

// chooseTarget returns the lowest-HP alive battler on the opposing side.
func (s *Session) chooseTarget(actor battle.Combatant) damageable {
	if _, isActor := actor.(*entity.Actor); isActor {
		var lowest *entity.Enemy
		for _, e := range s.troop.Enemies {
			if e.IsAlive() && (lowest == nil || e.HP < lowest.HP) {
				lowest = e
			}
		}
		if lowest == nil {
			return nil
		}
		return lowest
	}
	var lowest *entity.Actor
	for _, m := range s.party.Members {
		if m.IsAlive() && (lowest == nil || m.HP < lowest.HP) {
			lowest = m
		}
	}
	if lowest == nil {
		return nil
	}
	return lowest
}

// strike applies flat damage: atk minus half the target's pdef, minimum 1.
func strike(actor battle.Combatant, target damageable) int {
	damage := int(actor.Stat("atk")) - int(target.Stat("pdef"))/2
	if damage < 1 {
		damage = 1
	}
	return target.TakeDamage(damage)
}

// checkOutcome ends the battle when one side is wiped out.
func (s *Session) checkOutcome() {
	if s.party.IsDefeated() {
		s.outcome = OutcomeDefeat
		s.logf("The party has been defeated")
	} else if s.troop.IsDefeated() {
		s.outcome = OutcomeVictory
		s.logf("Victory! All enemies defeated")
	}
}

// refreshForecast recomputes the predicted turn order and records it only
// when it differs from the previous prediction, so the display layer is
// signaled on real changes only.
func (s *Session) refreshForecast() {
	fresh := s.sched.Forecast(s.depth)
	if battle.SameOrder(fresh, s.forecast) {
		return
	}
	s.forecast = fresh
	s.forecastChanges++
}

// label formats a combatant name for the battle log, marking bosses.
func label(c battle.Combatant) string {
	if c.IsBoss() {
		return c.DisplayName() + " (boss)"
	}
	return c.DisplayName()
}

func (s *Session) logf(format string, args ...any) {
	s.log = append(s.log, fmt.Sprintf(format, args...))
}

// Outcome returns how the battle ended, or OutcomeNone while running.
func (s *Session) Outcome() Outcome { return s.outcome }

// Turns returns the number of committed turns.
func (s *Session) Turns() int { return s.turnCount }

// Log returns the battle log lines in order.
func (s *Session) Log() []string { return s.log }

// ForecastNames returns the current predicted turn order as display labels.
func (s *Session) ForecastNames() []string {
	names := make([]string, len(s.forecast))
	for i, c := range s.forecast {
		names[i] = label(c)
	}
	return names
}

// ForecastChanges returns how many times the prediction actually changed.
func (s *Session) ForecastChanges() int { return s.forecastChanges }
