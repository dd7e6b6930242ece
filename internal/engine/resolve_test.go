package engine

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/limits"
)

func roster(tr *limits.Tracker, team game.Team, cards ...*game.Card) []*game.CombatUnit {
	units := make([]*game.CombatUnit, 0, len(cards))
	for _, c := range cards {
		units = append(units, game.NewCombatUnit(tr.NextUnitID(team), c))
	}
	return units
}

func countEvents(events []game.Event, kind game.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func eventsOf(events []game.Event, kind game.EventKind) []game.Event {
	out := make([]game.Event, 0, 4)
	for _, ev := range events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func vanilla(id string, attack, health int32) game.Card {
	return game.Card{ID: id, Name: id, Attack: attack, Health: health}
}

func TestSimultaneousDraw(t *testing.T) {
	a := vanilla("a", 10, 10)
	b := vanilla("b", 10, 10)
	tr := limits.NewTracker()
	events := ResolveUnits(roster(tr, game.TeamPlayer, &a), roster(tr, game.TeamEnemy, &b), tr, 1, nil)

	last := events[len(events)-1]
	if last.Kind != game.EventBattleEnd || last.Result != game.ResultDraw {
		t.Fatalf("expected BattleEnd draw, got %+v", last)
	}
	clashes := eventsOf(events, game.EventClash)
	if len(clashes) != 1 || clashes[0].PlayerDamage != 10 || clashes[0].EnemyDamage != 10 {
		t.Fatalf("expected one Clash{10,10}, got %+v", clashes)
	}
	var damageIdx, deathIdx []int
	for i, ev := range events {
		switch ev.Kind {
		case game.EventDamageTaken:
			if ev.Remaining != 0 {
				t.Fatalf("expected remaining 0, got %+v", ev)
			}
			damageIdx = append(damageIdx, i)
		case game.EventUnitDeath:
			deathIdx = append(deathIdx, i)
		}
	}
	if len(damageIdx) != 2 || len(deathIdx) != 2 {
		t.Fatalf("expected 2 DamageTaken and 2 UnitDeath, got %d/%d", len(damageIdx), len(deathIdx))
	}
	if damageIdx[1] >= deathIdx[0] {
		t.Fatalf("DamageTaken must precede UnitDeath: %v vs %v", damageIdx, deathIdx)
	}
}

func TestDeterministicLogs(t *testing.T) {
	strike := game.Ability{
		Name:    "strike",
		Trigger: game.TriggerOnStart,
		Effect: game.Effect{
			Kind:   game.EffectDamage,
			Amount: 2,
			Target: game.Target{Kind: game.TargetRandom, Scope: game.ScopeEnemies, Count: 2},
		},
	}
	hatch := game.Ability{
		Name:    "hatch",
		Trigger: game.TriggerOnFaint,
		Effect:  game.Effect{Kind: game.EffectSpawnUnit, CardID: "token"},
	}
	pool := game.NewCardPool([]game.Card{
		{ID: "caster", Name: "caster", Attack: 3, Health: 4, Abilities: []game.Ability{strike}},
		{ID: "brood", Name: "brood", Attack: 2, Health: 3, Abilities: []game.Ability{hatch}},
		{ID: "token", Name: "token", Attack: 1, Health: 1, Token: true},
	})
	run := func() []game.Event {
		tr := limits.NewTracker()
		p := roster(tr, game.TeamPlayer, pool["caster"], pool["brood"])
		e := roster(tr, game.TeamEnemy, pool["brood"], pool["caster"])
		return ResolveUnits(p, e, tr, 99, pool)
	}
	first, second := run(), run()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different logs: %d vs %d events", len(first), len(second))
	}
}

func TestKillStealFizzlesOnDeadTarget(t *testing.T) {
	bolt := game.Ability{
		Name:    "bolt",
		Trigger: game.TriggerOnStart,
		Effect: game.Effect{
			Kind:   game.EffectDamage,
			Amount: 5,
			Target: game.Target{Kind: game.TargetPosition, Scope: game.ScopeEnemies, Index: 0},
		},
	}
	a := game.Card{ID: "a", Name: "a", Attack: 10, Health: 10, Abilities: []game.Ability{bolt}}
	b := game.Card{ID: "b", Name: "b", Attack: 1, Health: 10, Abilities: []game.Ability{bolt}}
	victim := vanilla("victim", 1, 1)

	tr := limits.NewTracker()
	events := ResolveUnits(
		roster(tr, game.TeamPlayer, &a, &b),
		roster(tr, game.TeamEnemy, &victim),
		tr, 7, nil,
	)

	triggers := eventsOf(events, game.EventAbilityTrigger)
	if len(triggers) != 2 {
		t.Fatalf("expected both triggers in the log, got %d", len(triggers))
	}
	if triggers[0].Unit.Ordinal >= triggers[1].Unit.Ordinal {
		t.Fatalf("higher-attack unit must trigger first: %+v", triggers)
	}
	damages := eventsOf(events, game.EventAbilityDamage)
	if len(damages) != 1 {
		t.Fatalf("expected exactly one AbilityDamage (the second fizzles), got %d", len(damages))
	}
	if damages[0].Amount != 5 {
		t.Fatalf("expected 5 damage, got %d", damages[0].Amount)
	}
}

func TestShieldConsumption(t *testing.T) {
	jab := func(name string) game.Ability {
		return game.Ability{
			Name:    name,
			Trigger: game.TriggerOnStart,
			Effect: game.Effect{
				Kind:   game.EffectDamage,
				Amount: 3,
				Target: game.Target{Kind: game.TargetPosition, Scope: game.ScopeEnemies, Index: 0},
			},
		}
	}
	caster := game.Card{ID: "caster", Name: "caster", Attack: 0, Health: 10, Abilities: []game.Ability{jab("jab_one"), jab("jab_two")}}
	wall := vanilla("wall", 0, 20)

	tr := limits.NewTracker()
	player := roster(tr, game.TeamPlayer, &caster)
	enemy := roster(tr, game.TeamEnemy, &wall)
	enemy[0].Statuses = enemy[0].Statuses.With(game.StatusShield)
	events := ResolveUnits(player, enemy, tr, 3, nil)

	consumed := eventsOf(events, game.EventStatusConsumed)
	if len(consumed) != 1 || consumed[0].Status != game.StatusShield {
		t.Fatalf("expected one shield StatusConsumed, got %+v", consumed)
	}
	damages := eventsOf(events, game.EventAbilityDamage)
	if len(damages) != 2 {
		t.Fatalf("expected two AbilityDamage events, got %d", len(damages))
	}
	if damages[0].Amount != 0 {
		t.Fatalf("shielded hit must report zero damage, got %d", damages[0].Amount)
	}
	if damages[1].Amount != 3 {
		t.Fatalf("second hit must behave as ordinary damage, got %d", damages[1].Amount)
	}
}

func TestTriggerPriorityHierarchy(t *testing.T) {
	ping := func(name string) game.Ability {
		return game.Ability{
			Name:    name,
			Trigger: game.TriggerOnStart,
			Effect:  game.Effect{Kind: game.EffectGainMana, Amount: 1, Target: game.Target{Kind: game.TargetSelf}},
		}
	}
	// Attack breaks the first tie, health the second, team the third, board
	// index the fourth, declaration order the last.
	highAtk := game.Card{ID: "ha", Name: "ha", Attack: 9, Health: 1, Abilities: []game.Ability{ping("high_attack")}}
	highHP := game.Card{ID: "hh", Name: "hh", Attack: 5, Health: 9, Abilities: []game.Ability{ping("high_health")}}
	twinP := game.Card{ID: "tp", Name: "tp", Attack: 5, Health: 5, Abilities: []game.Ability{ping("player_twin")}}
	twinE := game.Card{ID: "te", Name: "te", Attack: 5, Health: 5, Abilities: []game.Ability{ping("enemy_twin")}}
	backP := game.Card{ID: "bp", Name: "bp", Attack: 5, Health: 5, Abilities: []game.Ability{ping("player_back_first"), ping("player_back_second")}}

	tr := limits.NewTracker()
	player := roster(tr, game.TeamPlayer, &twinP, &backP)
	enemy := roster(tr, game.TeamEnemy, &highAtk, &highHP, &twinE)
	events := ResolveUnits(player, enemy, tr, 5, nil)

	var order []string
	for _, ev := range events {
		if ev.Kind == game.EventAbilityTrigger && ev.Round == 0 {
			order = append(order, ev.Ability)
		}
	}
	want := []string{"high_attack", "high_health", "player_twin", "player_back_first", "player_back_second", "enemy_twin"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("trigger order mismatch:\n got %v\nwant %v", order, want)
	}
}

func TestFizzleSafety(t *testing.T) {
	outOfRange := game.Ability{
		Name:    "out_of_range",
		Trigger: game.TriggerOnStart,
		Effect: game.Effect{
			Kind:   game.EffectDamage,
			Amount: 4,
			Target: game.Target{Kind: game.TargetPosition, Scope: game.ScopeEnemies, Index: 4},
		},
	}
	noReaction := game.Ability{
		Name:    "no_reaction",
		Trigger: game.TriggerOnStart,
		Effect: game.Effect{
			Kind:   game.EffectDamage,
			Amount: 4,
			Target: game.Target{Kind: game.TargetAll, Scope: game.ScopeTriggerSource},
		},
	}
	works := game.Ability{
		Name:    "works",
		Trigger: game.TriggerOnStart,
		Effect: game.Effect{
			Kind:   game.EffectDamage,
			Amount: 4,
			Target: game.Target{Kind: game.TargetPosition, Scope: game.ScopeEnemies, Index: 0},
		},
	}
	caster := game.Card{ID: "caster", Name: "caster", Attack: 0, Health: 10, Abilities: []game.Ability{outOfRange, noReaction, works}}
	dummy := vanilla("dummy", 0, 20)

	tr := limits.NewTracker()
	events := ResolveUnits(roster(tr, game.TeamPlayer, &caster), roster(tr, game.TeamEnemy, &dummy), tr, 1, nil)

	if got := countEvents(events, game.EventAbilityTrigger); got < 3 {
		t.Fatalf("all three triggers must appear in the log, got %d", got)
	}
	damages := eventsOf(events, game.EventAbilityDamage)
	if len(damages) != 1 || damages[0].Ability != "works" {
		t.Fatalf("only the in-range ability may deal damage, got %+v", damages)
	}
}

func TestInfiniteBattleForcedDraw(t *testing.T) {
	mend := game.Ability{
		Name:    "mend",
		Trigger: game.TriggerBeforeAnyAttack,
		Effect: game.Effect{
			Kind:   game.EffectModifyStats,
			Health: 5,
			Target: game.Target{Kind: game.TargetSelf},
		},
	}
	healer := game.Card{ID: "healer", Name: "healer", Attack: 1, Health: 10, Abilities: []game.Ability{mend}}

	tr := limits.NewTracker()
	p := roster(tr, game.TeamPlayer, &healer)
	e := roster(tr, game.TeamEnemy, &healer)
	events := ResolveUnits(p, e, tr, 1, nil)

	if got := countEvents(events, game.EventLimitExceeded); got != 1 {
		t.Fatalf("expected exactly one LimitExceeded, got %d", got)
	}
	last := events[len(events)-1]
	if last.Kind != game.EventBattleEnd || last.Result != game.ResultDraw {
		t.Fatalf("a limit breach must force a draw, got %+v", last)
	}
}

func TestZeroDamageStalemateTerminates(t *testing.T) {
	pacifist := vanilla("pacifist", 0, 10)
	tr := limits.NewTracker()
	events := ResolveUnits(roster(tr, game.TeamPlayer, &pacifist), roster(tr, game.TeamEnemy, &pacifist), tr, 1, nil)
	if countEvents(events, game.EventLimitExceeded) != 1 {
		t.Fatalf("stalemate must breach and terminate")
	}
	if game.ResultOf(events) != game.ResultDraw {
		t.Fatalf("stalemate must end in a draw")
	}
}

func TestSaturatingBuffNeverWraps(t *testing.T) {
	pump := game.Ability{
		Name:    "pump",
		Trigger: game.TriggerOnStart,
		Effect: game.Effect{
			Kind:   game.EffectModifyStatsPermanent,
			Attack: math.MaxInt32,
			Target: game.Target{Kind: game.TargetSelf},
		},
	}
	juggernaut := game.Card{ID: "jug", Name: "jug", Attack: 5, Health: 10, Abilities: []game.Ability{pump}}
	dummy := vanilla("dummy", 0, 1)

	tr := limits.NewTracker()
	events := ResolveUnits(roster(tr, game.TeamPlayer, &juggernaut), roster(tr, game.TeamEnemy, &dummy), tr, 1, nil)

	mods := eventsOf(events, game.EventAbilityModStats)
	if len(mods) != 1 || !mods[0].Permanent {
		t.Fatalf("expected one permanent stat mod, got %+v", mods)
	}
	if mods[0].Attack != math.MaxInt32-5 {
		t.Fatalf("buff must clamp at int32 max, applied delta %d", mods[0].Attack)
	}
	clash := eventsOf(events, game.EventClash)[0]
	if clash.PlayerDamage != math.MaxInt32 {
		t.Fatalf("clamped attack must carry into the clash, got %d", clash.PlayerDamage)
	}
}

func TestNegativeAttackNeverHeals(t *testing.T) {
	sap := game.Ability{
		Name:    "sap",
		Trigger: game.TriggerOnStart,
		Effect: game.Effect{
			Kind:   game.EffectModifyStats,
			Attack: -10,
			Target: game.Target{Kind: game.TargetPosition, Scope: game.ScopeEnemies, Index: 0},
		},
	}
	drainer := game.Card{ID: "drainer", Name: "drainer", Attack: 2, Health: 30, Abilities: []game.Ability{sap}}
	brawler := vanilla("brawler", 3, 8)

	tr := limits.NewTracker()
	p := roster(tr, game.TeamPlayer, &brawler)
	e := roster(tr, game.TeamEnemy, &drainer)
	events := ResolveUnits(p, e, tr, 1, nil)

	for _, ev := range eventsOf(events, game.EventDamageTaken) {
		if ev.Team == game.TeamEnemy && ev.Amount != 0 {
			t.Fatalf("negative attack must deal zero damage, got %+v", ev)
		}
		if ev.Team == game.TeamEnemy && ev.Remaining > 30 {
			t.Fatalf("damage must never heal, remaining %d", ev.Remaining)
		}
	}
	if game.ResultOf(events) != game.ResultDefeat {
		t.Fatalf("sapped player must lose, got %v", game.ResultOf(events))
	}
}

func TestMaxTriggersExhausts(t *testing.T) {
	once := uint32(1)
	spark := game.Ability{
		Name:        "spark",
		Trigger:     game.TriggerBeforeAnyAttack,
		MaxTriggers: &once,
		Effect: game.Effect{
			Kind:   game.EffectDamage,
			Amount: 1,
			Target: game.Target{Kind: game.TargetPosition, Scope: game.ScopeEnemies, Index: 0},
		},
	}
	mage := game.Card{ID: "mage", Name: "mage", Attack: 1, Health: 10, Abilities: []game.Ability{spark}}
	tank := vanilla("tank", 1, 10)

	tr := limits.NewTracker()
	events := ResolveUnits(roster(tr, game.TeamPlayer, &mage), roster(tr, game.TeamEnemy, &tank), tr, 1, nil)

	fired := 0
	for _, ev := range eventsOf(events, game.EventAbilityTrigger) {
		if ev.Ability == "spark" {
			fired++
		}
	}
	if fired != 1 {
		t.Fatalf("max_triggers=1 ability fired %d times", fired)
	}
}

func TestGuardSoaksRandomTargeting(t *testing.T) {
	snipe := game.Ability{
		Name:    "snipe",
		Trigger: game.TriggerOnStart,
		Effect: game.Effect{
			Kind:   game.EffectDamage,
			Amount: 1,
			Target: game.Target{Kind: game.TargetRandom, Scope: game.ScopeEnemies, Count: 1},
		},
	}
	sniper := game.Card{ID: "sniper", Name: "sniper", Attack: 0, Health: 10, Abilities: []game.Ability{snipe}}
	squishy := vanilla("squishy", 0, 10)
	guard := vanilla("guard", 0, 10)

	for seed := uint64(1); seed <= 20; seed++ {
		tr := limits.NewTracker()
		player := roster(tr, game.TeamPlayer, &sniper)
		enemy := roster(tr, game.TeamEnemy, &squishy, &guard)
		enemy[1].Statuses = enemy[1].Statuses.With(game.StatusGuard)
		guardID := enemy[1].ID
		events := ResolveUnits(player, enemy, tr, seed, nil)
		dmg := eventsOf(events, game.EventAbilityDamage)[0]
		if *dmg.Unit != guardID {
			t.Fatalf("seed %d: random targeting bypassed the guard: %+v", seed, dmg)
		}
	}
}

func TestStandardRankingStableAcrossBoards(t *testing.T) {
	rally := game.Ability{
		Name:    "rally",
		Trigger: game.TriggerOnStart,
		Effect: game.Effect{
			Kind:   game.EffectModifyStats,
			Health: 1,
			Target: game.Target{Kind: game.TargetStandard, Scope: game.ScopeAll, Stat: game.StatAttack, Order: game.OrderDescending, Count: 2},
		},
	}
	leader := game.Card{ID: "leader", Name: "leader", Attack: 5, Health: 5, Abilities: []game.Ability{rally}}
	peerP := vanilla("peer_p", 5, 5)
	peerE := vanilla("peer_e", 5, 5)
	weakE := vanilla("weak_e", 3, 5)

	tr := limits.NewTracker()
	player := roster(tr, game.TeamPlayer, &leader, &peerP)
	enemy := roster(tr, game.TeamEnemy, &peerE, &weakE)
	wantFirst, wantSecond := player[0].ID, player[1].ID
	events := ResolveUnits(player, enemy, tr, 1, nil)

	mods := make([]game.Event, 0, 2)
	for _, ev := range eventsOf(events, game.EventAbilityModStats) {
		if ev.Ability == "rally" {
			mods = append(mods, ev)
		}
	}
	if len(mods) != 2 {
		t.Fatalf("expected two rally targets, got %d", len(mods))
	}
	// Duplicate attack values across both boards must resolve to the scan
	// order: the source's own side first, lower index first.
	if *mods[0].Unit != wantFirst || *mods[1].Unit != wantSecond {
		t.Fatalf("tie-break violated scan order: %+v", mods)
	}
}

func TestPoisonMakesClashLethal(t *testing.T) {
	viper := vanilla("viper", 1, 3)
	ox := vanilla("ox", 1, 50)

	tr := limits.NewTracker()
	player := roster(tr, game.TeamPlayer, &viper)
	player[0].Statuses = player[0].Statuses.With(game.StatusPoison)
	enemy := roster(tr, game.TeamEnemy, &ox)
	events := ResolveUnits(player, enemy, tr, 1, nil)

	for _, ev := range eventsOf(events, game.EventDamageTaken) {
		if ev.Team == game.TeamEnemy && ev.Remaining != 0 {
			t.Fatalf("poisoned hit must be lethal, got %+v", ev)
		}
	}
}

func TestDestroyKillsThroughBuffs(t *testing.T) {
	execute := game.Ability{
		Name:    "execute",
		Trigger: game.TriggerOnStart,
		Effect: game.Effect{
			Kind:   game.EffectDestroy,
			Target: game.Target{Kind: game.TargetPosition, Scope: game.ScopeEnemies, Index: 0},
		},
	}
	reaper := game.Card{ID: "reaper", Name: "reaper", Attack: 1, Health: 5, Abilities: []game.Ability{execute}}
	colossus := vanilla("colossus", 1, math.MaxInt32)

	tr := limits.NewTracker()
	events := ResolveUnits(roster(tr, game.TeamPlayer, &reaper), roster(tr, game.TeamEnemy, &colossus), tr, 1, nil)

	if countEvents(events, game.EventUnitDeath) != 1 {
		t.Fatalf("destroy must kill regardless of stats")
	}
	if game.ResultOf(events) != game.ResultVictory {
		t.Fatalf("expected victory, got %v", game.ResultOf(events))
	}
}

func TestFaintSpawnJoinsTheFight(t *testing.T) {
	hatch := game.Ability{
		Name:    "hatch",
		Trigger: game.TriggerOnFaint,
		Effect:  game.Effect{Kind: game.EffectSpawnUnit, CardID: "token"},
	}
	pool := game.NewCardPool([]game.Card{
		{ID: "brood", Name: "brood", Attack: 1, Health: 1, Abilities: []game.Ability{hatch}},
		{ID: "token", Name: "token", Attack: 9, Health: 9, Token: true},
	})
	foe := vanilla("foe", 2, 4)

	tr := limits.NewTracker()
	events := ResolveUnits(roster(tr, game.TeamPlayer, pool["brood"]), roster(tr, game.TeamEnemy, &foe), tr, 1, pool)

	spawns := eventsOf(events, game.EventUnitSpawn)
	if len(spawns) != 1 || spawns[0].CardID != "token" {
		t.Fatalf("expected one token spawn, got %+v", spawns)
	}
	if game.ResultOf(events) != game.ResultVictory {
		t.Fatalf("the spawned token should win the battle, got %v", game.ResultOf(events))
	}
	// Instance IDs stay unique: the token's ordinal differs from both
	// original units.
	seen := map[uint32]bool{}
	for _, ev := range events {
		if ev.Kind == game.EventUnitSpawn || ev.Kind == game.EventUnitDeath {
			if ev.Unit != nil {
				seen[ev.Unit.Ordinal] = true
			}
		}
	}
	if len(seen) < 3 {
		t.Fatalf("expected at least three distinct ordinals, got %v", seen)
	}
}

func TestSpawnRespectsBoardCapacity(t *testing.T) {
	breed := game.Ability{
		Name:    "breed",
		Trigger: game.TriggerOnStart,
		Effect:  game.Effect{Kind: game.EffectSpawnUnit, CardID: "token"},
	}
	pool := game.NewCardPool([]game.Card{
		{ID: "breeder", Name: "breeder", Attack: 1, Health: 2, Abilities: []game.Ability{breed}},
		{ID: "token", Name: "token", Attack: 1, Health: 1, Token: true},
	})
	filler := vanilla("filler", 1, 2)
	foe := vanilla("foe", 1, 2)

	tr := limits.NewTracker()
	player := roster(tr, game.TeamPlayer, pool["breeder"], &filler, &filler, &filler, &filler)
	events := ResolveUnits(player, roster(tr, game.TeamEnemy, &foe), tr, 1, pool)

	if got := countEvents(events, game.EventUnitSpawn); got != 0 {
		t.Fatalf("a full board must reject spawns, got %d", got)
	}
}

func TestConditionGatesTrigger(t *testing.T) {
	threshold := game.Ability{
		Name:    "threshold",
		Trigger: game.TriggerOnStart,
		Condition: &game.Condition{
			Kind: game.ConditionIs,
			Matcher: game.Matcher{
				Kind:  game.MatchStatValue,
				Scope: game.ScopeEnemies,
				Stat:  game.StatHealth,
				Op:    game.OpGe,
				Value: 5,
			},
		},
		Effect: game.Effect{Kind: game.EffectGainMana, Amount: 1, Target: game.Target{Kind: game.TargetSelf}},
	}
	watcher := game.Card{ID: "watcher", Name: "watcher", Attack: 2, Health: 3, Abilities: []game.Ability{threshold}}

	run := func(enemyHP int32) int {
		foe := vanilla("foe", 2, enemyHP)
		tr := limits.NewTracker()
		events := ResolveUnits(roster(tr, game.TeamPlayer, &watcher), roster(tr, game.TeamEnemy, &foe), tr, 1, nil)
		n := 0
		for _, ev := range eventsOf(events, game.EventAbilityTrigger) {
			if ev.Ability == "threshold" {
				n++
			}
		}
		return n
	}
	if got := run(4); got != 0 {
		t.Fatalf("condition below threshold must not fire, got %d", got)
	}
	if got := run(6); got != 1 {
		t.Fatalf("condition above threshold must fire once, got %d", got)
	}
}

func TestResolveBattleUnknownTemplate(t *testing.T) {
	pool := game.NewCardPool([]game.Card{vanilla("known", 1, 1)})
	player := &game.PlayerBoard{}
	player.Slots[0] = game.BoardSlot{Occupied: true, CardID: "missing", Attack: 1, Health: 1}
	enemy := &game.PlayerBoard{}
	enemy.Slots[0] = game.BoardSlot{Occupied: true, CardID: "known", Attack: 1, Health: 1}

	_, err := ResolveBattle(player, enemy, 1, pool)
	var notFound *game.TemplateNotFoundError
	if err == nil {
		t.Fatalf("expected TemplateNotFound error")
	}
	if !errors.As(err, &notFound) || notFound.CardID != "missing" {
		t.Fatalf("unexpected error: %v", err)
	}
}
