package combat

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/items"
)

// Event types published on the bus
const (
	EventAttackHit    = "combat.attack.hit"
	EventAttackMiss   = "combat.attack.miss"
	EventCreatureIdle = "combat.creature.idle"
	EventCreatureFlee = "combat.creature.flee"
	EventSkillCast    = "combat.skill.cast"
	EventWeaponBroke  = "combat.weapon.broke"
	EventBattleEnd    = "combat.battle.end"
)

// Context keys set on published events
const (
	KeyDamage       = "damage"
	KeyCritical     = "critical"
	KeySkillID      = "skill_id"
	KeyWeaponID     = "weapon_id"
	KeyDiscarded    = "discarded"
	KeyCauseOfDeath = "cause_of_death"
	KeyTurns        = "turns"
)

var actionEvents = map[Action]string{
	ActionIdle:  EventCreatureIdle,
	ActionFlee:  EventCreatureFlee,
	ActionMiss:  EventAttackMiss,
	ActionHit:   EventAttackHit,
	ActionSpell: EventSkillCast,
}

// publish never fails the battle; bus errors are logged
func publish(ctx context.Context, bus events.EventBus, eventType string, source, target core.Entity, values map[string]interface{}) {
	if bus == nil {
		return
	}
	event := events.NewGameEvent(eventType, source, target)
	for k, v := range values {
		event.Context().Set(k, v)
	}
	if err := bus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish combat event",
			"event_type", eventType,
			"error", err)
	}
}

func (r *Resolver) publishOutcome(ctx context.Context, attacker, defender core.Entity, weapon *items.Item, o Outcome) {
	eventType, ok := actionEvents[o.Action]
	if !ok {
		return
	}

	values := map[string]interface{}{
		KeyDamage:   o.HitDamage,
		KeyCritical: o.Critical,
	}
	if o.SkillID != "" {
		values[KeySkillID] = o.SkillID
	}
	if o.CauseOfDeath != nil {
		values[KeyCauseOfDeath] = o.CauseOfDeath.String()
	}
	publish(ctx, r.bus, eventType, attacker, defender, values)

	if o.WeaponBroke && weapon != nil {
		publish(ctx, r.bus, EventWeaponBroke, attacker, weapon, map[string]interface{}{
			KeyWeaponID:  weapon.GetID(),
			KeyDiscarded: o.WeaponDiscarded,
		})
	}
}
