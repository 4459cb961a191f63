package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dungeon/internal/combat"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game"
)

// printedEvents are the event types the printer subscribes to
var printedEvents = []string{
	combat.EventAttackHit,
	combat.EventAttackMiss,
	combat.EventCreatureIdle,
	combat.EventCreatureFlee,
	combat.EventSkillCast,
	combat.EventWeaponBroke,
	combat.EventBattleEnd,
	game.EventAchievementUnlocked,
}

// EventPrinter writes game events as styled lines while they happen
type EventPrinter struct {
	out           io.Writer
	subscriptions []string
}

// NewEventPrinter creates a printer writing to out
func NewEventPrinter(out io.Writer) *EventPrinter {
	return &EventPrinter{out: out}
}

// Subscribe registers the printer on bus
func (p *EventPrinter) Subscribe(bus events.EventBus) {
	for _, eventType := range printedEvents {
		p.subscriptions = append(p.subscriptions, bus.SubscribeFunc(eventType, 0, p.Handle))
	}
}

// Unsubscribe removes every subscription made by Subscribe
func (p *EventPrinter) Unsubscribe(bus events.EventBus) {
	for _, id := range p.subscriptions {
		if err := bus.Unsubscribe(id); err != nil {
			slog.Debug("failed to unsubscribe printer", "subscription_id", id, "error", err)
		}
	}
	p.subscriptions = nil
}

// Handle prints one event; unknown types are ignored
func (p *EventPrinter) Handle(_ context.Context, e events.Event) error {
	line := p.format(e)
	if line == "" {
		return nil
	}
	_, err := fmt.Fprintln(p.out, line)
	return err
}

func (p *EventPrinter) format(e events.Event) string {
	attacker, defender := nameOf(e.Source()), nameOf(e.Target())

	switch e.Type() {
	case combat.EventAttackHit:
		damage := intValue(e, combat.KeyDamage)
		if boolValue(e, combat.KeyCritical) {
			return criticalStyle.Render(fmt.Sprintf("%s lands a critical hit on %s for %d damage!", attacker, defender, damage))
		}
		return hitStyle.Render(fmt.Sprintf("%s hits %s for %d damage.", attacker, defender, damage))
	case combat.EventAttackMiss:
		return missStyle.Render(fmt.Sprintf("%s misses %s.", attacker, defender))
	case combat.EventCreatureIdle:
		return missStyle.Render(fmt.Sprintf("%s does nothing.", attacker))
	case combat.EventCreatureFlee:
		return missStyle.Render(fmt.Sprintf("%s tries to flee.", attacker))
	case combat.EventSkillCast:
		return spellStyle.Render(fmt.Sprintf("%s casts %s on %s for %d damage.",
			attacker, stringValue(e, combat.KeySkillID), defender, intValue(e, combat.KeyDamage)))
	case combat.EventWeaponBroke:
		if boolValue(e, combat.KeyDiscarded) {
			return criticalStyle.Render(fmt.Sprintf("%s's %s broke and was thrown away.", attacker, defender))
		}
		return criticalStyle.Render(fmt.Sprintf("%s's %s broke.", attacker, defender))
	case combat.EventBattleEnd:
		return titleStyle.Render(fmt.Sprintf("%s killed %s.", attacker, defender))
	case game.EventAchievementUnlocked:
		return achievementStyle.Render(stringValue(e, game.KeyMessage))
	default:
		return ""
	}
}

type named interface {
	Name() string
}

func nameOf(e core.Entity) string {
	if e == nil {
		return "something"
	}
	if n, ok := e.(named); ok {
		return n.Name()
	}
	return e.GetID()
}

func intValue(e events.Event, key string) int {
	v, ok := e.Context().Get(key)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

func boolValue(e events.Event, key string) bool {
	v, ok := e.Context().Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

func stringValue(e events.Event, key string) string {
	v, ok := e.Context().Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
