package combat

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/creature"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/items"
	"github.com/KirkDiggler/rpg-dungeon/internal/stats"
)

// chanceResolution is the number of faces rolled to decide a probability
const chanceResolution = 10000

// Attack resolves one attack of attacker against defender according to the
// attacker's archetype and publishes the outcome.
func (r *Resolver) Attack(ctx context.Context, attacker, defender *creature.Creature, env Environment) Outcome {
	weapon := attacker.Weapon()

	var outcome Outcome
	switch a := attacker.Archetype().(type) {
	case creature.Critter:
		outcome = r.critterTurn()
	case creature.Dummy:
		outcome = Outcome{Action: ActionIdle}
	case creature.Beast:
		outcome = r.strike(attacker, defender, env, strikeRules{
			hitRate: a.HitRate,
		})
	case creature.Undead:
		outcome = r.strike(attacker, defender, env, strikeRules{
			hitRate:   weaponHitRate(weapon, a.UnarmedHitRate),
			useWeapon: true,
		})
	case creature.Bat:
		outcome = r.strike(attacker, defender, env, strikeRules{
			hitRate:        math.Max(0, a.MaxHitRate-env.Luminosity/2),
			alwaysCritical: env.Luminosity <= a.CriticalLuminosity,
		})
	case creature.Hero:
		if attacker.Skills().HasReadySkill() {
			outcome = r.cast(attacker, defender)
			break
		}
		critical := a.UnarmedCriticalChance
		if weapon != nil && !weapon.IsBroken() {
			critical = a.CriticalChance
		}
		outcome = r.strike(attacker, defender, env, strikeRules{
			hitRate:        weaponHitRate(weapon, a.UnarmedHitRate),
			useWeapon:      true,
			criticalChance: critical,
		})
	default:
		slog.Warn("creature has no usable archetype, skipping its attack",
			"creature_id", attacker.GetID(),
			"preset_id", attacker.PresetID())
		outcome = Outcome{Action: ActionSkip}
	}

	outcome.AttackerID = attacker.GetID()
	outcome.DefenderID = defender.GetID()
	r.publishOutcome(ctx, attacker, defender, weapon, outcome)
	return outcome
}

type strikeRules struct {
	hitRate        float64
	useWeapon      bool
	criticalChance float64
	alwaysCritical bool
}

// weaponHitRate treats a broken weapon like bare hands
func weaponHitRate(weapon *items.Item, unarmed float64) float64 {
	if weapon == nil || weapon.IsBroken() {
		return unarmed
	}
	return weapon.Weapon().HitRate
}

// strike is the common hit, damage, critical and weapon wear sequence
func (r *Resolver) strike(attacker, defender *creature.Creature, env Environment, rules strikeRules) Outcome {
	if !r.chance(rules.hitRate) {
		return Outcome{Action: ActionMiss}
	}

	var weapon *items.Item
	if rules.useWeapon {
		weapon = attacker.Weapon()
	}
	working := weapon != nil && !weapon.IsBroken()

	damage := attacker.Attack()
	if working {
		damage += weapon.Weapon().Damage
	}

	outcome := Outcome{Action: ActionHit}
	if rules.alwaysCritical || r.chance(rules.criticalChance) {
		outcome.Critical = true
		damage *= 2
	}

	outcome.HitDamage = r.inflict(attacker, defender, damage)

	if defender.IsDead() {
		cause := causeOfDeath(weapon)
		outcome.CauseOfDeath = &cause
	}

	if working {
		r.wear(weapon, env, &outcome)
	}

	return outcome
}

// causeOfDeath must be read before the hit wears the weapon down
func causeOfDeath(weapon *items.Item) stats.CauseOfDeath {
	switch {
	case weapon == nil:
		return stats.Unarmed()
	case weapon.IsBroken():
		return stats.ByBrokenWeapon(weapon.PresetID())
	default:
		return stats.ByWeapon(weapon.PresetID())
	}
}

func (r *Resolver) wear(weapon *items.Item, env Environment, outcome *Outcome) {
	amount := weapon.Weapon().IntegrityDecrementOnHit
	if amount <= 0 {
		return
	}
	change, err := weapon.Integrity().DecrementBy(amount)
	if err != nil {
		slog.Warn("failed to wear weapon", "item_id", weapon.GetID(), "error", err)
		return
	}
	if !change.Broke {
		return
	}
	result := items.HandleBreakage(weapon, env.Time)
	outcome.WeaponBroke = true
	outcome.WeaponDiscarded = result.Discarded
}

func (r *Resolver) cast(attacker, defender *creature.Creature) Outcome {
	skill, _ := attacker.Skills().Use()
	outcome := Outcome{Action: ActionSpell, SkillID: skill.ID}

	if skill.Repair > 0 {
		if weapon := attacker.Weapon(); weapon != nil && weapon.HasTag(items.TagRepairable) {
			before := weapon.Integrity().Current()
			if err := weapon.Integrity().IncrementBy(skill.Repair); err == nil {
				outcome.WeaponRepaired = weapon.Integrity().Current() - before
			}
		}
	}

	if skill.Damage > 0 {
		outcome.HitDamage = r.inflict(attacker, defender, skill.Damage)
	}
	if defender.IsDead() {
		cause := stats.BySpell(skill.ID)
		outcome.CauseOfDeath = &cause
	}
	return outcome
}

func (r *Resolver) critterTurn() Outcome {
	roll, err := r.roller.Roll(2)
	if err != nil {
		slog.Warn("failed to roll critter action", "error", err)
		return Outcome{Action: ActionIdle}
	}
	if roll == 2 {
		return Outcome{Action: ActionFlee}
	}
	return Outcome{Action: ActionIdle}
}

func (r *Resolver) inflict(attacker, defender *creature.Creature, damage int) int {
	applied := defender.TakeDamage(damage)
	attacker.BattleLog().Inflicted += applied
	defender.BattleLog().Taken += applied
	return applied
}

// chance returns true with probability p. Certain outcomes do not roll.
func (r *Resolver) chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	roll, err := r.roller.Roll(chanceResolution)
	if err != nil {
		slog.Warn("failed to roll chance, treating as failure", "probability", p, "error", err)
		return false
	}
	return roll <= int(math.Round(p*chanceResolution))
}
