package game

import (
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/creature"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/items"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
)

func itemView(item *items.Item, now time.Time) ItemView {
	v := ItemView{
		ID:        item.GetID(),
		PresetID:  item.PresetID(),
		Name:      item.QualifiedName(),
		Weight:    item.Weight().String(),
		Integrity: item.Integrity().Current(),
	}
	if item.IsClock() {
		shown, stopped := item.ReadClock(now)
		v.ClockTime = &shown
		v.Stopped = stopped
	}
	return v
}

func itemViews(inv *items.Inventory, now time.Time) []ItemView {
	var out []ItemView
	for _, item := range inv.Items() {
		out = append(out, itemView(item, now))
	}
	return out
}

func creatureView(c *creature.Creature, now time.Time) CreatureView {
	v := CreatureView{
		ID:        c.GetID(),
		PresetID:  c.PresetID(),
		Name:      c.Name(),
		Type:      c.GetType(),
		Health:    c.Health(),
		MaxHealth: c.MaxHealth(),
		Items:     itemViews(c.Inventory(), now),
	}
	if c.HasWeapon() {
		v.Weapon = c.Weapon().QualifiedName()
	}
	return v
}

func locationView(loc *world.Location, now time.Time) LocationView {
	v := LocationView{
		Point:      loc.Point(),
		PresetID:   loc.PresetID(),
		Name:       loc.Name(),
		PartOfDay:  world.PartOfDayAt(now),
		Luminosity: loc.Luminosity(now),
		Items:      itemViews(loc.Ground(), now),
	}
	for _, c := range loc.Creatures() {
		v.Creatures = append(v.Creatures, creatureView(c, now))
	}
	return v
}
