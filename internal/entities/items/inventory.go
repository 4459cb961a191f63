package items

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// AddResult is the outcome of simulating an insertion
type AddResult int

// Simulation results, checked in this order
const (
	AddSuccess AddResult = iota
	AddAlreadyPresent
	AddHeldElsewhere
	AddCountLimit
	AddWeightLimit
)

func (r AddResult) String() string {
	switch r {
	case AddSuccess:
		return "success"
	case AddAlreadyPresent:
		return "already present"
	case AddHeldElsewhere:
		return "held by another inventory"
	case AddCountLimit:
		return "item limit reached"
	case AddWeightLimit:
		return "weight limit reached"
	default:
		return "unknown"
	}
}

// Wielder is the owner of an inventory that may equip one of its items
type Wielder interface {
	Weapon() *Item
	UnsetWeapon()
}

// InventoryConfig holds the limits of an inventory
type InventoryConfig struct {
	// Owner is optional; inventories lying on the ground have none
	Owner       Wielder
	ItemLimit   int
	WeightLimit Weight
}

// Validate ensures limits are usable
func (c *InventoryConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("ItemLimit", c.ItemLimit, 0, vb)
	if c.WeightLimit < 0 {
		vb.Field("WeightLimit", "must not be negative")
	}
	return vb.Build()
}

// Inventory is an ordered, bounded collection of items
type Inventory struct {
	owner       Wielder
	items       []*Item
	itemLimit   int
	weightLimit Weight
}

// NewInventory creates an empty inventory
func NewInventory(cfg *InventoryConfig) (*Inventory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid inventory config")
	}

	return &Inventory{
		owner:       cfg.Owner,
		itemLimit:   cfg.ItemLimit,
		weightLimit: cfg.WeightLimit,
	}, nil
}

// Items returns the items in insertion order
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Count returns the number of items
func (inv *Inventory) Count() int {
	return len(inv.items)
}

// ItemLimit returns the maximum number of items
func (inv *Inventory) ItemLimit() int {
	return inv.itemLimit
}

// WeightLimit returns the maximum total weight
func (inv *Inventory) WeightLimit() Weight {
	return inv.weightLimit
}

// Weight returns the total weight of the items
func (inv *Inventory) Weight() Weight {
	var total Weight
	for _, item := range inv.items {
		total = total.Add(item.Weight())
	}
	return total
}

// Contains reports whether this exact item instance is held
func (inv *Inventory) Contains(item *Item) bool {
	return inv.indexOf(item) >= 0
}

// Find returns the item with the given instance id
func (inv *Inventory) Find(id string) (*Item, bool) {
	for _, item := range inv.items {
		if item.id == id {
			return item, true
		}
	}
	return nil, false
}

// SimulateAdd reports whether Add would succeed without changing anything
func (inv *Inventory) SimulateAdd(item *Item) AddResult {
	switch {
	case inv.Contains(item):
		return AddAlreadyPresent
	case item.inventory != nil:
		return AddHeldElsewhere
	case len(inv.items) >= inv.itemLimit:
		return AddCountLimit
	case inv.Weight().Add(item.Weight()).Exceeds(inv.weightLimit):
		return AddWeightLimit
	default:
		return AddSuccess
	}
}

// Add inserts an item. Callers are expected to simulate first; an insertion
// that would not succeed is refused and leaves the inventory untouched.
func (inv *Inventory) Add(item *Item) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}
	if result := inv.SimulateAdd(item); result != AddSuccess {
		slog.Warn("refused inventory insertion",
			"item_id", item.id,
			"result", result.String())
		return errors.FailedPreconditionf("cannot add %s: %s", item.id, result).
			WithMeta("item_id", item.id).
			WithMeta("result", result.String())
	}

	inv.items = append(inv.items, item)
	item.inventory = inv
	slog.Debug("item added to inventory", "item_id", item.id, "count", len(inv.items))
	return nil
}

// Remove detaches an item. If it is the owner's equipped weapon the weapon is
// unequipped first. Removing an absent item is a logged no-op.
func (inv *Inventory) Remove(item *Item) bool {
	idx := inv.indexOf(item)
	if idx < 0 {
		if item != nil {
			slog.Warn("tried to remove an item that is not in the inventory", "item_id", item.id)
		}
		return false
	}

	if inv.owner != nil && inv.owner.Weapon() == item {
		inv.owner.UnsetWeapon()
	}

	inv.items = append(inv.items[:idx], inv.items[idx+1:]...)
	item.inventory = nil
	slog.Debug("item removed from inventory", "item_id", item.id, "count", len(inv.items))
	return true
}

// RemoveAll detaches every item and returns them in order
func (inv *Inventory) RemoveAll() []*Item {
	removed := inv.Items()
	for _, item := range removed {
		inv.Remove(item)
	}
	return removed
}

// Refresh removes perishable items that reached their decomposition age
func (inv *Inventory) Refresh(now time.Time) []*Item {
	var decomposed []*Item
	for _, item := range inv.Items() {
		if item.IsDecomposed(now) {
			inv.Remove(item)
			decomposed = append(decomposed, item)
		}
	}
	return decomposed
}

func (inv *Inventory) indexOf(item *Item) int {
	for i, held := range inv.items {
		if held == item {
			return i
		}
	}
	return -1
}
