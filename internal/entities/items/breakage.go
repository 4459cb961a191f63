package items

import (
	"log/slog"
	"time"
)

// BreakageResult describes what happened to an item after it broke
type BreakageResult struct {
	ClockStopped bool
	// Discarded is true when a non-repairable item left its inventory
	Discarded bool
}

// HandleBreakage applies the consequences of an integrity decrement that
// reported Broke. Clocks freeze at the time of breakage. Non-repairable items
// are removed from the inventory holding them; repairable items stay at zero
// until repaired.
func HandleBreakage(item *Item, at time.Time) BreakageResult {
	var result BreakageResult
	if item == nil {
		return result
	}
	if !item.IsBroken() {
		slog.Warn("breakage handled for an item that is not broken", "item_id", item.id)
		return result
	}

	if item.clock != nil {
		item.clock.stoppedAt = at
		result.ClockStopped = true
	}

	if item.HasTag(TagRepairable) {
		return result
	}

	if inv := item.inventory; inv != nil {
		result.Discarded = inv.Remove(item)
	}
	slog.Debug("item broke", "item_id", item.id, "discarded", result.Discarded)

	return result
}
