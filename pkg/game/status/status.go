// Package status implements the simulation's player-facing status catalog.
// Status events (rejected commands, economy failures, garrison overflow,
// ...) are a stable string id, never a Go error — an error would put the
// wire contract's shape at the mercy of translators and formatting
// changes, per spec.md §4.H's "emitted only as Status events" rule.
package status

import "github.com/leonelquinteros/gotext"

// ID is a stable status catalog key. Never construct one outside this
// file's constants — Localize keys off the exact string.
type ID string

const (
	NotEnoughGold        ID = "STATUS_NOT_ENOUGH_GOLD"
	BuildingQueueFull    ID = "STATUS_BUILDING_QUEUE_FULL"
	UpgradeAlreadyQueued ID = "STATUS_UPGRADE_ALREADY_QUEUED"
	GarrisonFull         ID = "STATUS_GARRISON_FULL"
	NoUnloadSpace        ID = "STATUS_NO_UNLOAD_SPACE"
	InvalidTarget        ID = "STATUS_INVALID_TARGET"
	CannotBuildHere      ID = "STATUS_CANNOT_BUILD_HERE"
	PlayerDisconnected   ID = "STATUS_PLAYER_DISCONNECTED"
)

// Configure initializes gotext's translation catalog. Mirrors the
// teacher's main.go initGettext. Neither cmd/simulate nor cmd/replayviewer
// calls it.
func Configure(domain, locale, localeDir string) {
	gotext.Configure(localeDir, locale, domain)
}

// Localize resolves a status id to the current locale's display string.
// Ids with no translation entry fall back to the bare id, matching
// gotext.Get's own missing-key behavior.
func Localize(id ID) string {
	return gotext.Get(string(id))
}

// Event is one status occurrence, scoped to the player and tick it fired
// on so a replay/UI can attribute and timestamp it.
type Event struct {
	ID     ID
	Player uint8
	Tick   uint32
}

// Emitter collects status events during a tick for the match loop to
// drain and hand to a UI/log; kept as a plain slice, not a channel, since
// the simulation is single-threaded per spec.md's lockstep model.
type Emitter struct {
	events []Event
}

// Emit records a status event.
func (e *Emitter) Emit(id ID, player uint8, tick uint32) {
	e.events = append(e.events, Event{ID: id, Player: player, Tick: tick})
}

// Drain returns every event recorded since the last Drain and clears the
// buffer.
func (e *Emitter) Drain() []Event {
	out := e.events
	e.events = nil
	return out
}
