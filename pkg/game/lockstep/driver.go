// Package lockstep drives the simulation's fixed-turn clock: it gates
// simulation advancement on every connected player having at least one
// input bundle queued, applies bundles in player-id order, and hands the
// locally-produced bundle to a Transport, per spec.md §4.J.
package lockstep

import (
	"encoding/binary"
	"errors"

	"goldrush/pkg/game/diag"
	"goldrush/pkg/game/input"
)

var errShortBundle = errors.New("lockstep: bundle shorter than its count header")

// PlayerStatus mirrors the driver's view of a connected participant.
type PlayerStatus uint8

const (
	StatusNone PlayerStatus = iota
	StatusActive
	StatusDisconnected
)

// TurnDuration is ticks-per-turn; the source uses per-tick turns padded
// by a fixed latency window, modeled here as one turn per tick with a
// constant look-ahead: a turn fires on every Tick that is not stalled.
const TurnDuration = 1

// Latency is how many empty turns a player's commands are buffered behind
// before being applied, giving every peer time to receive them over the
// transport before the turn that consumes them arrives locally.
const Latency = 4

// Transport hands a serialized turn bundle to the network layer and
// receives bundles from other players. Kept minimal so tests can use an
// in-process LoopbackTransport instead of a real socket.
type Transport interface {
	Send(turn uint32, sender uint8, payload []byte)
	Poll() []ReceivedBundle
}

// ReceivedBundle is one inbound frame: sender, the turn it targets, and
// the serialized Input list.
type ReceivedBundle struct {
	Turn    uint32
	Sender  uint8
	Payload []byte
}

// Driver owns the turn clock and per-player bundle queues for one match.
type Driver struct {
	transport Transport
	localID   uint8
	statuses  []PlayerStatus

	inputQueues [][][]input.Input // inputQueues[player] is a FIFO of turn bundles
	outgoing    []input.Input     // this player's outgoing commands for the next turn

	turn      uint32
	turnTimer uint32
}

// NewDriver creates a driver for numPlayers participants, with localID
// identifying which player this process plays.
func NewDriver(transport Transport, localID uint8, numPlayers int) *Driver {
	d := &Driver{
		transport:   transport,
		localID:     localID,
		statuses:    make([]PlayerStatus, numPlayers),
		inputQueues: make([][][]input.Input, numPlayers),
		turnTimer:   0,
	}
	for i := range d.statuses {
		d.statuses[i] = StatusActive
	}
	// Prime every queue with Latency empty turns, mirroring the source's
	// LATENCY-padded startup: without this, the very first turn would
	// stall forever since no player has produced a bundle yet.
	for t := 0; t < Latency; t++ {
		d.transport.Send(uint32(t), localID, encodeBundle(nil))
		d.inputQueues[localID] = append(d.inputQueues[localID], nil)
	}
	return d
}

// Disconnect marks player as disconnected: the driver no longer waits on
// their bundles.
func (d *Driver) Disconnect(player uint8) {
	d.statuses[player] = StatusDisconnected
}

// QueueLocalInput appends one command to this tick's outgoing bundle.
func (d *Driver) QueueLocalInput(in input.Input) {
	d.outgoing = append(d.outgoing, in)
}

// drainTransport folds every bundle the transport has received since the
// last poll into the matching player's queue.
func (d *Driver) drainTransport() {
	for _, r := range d.transport.Poll() {
		ins, err := decodeBundle(r.Payload)
		if err != nil {
			diag.Fatal("lockstep: corrupt bundle from player %d: %v", r.Sender, err)
		}
		d.inputQueues[r.Sender] = append(d.inputQueues[r.Sender], ins)
	}
}

// ReadyToAdvance reports whether every active player has at least one
// bundle queued for the current turn — the stall gate of spec.md §4.J
// step 1.1.
func (d *Driver) ReadyToAdvance() (bool, []uint8) {
	var waiting []uint8
	for p, st := range d.statuses {
		if st != StatusActive {
			continue
		}
		if len(d.inputQueues[p]) == 0 {
			waiting = append(waiting, uint8(p))
		}
	}
	return len(waiting) == 0, waiting
}

// PopTurnInputs implements spec.md §4.J step 1.2: pop one bundle from
// every active player's queue and flatten them into the order the input
// handler must apply them — by player id, then by each bundle's own
// serialized order.
func (d *Driver) PopTurnInputs() []AppliedInput {
	var applied []AppliedInput
	for p, st := range d.statuses {
		if st != StatusActive {
			continue
		}
		bundle := d.inputQueues[p][0]
		d.inputQueues[p] = d.inputQueues[p][1:]
		for _, in := range bundle {
			applied = append(applied, AppliedInput{Player: uint8(p), Input: in})
		}
	}
	return applied
}

// AppliedInput pairs one decoded Input with the player who issued it.
type AppliedInput struct {
	Player uint8
	Input  input.Input
}

// FlushOutgoing implements spec.md §4.J step 1.3: serialize this turn's
// outgoing queue, hand it to the transport, and loop it back into the
// local player's own queue so local playback is symmetric with remote
// playback. Clears the outgoing buffer.
func (d *Driver) FlushOutgoing() {
	payload := encodeBundle(d.outgoing)
	d.transport.Send(d.turn, d.localID, payload)
	d.inputQueues[d.localID] = append(d.inputQueues[d.localID], append([]input.Input(nil), d.outgoing...))
	d.outgoing = nil
}

// Tick advances the driver's clock by one tick. When turnTimer reaches
// zero it polls the transport, checks the stall gate, and (if ready) pops
// and returns this turn's applied inputs plus flushes the outgoing
// bundle; otherwise it returns stalled=true and the simulation must not
// advance.
func (d *Driver) Tick() (applied []AppliedInput, stalled bool, waitingOn []uint8) {
	if d.turnTimer != 0 {
		d.turnTimer--
		return nil, false, nil
	}

	d.drainTransport()
	ready, waiting := d.ReadyToAdvance()
	if !ready {
		return nil, true, waiting
	}

	applied = d.PopTurnInputs()
	d.FlushOutgoing()
	d.turn++
	// This tick already counts toward the next turn's duration.
	d.turnTimer = TurnDuration - 1
	return applied, false, nil
}

// encodeBundle serializes a turn's outgoing Input list, per spec.md §6's
// "serialized Input bundle" framing: a u32 count followed by each Input's
// own tagged encoding back-to-back.
func encodeBundle(ins []input.Input) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(len(ins)))
	for _, in := range ins {
		buf = input.Encode(buf, in)
	}
	return buf
}

func decodeBundle(payload []byte) ([]input.Input, error) {
	if len(payload) < 4 {
		return nil, errShortBundle
	}
	count := binary.LittleEndian.Uint32(payload)
	rest := payload[4:]
	out := make([]input.Input, 0, count)
	for i := uint32(0); i < count; i++ {
		in, tail, err := input.Decode(rest)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
		rest = tail
	}
	return out, nil
}
