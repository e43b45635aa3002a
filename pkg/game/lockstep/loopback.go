package lockstep

// LoopbackTransport wires two or more drivers together in-process, for
// determinism tests: Send on one instance enqueues directly into every
// peer's inbox except the sender's own.
type LoopbackTransport struct {
	peers []*LoopbackTransport
	inbox []ReceivedBundle
}

// NewLoopbackTransport creates n mutually-connected loopback endpoints.
func NewLoopbackTransport(n int) []*LoopbackTransport {
	peers := make([]*LoopbackTransport, n)
	for i := range peers {
		peers[i] = &LoopbackTransport{}
	}
	for _, p := range peers {
		p.peers = peers
	}
	return peers
}

// Send implements Transport: it appends the bundle to every peer's inbox
// except the sender's own (the driver already loops its own bundle back
// into its local queue in FlushOutgoing).
func (l *LoopbackTransport) Send(turn uint32, sender uint8, payload []byte) {
	for _, p := range l.peers {
		if p == l {
			continue
		}
		p.inbox = append(p.inbox, ReceivedBundle{Turn: turn, Sender: sender, Payload: append([]byte(nil), payload...)})
	}
}

// Poll implements Transport: drains and returns every bundle queued since
// the last call.
func (l *LoopbackTransport) Poll() []ReceivedBundle {
	out := l.inbox
	l.inbox = nil
	return out
}
