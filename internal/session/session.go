package session

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/mtmann213/opal-vanguard/internal/link"
)

/*------------------------------------------------------------------
 *
 * Purpose:	Session handshake above the link layer: a SYN/ACK exchange
 *		that synchronizes both ends onto the same hop-scheduler
 *		seed before either side trusts DATA frames.
 *
 *------------------------------------------------------------------*/

// Message types carried in link.ReceivedFrame.MessageType.
const (
	MsgTypeData byte = 0
	MsgTypeSYN  byte = 1
	MsgTypeACK  byte = 2
)

// State is one of the session lifecycle stages.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	default:
		return "UNKNOWN"
	}
}

// SeedSync is notified whenever the session learns a new hop seed, so
// it can re-seed the local scheduler.
type SeedSync interface {
	Reseed(x uint64) error
}

// Manager drives the SYN/ACK handshake and gates DATA frames behind a
// confirmed CONNECTED state. State, HandleReceived and BeginSend
// serialize on an internal mutex.
type Manager struct {
	mu          sync.Mutex
	state       State
	currentSeed uint16
	scheduler   SeedSync
}

// NewManager returns a Manager starting in IDLE with the given initial
// hop seed, wired to reseed scheduler whenever the seed changes.
func NewManager(initialSeed uint16, scheduler SeedSync) *Manager {
	return &Manager{state: StateIdle, currentSeed: initialSeed, scheduler: scheduler}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// HandleReceived processes one decoded frame from the link layer. It
// returns a (msgType, payload) pair to transmit immediately in
// response, or ok=false if nothing needs sending.
func (m *Manager) HandleReceived(rf *link.ReceivedFrame) (msgType byte, payload []byte, ok bool) {
	if rf == nil || !rf.Diagnostics.CRCOK {
		return 0, nil, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch rf.MessageType {
	case MsgTypeSYN:
		if len(rf.Payload) < 2 {
			return 0, nil, false
		}
		m.currentSeed = binary.BigEndian.Uint16(rf.Payload)
		if m.scheduler != nil {
			_ = m.scheduler.Reseed(uint64(m.currentSeed))
		}
		m.state = StateConnected
		return MsgTypeACK, nil, true

	case MsgTypeACK:
		if m.state == StateConnecting {
			m.state = StateConnected
		}
		return 0, nil, false

	case MsgTypeData:
		if m.state != StateConnected {
			return 0, nil, false
		}
		return 0, nil, false

	default:
		return 0, nil, false
	}
}

// BeginSend returns the (msgType, payload) to transmit for an outbound
// application payload: the payload itself if already CONNECTED, or a
// SYN handshake request (carrying the current seed) otherwise.
func (m *Manager) BeginSend(payload []byte) (msgType byte, out []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateConnected {
		return MsgTypeData, payload
	}

	m.state = StateConnecting
	var seedPayload = make([]byte, 2)
	binary.BigEndian.PutUint16(seedPayload, m.currentSeed)
	return MsgTypeSYN, seedPayload
}

func (m *Manager) String() string {
	return fmt.Sprintf("session(state=%s seed=0x%04X)", m.State(), m.currentSeed)
}
