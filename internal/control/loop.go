package control

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/soar/padlink/internal/status"
	"github.com/soar/padlink/internal/transport"
)

// Device is the controller as the loop sees it. Axis and Button take logical
// indices; Axis returns forward-positive values in [-1, 1].
type Device interface {
	Rumbler
	Present() bool
	Probe() bool
	Name() string
	Axis(index int) float64
	Button(index int) bool
	Close() error
}

// Sender delivers one command best-effort.
type Sender interface {
	Send(ctx context.Context, v int) (transport.Status, error)
	Close() error
}

// Bindings maps the loop's roles to logical controller indices.
type Bindings struct {
	Axis    int
	Buttons [NumButtons]int
}

// LoopConfig is everything the loop needs besides its collaborators.
type LoopConfig struct {
	Period             time.Duration
	ReprobeInterval    time.Duration
	VibrationThreshold int
	Bindings           Bindings
	Machine            MachineConfig
	Debug              bool
}

// Loop drives one tick at a time through edge detection, the machine,
// the transport and feedback. All of its state is owned by the goroutine
// calling Run.
type Loop struct {
	cfg      LoopConfig
	dev      Device
	tx       Sender
	machine  *Machine
	edges    EdgeDetector
	feedback Feedback
	rate     status.RateMeter

	present   bool
	lastProbe time.Time
	previous  int
	conn      transport.Status
	lastErr   string
	axis      float64

	snapshots chan status.Snapshot
	now       func() time.Time
}

// NewLoop validates cfg and wires the collaborators. Nothing is touched until Run or Tick.
func NewLoop(cfg LoopConfig, dev Device, tx Sender) (*Loop, error) {
	if dev == nil || tx == nil {
		return nil, errors.New("control: device and sender required")
	}
	if cfg.Period <= 0 {
		return nil, errors.New("control: tick period must be > 0")
	}
	if cfg.ReprobeInterval <= 0 {
		cfg.ReprobeInterval = time.Second
	}
	m, err := NewMachine(cfg.Machine)
	if err != nil {
		return nil, err
	}
	return &Loop{
		cfg:     cfg,
		dev:     dev,
		tx:      tx,
		machine: m,
		feedback: Feedback{
			Threshold: cfg.VibrationThreshold,
			Max:       cfg.Machine.Max,
			Period:    cfg.Period,
			Debug:     cfg.Debug,
		},
		rate:      status.RateMeter{Window: time.Second},
		snapshots: make(chan status.Snapshot, 16),
		now:       time.Now,
	}, nil
}

// Snapshots returns the channel on which one snapshot per tick is published.
// Snapshots are dropped when the reader falls behind.
func (l *Loop) Snapshots() <-chan status.Snapshot {
	return l.snapshots
}

// Machine exposes the state machine for inspection.
func (l *Loop) Machine() *Machine {
	return l.machine
}

// Run sends the initial zero command and ticks every period until ctx is done.
// On the way out it zeroes a non-zero actuator and releases both the transport
// and the controller, whatever happened before.
func (l *Loop) Run(ctx context.Context) {
	defer l.shutdown()

	l.send(ctx, l.machine.Command())
	l.previous = l.machine.Command()

	timer := time.NewTimer(l.cfg.Period)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			l.Tick(ctx)
			timer.Reset(l.cfg.Period)
		}
	}
}

// Tick runs exactly one control cycle.
func (l *Loop) Tick(ctx context.Context) {
	now := l.now()

	wasPresent := l.present
	l.present = l.dev.Present()
	if !l.present && now.Sub(l.lastProbe) >= l.cfg.ReprobeInterval {
		l.lastProbe = now
		l.present = l.dev.Probe()
	}

	if !l.present {
		if wasPresent {
			log.Printf("Controller lost, forcing command to 0")
		}
		l.machine.ForceZero()
		l.axis = 0
		if l.previous != 0 {
			l.send(ctx, 0)
		}
		// At most one zero per loss, delivered or not.
		l.previous = 0
		l.publish(now)
		return
	}

	levels := l.levels()
	if !wasPresent {
		log.Printf("Controller ready: %s", l.dev.Name())
		l.edges.Prime(levels)
	}

	l.axis = l.dev.Axis(l.cfg.Bindings.Axis)
	res := l.machine.Step(Input{
		Axis:  l.axis,
		Edges: l.edges.Update(levels),
	})
	if res.ToggledFeedback {
		log.Printf("Vibration feedback %s", onOff(l.machine.Vibration()))
	}
	if res.Reset {
		log.Printf("Reset: command forced to 0")
	}
	for _, v := range res.Sends {
		l.send(ctx, v)
	}

	l.feedback.Apply(l.dev, l.machine.Command(), l.machine.Vibration())

	l.previous = l.machine.Command()
	l.publish(now)
}

func (l *Loop) levels() Levels {
	var lv Levels
	for b := Button(0); b < NumButtons; b++ {
		lv[b] = l.dev.Button(l.cfg.Bindings.Buttons[b])
	}
	return lv
}

func (l *Loop) send(ctx context.Context, v int) {
	st, err := l.tx.Send(ctx, v)
	l.rate.Add(l.now(), 1)

	if st != l.conn {
		if st == transport.Connected {
			log.Printf("Actuator connected")
		} else {
			log.Printf("Actuator disconnected: %v", err)
		}
		l.conn = st
		l.lastErr = ""
	}
	if err != nil && l.cfg.Debug && err.Error() != l.lastErr {
		log.Printf("[DEBUG] send %d failed: %v", v, err)
		l.lastErr = err.Error()
	}
}

func (l *Loop) publish(now time.Time) {
	s := status.Snapshot{
		Axis:      l.axis,
		Command:   l.machine.Command(),
		Max:       l.machine.Max(),
		Mode:      l.machine.Mode().String(),
		Connected: l.conn == transport.Connected,
		Present:   l.present,
		Vibration: l.machine.Vibration(),
		SendRate:  l.rate.Rate(now),
	}
	if l.present {
		s.Controller = l.dev.Name()
	}

	select {
	case l.snapshots <- s:
	default:
		// Presentation is behind; the next tick carries fresher state.
	}
}

func (l *Loop) shutdown() {
	if l.previous != 0 {
		l.machine.ForceZero()
		// The parent context is already done; give the final zero its own budget.
		l.send(context.Background(), 0)
		l.previous = 0
	}
	if err := l.tx.Close(); err != nil {
		log.Printf("Transport close error: %v", err)
	}
	if err := l.dev.Close(); err != nil {
		log.Printf("Controller close error: %v", err)
	}
	close(l.snapshots)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
