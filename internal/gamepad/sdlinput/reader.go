// Package sdlinput reads game controllers through the SDL3 Joystick API.
package sdlinput

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/soar/padlink/internal/gamepad"
)

const (
	hatUp    uint8 = 0x01
	hatRight uint8 = 0x02
	hatDown  uint8 = 0x04
	hatLeft  uint8 = 0x08
)

// ErrNoController is returned by Rumble when no controller is active.
var ErrNoController = errors.New("sdlinput: no active controller")

type joystickInfo struct {
	joystick *sdl.Joystick
	mapping  *gamepad.DeviceMapping
	name     string
	id       sdl.JoystickID
}

// Reader reads the first connected joystick through the SDL3 Joystick API.
//
// SDL must be driven from a single OS thread: every method has to be called
// from the goroutine that owns the control loop, locked with runtime.LockOSThread.
type Reader struct {
	state     gamepad.State
	joysticks map[sdl.JoystickID]*joystickInfo
	activeID  sdl.JoystickID
	hasActive bool
	inited    bool
	debug     bool

	// OnInit runs once right after SDL is initialized.
	OnInit func()
}

func NewReader(debug bool) *Reader {
	return &Reader{
		joysticks: make(map[sdl.JoystickID]*joystickInfo),
		debug:     debug,
	}
}

// Present pumps pending SDL events, samples the active joystick and reports
// whether one is attached. It never initializes SDL; Probe does.
func (r *Reader) Present() bool {
	if !r.inited {
		return false
	}
	r.processEvents()
	r.pollState()
	return r.state.Connected
}

// Probe initializes SDL on first use and opens every joystick SDL knows about.
// A failed init is logged and retried on the next probe.
func (r *Reader) Probe() bool {
	if !r.inited {
		if !sdl.Init(sdl.InitJoystick) {
			log.Printf("SDL Init failed: %s", sdl.GetError())
			return false
		}
		r.inited = true
		log.Println("SDL3 Joystick subsystem initialized")
		if r.OnInit != nil {
			r.OnInit()
		}
	}

	for _, id := range sdl.GetJoysticks() {
		r.openJoystick(id)
	}
	return r.Present()
}

// Name returns the active controller's name.
func (r *Reader) Name() string {
	return r.state.Name
}

// State returns the last sample.
func (r *Reader) State() gamepad.State {
	return r.state
}

// Axis returns a logical axis from the last sample.
func (r *Reader) Axis(index int) float64 {
	if index < 0 || index >= gamepad.NumAxes {
		return 0
	}
	return r.state.Axes[index]
}

// Button returns a logical button level from the last sample.
func (r *Reader) Button(index int) bool {
	if index < 0 || index >= gamepad.NumButtons {
		return false
	}
	return r.state.Buttons[index]
}

// Rumble starts a rumble of the given strengths that SDL stops on its own after d.
// Zero strengths cancel a running rumble.
func (r *Reader) Rumble(low, high uint16, d time.Duration) error {
	info := r.active()
	if info == nil {
		return ErrNoController
	}
	if !sdl.RumbleJoystick(info.joystick, low, high, uint32(d.Milliseconds())) {
		return fmt.Errorf("sdlinput: rumble on %s: %s", info.name, sdl.GetError())
	}
	return nil
}

// Close closes all joysticks and shuts SDL down.
func (r *Reader) Close() error {
	r.closeAll()
	if r.inited {
		sdl.Quit()
		r.inited = false
	}
	return nil
}

func (r *Reader) active() *joystickInfo {
	if !r.hasActive {
		return nil
	}
	return r.joysticks[r.activeID]
}

func (r *Reader) processEvents() {
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventJoystickAdded:
			r.openJoystick(event.JDevice().Which)

		case sdl.EventJoystickRemoved:
			r.removeJoystick(event.JDevice().Which)
		}
	}
}

func (r *Reader) openJoystick(instanceID sdl.JoystickID) {
	if _, exists := r.joysticks[instanceID]; exists {
		return
	}

	js := sdl.OpenJoystick(instanceID)
	if js == nil {
		log.Printf("Failed to open joystick %d: %s", instanceID, sdl.GetError())
		return
	}

	jsID := sdl.GetJoystickID(js)
	vendorID := sdl.GetJoystickVendor(js)
	productID := sdl.GetJoystickProduct(js)
	name := sdl.GetJoystickName(js)
	mapping := gamepad.GetMapping(vendorID, productID)

	r.joysticks[jsID] = &joystickInfo{
		joystick: js,
		mapping:  mapping,
		name:     name,
		id:       jsID,
	}

	log.Printf("Joystick connected: %s (VID=%04X PID=%04X) mapping=%s axes=%d buttons=%d",
		name, vendorID, productID, mapping.Name, sdl.GetNumJoystickAxes(js), sdl.GetNumJoystickButtons(js))

	// The first connected joystick drives the actuator.
	if !r.hasActive {
		r.activeID = jsID
		r.hasActive = true
		log.Printf("Active joystick set: %s (ID=%d)", name, jsID)
	}
}

func (r *Reader) removeJoystick(instanceID sdl.JoystickID) {
	info, exists := r.joysticks[instanceID]
	if !exists {
		return
	}

	log.Printf("Joystick disconnected: %s", info.name)
	sdl.CloseJoystick(info.joystick)
	delete(r.joysticks, instanceID)

	if !r.hasActive || r.activeID != instanceID {
		return
	}
	r.hasActive = false
	r.state = gamepad.State{}

	// Promote the next available joystick.
	for id, js := range r.joysticks {
		if sdl.JoystickConnected(js.joystick) {
			r.activeID = id
			r.hasActive = true
			log.Printf("Active joystick switched to: %s (ID=%d)", js.name, id)
			return
		}
	}
}

func (r *Reader) closeAll() {
	for id, info := range r.joysticks {
		sdl.CloseJoystick(info.joystick)
		delete(r.joysticks, id)
	}
	r.hasActive = false
	r.state = gamepad.State{}
}

func (r *Reader) pollState() {
	info := r.active()
	if info == nil || !sdl.JoystickConnected(info.joystick) {
		r.state = gamepad.State{}
		return
	}

	js := info.joystick
	mapping := info.mapping
	state := gamepad.State{
		Connected: true,
		Name:      info.name,
		Type:      mapping.Name,
	}

	numAxes := sdl.GetNumJoystickAxes(js)
	for _, am := range mapping.Axes {
		if am.Index >= numAxes {
			continue
		}
		raw := sdl.GetJoystickAxis(js, am.Index)
		if am.IsTrigger {
			state.Axes[am.Axis] = gamepad.NormalizeTrigger(raw, am.RawMin, am.RawMax)
			continue
		}
		val := gamepad.NormalizeAxis(raw)
		if am.Invert {
			val = -val
		}
		state.Axes[am.Axis] = val
	}

	numButtons := sdl.GetNumJoystickButtons(js)
	for _, bm := range mapping.Buttons {
		if bm.Index >= numButtons {
			continue
		}
		state.Buttons[bm.Button] = sdl.GetJoystickButton(js, bm.Index)
	}

	if mapping.HasHat && sdl.GetNumJoystickHats(js) > 0 {
		hat := sdl.GetJoystickHat(js, 0)
		state.Buttons[gamepad.ButtonDpadUp] = hat&hatUp != 0
		state.Buttons[gamepad.ButtonDpadRight] = hat&hatRight != 0
		state.Buttons[gamepad.ButtonDpadDown] = hat&hatDown != 0
		state.Buttons[gamepad.ButtonDpadLeft] = hat&hatLeft != 0
	}

	if r.debug {
		for _, b := range gamepad.ButtonChanges(r.state, state) {
			log.Printf("[DEBUG] %s -> %v", gamepad.ButtonName(b), state.Buttons[b])
		}
	}
	r.state = state
}
