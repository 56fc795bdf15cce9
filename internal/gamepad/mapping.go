// Package gamepad describes controller layouts: logical axes and buttons and
// how each known device family maps its raw SDL indices onto them.
package gamepad

import (
	"fmt"
	"math"
	"strings"
)

// Logical axes, independent of the device's raw layout.
const (
	AxisLeftX = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLT
	AxisRT

	NumAxes
)

// Logical buttons. D-pad directions come from the hat, not from raw buttons.
const (
	ButtonA = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLB
	ButtonRB
	ButtonSelect
	ButtonStart
	ButtonHome
	ButtonL3
	ButtonR3
	ButtonDpadUp
	ButtonDpadDown
	ButtonDpadLeft
	ButtonDpadRight

	NumButtons
)

var axisNames = [NumAxes]string{"left_x", "left_y", "right_x", "right_y", "lt", "rt"}

var buttonNames = [NumButtons]string{
	"a", "b", "x", "y", "lb", "rb", "select", "start", "home", "l3", "r3",
	"dpad_up", "dpad_down", "dpad_left", "dpad_right",
}

// AxisIndex resolves a config name such as "left_y" to a logical axis.
func AxisIndex(name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range axisNames {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("gamepad: unknown axis %q", name)
}

// ButtonIndex resolves a config name such as "lb" to a logical button.
func ButtonIndex(name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range buttonNames {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("gamepad: unknown button %q", name)
}

// AxisMapping defines how a raw axis index maps to a logical axis.
type AxisMapping struct {
	Index     int32
	Axis      int
	IsTrigger bool
	// Invert makes "stick forward" positive; SDL reports it negative.
	Invert bool
	// For triggers: raw range. Some devices use -32768..32767, others 0..32767.
	RawMin int16
	RawMax int16
}

// ButtonMapping defines how a raw button index maps to a logical button.
type ButtonMapping struct {
	Index  int32
	Button int
}

// DeviceMapping holds the complete mapping for a specific device type.
type DeviceMapping struct {
	Name    string
	Axes    []AxisMapping
	Buttons []ButtonMapping
	HasHat  bool
}

// NormalizeAxis converts a raw axis value (-32768..32767) to -1.0..1.0.
func NormalizeAxis(raw int16) float64 {
	v := float64(raw) / math.MaxInt16
	if v < -1.0 {
		v = -1.0
	}
	return v
}

// NormalizeTrigger converts a raw trigger value to 0.0..1.0.
func NormalizeTrigger(raw int16, rawMin, rawMax int16) float64 {
	if rawMax == rawMin {
		return 0
	}
	v := (float64(raw) - float64(rawMin)) / (float64(rawMax) - float64(rawMin))
	return math.Max(0, math.Min(1, v))
}

var standardAxes = []AxisMapping{
	{Index: 0, Axis: AxisLeftX},
	{Index: 1, Axis: AxisLeftY, Invert: true},
	{Index: 2, Axis: AxisRightX},
	{Index: 3, Axis: AxisRightY, Invert: true},
	{Index: 4, Axis: AxisLT, IsTrigger: true, RawMin: -32768, RawMax: 32767},
	{Index: 5, Axis: AxisRT, IsTrigger: true, RawMin: -32768, RawMax: 32767},
}

var standardButtons = []ButtonMapping{
	{Index: 0, Button: ButtonA},
	{Index: 1, Button: ButtonB},
	{Index: 2, Button: ButtonX},
	{Index: 3, Button: ButtonY},
	{Index: 4, Button: ButtonLB},
	{Index: 5, Button: ButtonRB},
	{Index: 6, Button: ButtonSelect},
	{Index: 7, Button: ButtonStart},
	{Index: 8, Button: ButtonL3},
	{Index: 9, Button: ButtonR3},
	{Index: 10, Button: ButtonHome},
}

var xboxMapping = &DeviceMapping{
	Name:    "xbox",
	Axes:    standardAxes,
	Buttons: standardButtons,
	HasHat:  true,
}

var playstationMapping = &DeviceMapping{
	Name: "playstation",
	Axes: standardAxes,
	Buttons: []ButtonMapping{
		{Index: 0, Button: ButtonA},      // Cross
		{Index: 1, Button: ButtonB},      // Circle
		{Index: 2, Button: ButtonX},      // Square
		{Index: 3, Button: ButtonY},      // Triangle
		{Index: 4, Button: ButtonSelect}, // Share / Create
		{Index: 5, Button: ButtonHome},   // PS button
		{Index: 6, Button: ButtonStart},  // Options
		{Index: 7, Button: ButtonL3},
		{Index: 8, Button: ButtonR3},
		{Index: 9, Button: ButtonLB},  // L1
		{Index: 10, Button: ButtonRB}, // R1
	},
	HasHat: true,
}

var switchProMapping = &DeviceMapping{
	Name:    "switch_pro",
	Axes:    standardAxes[:4],
	Buttons: standardButtons,
	HasHat:  true,
}

var genericMapping = &DeviceMapping{
	Name:    "generic",
	Axes:    standardAxes,
	Buttons: standardButtons,
	HasHat:  true,
}

type deviceKey struct {
	VendorID  uint16
	ProductID uint16
}

var knownDevices = map[deviceKey]*DeviceMapping{
	// Microsoft Xbox controllers
	{0x045E, 0x028E}: xboxMapping, // Xbox 360
	{0x045E, 0x02FF}: xboxMapping, // Xbox One
	{0x045E, 0x0B12}: xboxMapping, // Xbox Series X|S
	{0x045E, 0x0B13}: xboxMapping, // Xbox Series X|S (wireless)

	// Sony PlayStation controllers
	{0x054C, 0x0CE6}: playstationMapping, // DualSense
	{0x054C, 0x09CC}: playstationMapping, // DualShock 4 v2
	{0x054C, 0x05C4}: playstationMapping, // DualShock 4 v1

	// Nintendo Switch Pro Controller
	{0x057E, 0x2009}: switchProMapping,
}

// GetMapping returns the mapping for a vendor/product pair, or the generic one.
func GetMapping(vendorID, productID uint16) *DeviceMapping {
	if m, ok := knownDevices[deviceKey{VendorID: vendorID, ProductID: productID}]; ok {
		return m
	}
	return genericMapping
}
