// Package status defines the read-only view of the control loop that is
// handed to presentation once per tick.
package status

// Snapshot is a copy of the loop state after one tick.
// It carries no behavior; consumers never write back through it.
type Snapshot struct {
	Axis       float64 `json:"axis"`
	Command    int     `json:"command"`
	Max        int     `json:"max"`
	Mode       string  `json:"mode"`
	Connected  bool    `json:"connected"`
	Present    bool    `json:"present"`
	Controller string  `json:"controller"`
	Vibration  bool    `json:"vibration"`
	SendRate   float64 `json:"sendRate"`
}
