package types

// HomeStatus represents the operating state shown for a home.
type HomeStatus string

const (
	HomeStatusOptimizing HomeStatus = "optimizing"
	HomeStatusCharging   HomeStatus = "charging"
	HomeStatusIdle       HomeStatus = "idle"
	HomeStatusHeating    HomeStatus = "heating"
	HomeStatusExporting  HomeStatus = "exporting"
)

// Battery represents a home battery.
type Battery struct {
	StateOfChargePercent float64 `json:"stateOfChargePercent" yaml:"soc"` // 0-100
	CapacityKWH          float64 `json:"capacityKWH" yaml:"capacityKWH"`  // > 0
	PowerKW              float64 `json:"powerKW" yaml:"powerKW"`          // Positive for charge, negative for discharge
}

// SolarArray represents the PV installation of a home.
type SolarArray struct {
	PowerKW     float64 `json:"powerKW" yaml:"powerKW"`
	CapacityKWP float64 `json:"capacityKWP" yaml:"capacityKWP"`
}

// EVCharger represents an electric vehicle connected to a home charger.
type EVCharger struct {
	StateOfChargePercent float64 `json:"stateOfChargePercent" yaml:"soc"`
	// Departure is the planned departure as a wall-clock "HH:MM".
	Departure string  `json:"departure" yaml:"departure"`
	PowerKW   float64 `json:"powerKW" yaml:"powerKW"` // 0 when not charging
}

// HeatPump represents a home heat pump and the temperature it controls.
type HeatPump struct {
	PowerKW      float64 `json:"powerKW" yaml:"powerKW"`
	CurrentTempC float64 `json:"currentTempC" yaml:"currentTempC"`
	TargetTempC  float64 `json:"targetTempC" yaml:"targetTempC"`
}

// Home is a single connected household and the assets it owns. A nil asset
// means the home does not have it.
//
// Status and NetPowerKW are derived from the assets and are never read from
// the catalog.
type Home struct {
	ID       int         `json:"id" yaml:"id"`
	Name     string      `json:"name" yaml:"name"`
	Battery  *Battery    `json:"battery,omitempty" yaml:"battery,omitempty"`
	Solar    *SolarArray `json:"solar,omitempty" yaml:"solar,omitempty"`
	EV       *EVCharger  `json:"ev,omitempty" yaml:"ev,omitempty"`
	HeatPump *HeatPump   `json:"heatPump,omitempty" yaml:"heatPump,omitempty"`

	Status     HomeStatus `json:"status" yaml:"-"`
	NetPowerKW float64    `json:"netPowerKW" yaml:"-"`
}

// Clone returns a deep copy of the home so the copy's assets can be changed
// without affecting h.
func (h Home) Clone() Home {
	c := h
	if h.Battery != nil {
		b := *h.Battery
		c.Battery = &b
	}
	if h.Solar != nil {
		s := *h.Solar
		c.Solar = &s
	}
	if h.EV != nil {
		e := *h.EV
		c.EV = &e
	}
	if h.HeatPump != nil {
		hp := *h.HeatPump
		c.HeatPump = &hp
	}
	return c
}
