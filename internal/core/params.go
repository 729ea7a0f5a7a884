package core

// ParamType tells clients how to interpret a Parameter's Value.
type ParamType string

const (
	ParamTypeInt ParamType = "int"
	// ParamTypeString covers names, addresses and durations.
	ParamTypeString ParamType = "string"
)

// Parameter is one configured setting, rendered as text for the HUD and the
// /config endpoint.
type Parameter struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Type  ParamType `json:"type"`
	Value string    `json:"value"`
}

// ParameterGroup is a titled block of parameters.
type ParameterGroup struct {
	Name   string      `json:"name"`
	Params []Parameter `json:"params"`
}

// ParameterSnapshot is the full configuration as shown to users.
type ParameterSnapshot struct {
	Groups []ParameterGroup `json:"groups"`
}
