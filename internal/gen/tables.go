// internal/gen/tables.go
package gen

// Weighted pairs a label with its draw probability. Entries in a table are
// tried in order and their weights are expected to sum to 1.0; the last entry
// absorbs floating-point drift at the boundary.
type Weighted struct {
	Label  string
	Weight float64
}

// Model holds every table and knob the generator draws from. It is built once
// and passed in at construction; the generator never reaches for ambient
// state, so tests can supply alternate tables.
type Model struct {
	Host string

	Severities []Weighted
	Actions    []Weighted

	Protocols    []string
	Interfaces   []string
	ServicePorts []int

	ReasonsInfo  []string
	ReasonsWarn  []string
	ReasonsError []string

	// SourcePrivateBias and DestPrivateBias are the probabilities of drawing
	// a source/destination address from the reserved blocks.
	SourcePrivateBias float64
	DestPrivateBias   float64

	// MeanInterval is the mean inter-arrival time in seconds.
	MeanInterval float64

	// Burstiness is accepted for forward compatibility but does not feed the
	// timing model.
	Burstiness float64
}

// DefaultModel returns the stock firewall traffic model.
func DefaultModel() Model {
	return Model{
		Host: "fw01.corp.example.com",
		Severities: []Weighted{
			{"INFO", 0.70},
			{"NOTICE", 0.10},
			{"WARNING", 0.12},
			{"ERROR", 0.06},
			{"CRITICAL", 0.02},
		},
		Actions: []Weighted{
			{"ACCEPT", 0.6},
			{"DROP", 0.3},
			{"REJECT", 0.1},
		},
		Protocols:    []string{"TCP", "UDP", "ICMP", "GRE", "ESP"},
		Interfaces:   []string{"eth0", "eth1", "wan0", "lan0", "dmz0"},
		ServicePorts: []int{22, 80, 443, 53, 8080, 3389, 5000, 514, 3306, 1433},
		ReasonsInfo: []string{
			"Connection established", "Connection closed", "NAT translation success",
			"Policy matched", "Session aged out", "Health check passed",
		},
		ReasonsWarn: []string{
			"Suspicious connection rate", "Unexpected packet", "Possible policy mismatch",
			"Malformed packet", "IP spoofing suspected",
		},
		ReasonsError: []string{
			"Policy violation", "Intrusion detected", "Configuration error", "Resource exhausted",
			"Authentication failure", "Firewall rule conflict",
		},
		SourcePrivateBias: 0.6,
		DestPrivateBias:   0.3,
		MeanInterval:      1.2,
		Burstiness:        0.2,
	}
}
