// SPDX-License-Identifier: MIT
package hmm

// Labels of the built-in policy model.
const (
	StrictPolicy   = "Strict Policy"
	ModeratePolicy = "Moderate Policy"
	NormalMobility = "Normal Mobility"

	LowMobility      = "Low Mobility"
	ModerateMobility = "Moderate Mobility"
	HighMobility     = "High Mobility"
)

// defaultCell is the uniform-ish weight of every transition and emission cell
// of the built-in model.
const defaultCell = 0.33

// DefaultSpec returns the built-in policy model: three hidden policy regimes
// observed through three mobility levels. Start weights are 0.5/0.3/0.2 and
// every transition and emission cell is 0.33. Each call returns fresh maps.
func DefaultSpec() Spec {
	states := []string{StrictPolicy, ModeratePolicy, NormalMobility}
	symbols := []string{LowMobility, ModerateMobility, HighMobility}

	spec := Spec{
		States: states,
		Start: map[string]float64{
			StrictPolicy:   0.5,
			ModeratePolicy: 0.3,
			NormalMobility: 0.2,
		},
		Transition: make(map[string]map[string]float64, len(states)),
		Emission:   make(map[string]map[string]float64, len(states)),
	}
	for _, from := range states {
		spec.Transition[from] = make(map[string]float64, len(states))
		for _, to := range states {
			spec.Transition[from][to] = defaultCell
		}
		spec.Emission[from] = make(map[string]float64, len(symbols))
		for _, sym := range symbols {
			spec.Emission[from][sym] = defaultCell
		}
	}

	return spec
}
