package config

import (
	"sort"

	"github.com/san-kum/approx/internal/experiment"
)

var Presets = map[string]map[string]*Config{
	"linear": {
		"coarse": {
			Method: experiment.MethodEulerConstant, Problem: "linear", DeltaX: 0.1,
			X0: Float(0), Y0: Float(0), TargetX: Float(2),
		},
		"fine": {
			Method: experiment.MethodEulerConstant, Problem: "linear", DeltaX: 0.0001,
			X0: Float(0), Y0: Float(0), TargetX: Float(2),
		},
		"backward": {
			Method: experiment.MethodEulerConstant, Problem: "linear", DeltaX: 0.0001,
			X0: Float(0), Y0: Float(0), TargetX: Float(-2),
		},
	},
	"reciprocal": {
		"pole": {
			Method: experiment.MethodEulerConstant, Problem: "reciprocal", DeltaX: 0.25,
			X0: Float(-1), Y0: Float(0), TargetX: Float(1),
		},
	},
	"growth": {
		"e": {
			Method: experiment.MethodEulerGeneral, Problem: "growth", DeltaX: 0.0001,
			X0: Float(0), Y0: Float(1), TargetX: Float(1),
		},
		"coarse": {
			Method: experiment.MethodEulerGeneral, Problem: "growth", DeltaX: 0.25,
			X0: Float(0), Y0: Float(1), TargetX: Float(1),
		},
	},
	"logistic": {
		"saturate": {
			Method: experiment.MethodEulerGeneral, Problem: "logistic", DeltaX: 0.01,
			X0: Float(0), Y0: Float(0.01), TargetX: Float(10),
		},
	},
	"sqrt2": {
		"precise": {
			Method: experiment.MethodNewton, Problem: "sqrt2", Epsilon: 1e-12,
			InitialX: Float(1), MaxIterations: 100,
		},
		"negative": {
			Method: experiment.MethodNewton, Problem: "sqrt2", Epsilon: 1e-6,
			InitialX: Float(-1), MaxIterations: 100,
		},
	},
	"tangent": {
		"flat": {
			Method: experiment.MethodNewton, Problem: "tangent", Epsilon: 1e-6,
			InitialX: Float(0), MaxIterations: 100,
		},
	},
	"cbrt": {
		"diverge": {
			Method: experiment.MethodNewton, Problem: "cbrt", Epsilon: 1e-6,
			InitialX: Float(1), MaxIterations: 50,
		},
	},
}

func GetPreset(problem, name string) *Config {
	if p, ok := Presets[problem]; ok {
		if cfg, ok := p[name]; ok {
			c := *cfg
			return &c
		}
	}
	return nil
}

func ListPresets(problem string) []string {
	p, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
