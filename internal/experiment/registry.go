package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/approx/internal/problems"
)

const (
	MethodEulerConstant = "euler-constant"
	MethodEulerGeneral  = "euler-general"
	MethodNewton        = "newton"
)

type Registry struct {
	odes  map[string]func() problems.ODE
	odes2 map[string]func() problems.ODE2
	roots map[string]func() problems.Root
}

func NewRegistry() *Registry {
	r := &Registry{
		odes:  make(map[string]func() problems.ODE),
		odes2: make(map[string]func() problems.ODE2),
		roots: make(map[string]func() problems.Root),
	}

	r.odes["linear"] = problems.NewLinear
	r.odes["cosine"] = problems.NewCosine
	r.odes["cubic"] = problems.NewCubic
	r.odes["reciprocal"] = problems.NewReciprocal

	r.odes2["growth"] = problems.NewGrowth
	r.odes2["decay"] = problems.NewDecay
	r.odes2["logistic"] = problems.NewLogistic
	r.odes2["mixed"] = problems.NewMixed

	r.roots["sqrt2"] = problems.NewSqrt2
	r.roots["cubic"] = problems.NewCubicRoot
	r.roots["dottie"] = problems.NewDottie
	r.roots["tangent"] = problems.NewTangent
	r.roots["cbrt"] = problems.NewCbrt

	return r
}

func (r *Registry) GetODE(name string) (problems.ODE, error) {
	fn, ok := r.odes[name]
	if !ok {
		return problems.ODE{}, fmt.Errorf("unknown %s problem: %s", MethodEulerConstant, name)
	}
	return fn(), nil
}

// GetODE2 also accepts x-only problems, lifted to ignore y.
func (r *Registry) GetODE2(name string) (problems.ODE2, error) {
	if fn, ok := r.odes2[name]; ok {
		return fn(), nil
	}
	if fn, ok := r.odes[name]; ok {
		return fn().General(), nil
	}
	return problems.ODE2{}, fmt.Errorf("unknown %s problem: %s", MethodEulerGeneral, name)
}

func (r *Registry) GetRoot(name string) (problems.Root, error) {
	fn, ok := r.roots[name]
	if !ok {
		return problems.Root{}, fmt.Errorf("unknown %s problem: %s", MethodNewton, name)
	}
	return fn(), nil
}

func (r *Registry) Methods() []string {
	return []string{MethodEulerConstant, MethodEulerGeneral, MethodNewton}
}

// ListProblems returns the sorted problem names usable with method.
func (r *Registry) ListProblems(method string) []string {
	var names []string
	switch method {
	case MethodEulerConstant:
		names = keys(r.odes)
	case MethodEulerGeneral:
		names = append(keys(r.odes2), keys(r.odes)...)
	case MethodNewton:
		names = keys(r.roots)
	default:
		return nil
	}
	sort.Strings(names)
	return names
}

// Describe returns the one-line description of a problem.
func (r *Registry) Describe(method, name string) string {
	switch method {
	case MethodEulerConstant:
		if p, err := r.GetODE(name); err == nil {
			return p.Description
		}
	case MethodEulerGeneral:
		if p, err := r.GetODE2(name); err == nil {
			return p.Description
		}
	case MethodNewton:
		if p, err := r.GetRoot(name); err == nil {
			return p.Description
		}
	}
	return ""
}

func keys[T any](m map[string]T) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
