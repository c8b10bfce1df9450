package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Mutator is implemented by simulations that support stochastic perturbation
// between steps.
type Mutator interface {
	Mutate()
}

// Automaton is a Sim that can also be mutated. Drivers depend on this
// contract rather than on a concrete simulation.
type Automaton interface {
	Sim
	Mutator
}
