package life

import (
	"strconv"

	"mutalife/internal/core"
)

const keyMutationRate = "mutation_rate"

// Parameters reports the engine's configuration and live counters.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "World",
				Params: []core.Parameter{
					intParam("size", "Size", l.size),
					int64Param("seed", "Seed", l.seed),
				},
			},
			{
				Name: "Run",
				Params: []core.Parameter{
					intParam("generation", "Generation", l.generation),
					intParam("population", "Population", l.Population()),
				},
			},
			{
				Name: "Mutation",
				Params: []core.Parameter{
					floatParam(keyMutationRate, "Mutation rate", l.mutationRate),
				},
			},
		},
	}
}

// ParameterControls lists the values the HUD may adjust.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    keyMutationRate,
			Label:  "Mutation rate",
			Step:   0.001,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetFloatParameter updates a float parameter by key.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case keyMutationRate:
		return l.SetMutationRate(value) == nil
	}
	return false
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func int64Param(key, label string, v int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', -1, 64)}
}
