package main

// windowTitle names the window after the running simulation.
func windowTitle(sim string) string {
	return "mutalife: " + sim
}
