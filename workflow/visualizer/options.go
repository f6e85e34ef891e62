package visualizer

// Options controls Mermaid diagram generation.
type Options struct {
	// Direction is the diagram layout: "v2" top-down is the Mermaid default.
	Direction string
	// ShowLabels emits state display labels alongside state names.
	ShowLabels bool
	// ShowGuards marks guarded edges in the transition label.
	ShowGuards bool
	// HighlightPath marks the listed states, e.g. the path one document
	// actually took.
	HighlightPath []string
}

// DefaultOptions returns the stock options: v2 layout, labels and guard
// markers on.
func DefaultOptions() Options {
	return Options{
		Direction:  "v2",
		ShowLabels: true,
		ShowGuards: true,
	}
}
