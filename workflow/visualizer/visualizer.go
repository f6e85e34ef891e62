// Package visualizer renders workflow charts as Mermaid state diagrams for
// documentation and diagnostic tooling.
package visualizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/satriyop/enter365-core/workflow"
)

// Visualizer errors.
var (
	ErrConfigNil      = errors.New("config cannot be nil")
	ErrNoInitialState = errors.New("graph must have an initial state")
)

// Mermaid converts a config to a Mermaid state diagram with default options.
func Mermaid(config *workflow.Config) (string, error) {
	if config == nil {
		return "", ErrConfigNil
	}

	return MermaidFromGraph(config.Graph(), DefaultOptions())
}

// MermaidFromGraph renders a previously projected graph with custom options.
func MermaidFromGraph(graph workflow.Graph, opts Options) (string, error) {
	if graph.Initial == "" {
		return "", ErrNoInitialState
	}

	var sb strings.Builder

	sb.WriteString("```mermaid\n")
	sb.WriteString(fmt.Sprintf("stateDiagram-%s\n", opts.Direction))

	// Initial state marker
	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", graph.Initial))

	highlightMap := make(map[string]bool)
	for _, state := range opts.HighlightPath {
		highlightMap[state] = true
	}

	for _, state := range graph.States {
		if opts.ShowLabels && state.Label != "" && state.Label != state.Name {
			sb.WriteString(fmt.Sprintf("    %s: %s\n", state.Name, state.Label))
		}

		switch {
		case highlightMap[state.Name]:
			sb.WriteString(fmt.Sprintf("    class %s highlighted\n", state.Name))
		case state.Final:
			sb.WriteString(fmt.Sprintf("    class %s finalState\n", state.Name))
		}

		if state.Final {
			sb.WriteString(fmt.Sprintf("    %s --> [*]\n", state.Name))
		}
	}

	for _, edge := range graph.Edges {
		label := edge.Event
		if opts.ShowGuards && edge.Guarded {
			label += " [guarded]"
		}

		sb.WriteString(fmt.Sprintf("    %s --> %s: %s\n", edge.From, edge.To, label))
	}

	sb.WriteString("\n")
	sb.WriteString("    classDef finalState fill:#c8e6c9,stroke:#2e7d32,stroke-width:2px\n")
	sb.WriteString("    classDef highlighted fill:#fff9c4,stroke:#f57f17,stroke-width:3px\n")

	sb.WriteString("```\n")

	return sb.String(), nil
}
