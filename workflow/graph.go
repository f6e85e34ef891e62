package workflow

import "sort"

// Graph is the pure state/transition projection of a chart, for diagnostic
// tooling and diagram generation. Producing it has no side effects and two
// consecutive projections of the same config are identical.
type Graph struct {
	Machine string
	Initial string
	States  []StateNode
	Edges   []Edge
}

// StateNode is one state of the graph.
type StateNode struct {
	Name  string
	Label string
	Final bool
}

// Edge is one transition of the graph, labeled by the triggering event.
type Edge struct {
	From    string
	To      string
	Event   string
	Guarded bool
}

// Graph projects the config. States and edges come out sorted by name so
// the projection is deterministic.
func (c *Config) Graph() Graph {
	graph := Graph{
		Machine: c.ID,
		Initial: c.Initial,
	}

	names := make([]string, 0, len(c.States))
	for name := range c.States {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		state := c.States[name]

		graph.States = append(graph.States, StateNode{
			Name:  name,
			Label: state.Label,
			Final: state.Final,
		})

		eventTypes := make([]string, 0, len(state.On))
		for eventType := range state.On {
			eventTypes = append(eventTypes, eventType)
		}

		sort.Strings(eventTypes)

		for _, eventType := range eventTypes {
			transition := state.On[eventType]

			graph.Edges = append(graph.Edges, Edge{
				From:    name,
				To:      transition.Target,
				Event:   eventType,
				Guarded: transition.Guard != nil,
			})
		}
	}

	return graph
}
