package workflow

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Registry resolves the guard and action names a declarative chart file
// references into Go closures. Charts defined in Go code (the docflows
// package) bypass it entirely; the registry exists for applications that
// ship workflow definitions as YAML.
type Registry struct {
	guards  map[string]Guard
	actions map[string]ActionFunc
	hooks   map[string]Hook
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		guards:  make(map[string]Guard),
		actions: make(map[string]ActionFunc),
		hooks:   make(map[string]Hook),
	}
}

// RegisterGuard binds a guard name usable in chart files.
func (r *Registry) RegisterGuard(name string, guard Guard) *Registry {
	r.guards[name] = guard

	return r
}

// RegisterAction binds an action name usable in chart files.
func (r *Registry) RegisterAction(name string, action ActionFunc) *Registry {
	r.actions[name] = action

	return r
}

// RegisterHook binds an entry/exit hook name usable in chart files.
func (r *Registry) RegisterHook(name string, hook Hook) *Registry {
	r.hooks[name] = hook

	return r
}

// chartFile is the YAML shape of a declarative workflow definition.
type chartFile struct {
	ID      string                    `yaml:"id"`
	Initial string                    `yaml:"initial"`
	Seed    map[string]any            `yaml:"seed"`
	States  map[string]chartStateFile `yaml:"states"`
}

type chartStateFile struct {
	Label       string                         `yaml:"label"`
	Description string                         `yaml:"description"`
	Final       bool                           `yaml:"final"`
	OnEnter     string                         `yaml:"onEnter"`
	OnExit      string                         `yaml:"onExit"`
	On          map[string]chartTransitionFile `yaml:"on"`
}

// chartTransitionFile accepts either a bare target string or the full
// mapping form with guard and actions.
type chartTransitionFile struct {
	Target       string   `yaml:"target"`
	Guard        string   `yaml:"guard"`
	GuardMessage string   `yaml:"guardMessage"`
	Actions      []string `yaml:"actions"`
}

func (t *chartTransitionFile) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&t.Target)
	}

	type plain chartTransitionFile

	return node.Decode((*plain)(t))
}

// LoadConfig reads a YAML chart from the filesystem and resolves its guard
// and action names through the registry. A nil registry is valid for charts
// that declare no guards or actions.
func LoadConfig(path string, reg *Registry) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Chart paths come from the caller by design
	if err != nil {
		return nil, fmt.Errorf("failed to read chart file %q: %w", path, err)
	}

	return LoadConfigFromBytes(data, reg)
}

// LoadConfigFromFS reads a chart from an embedded filesystem. This is the
// convenience path for applications that embed their chart files.
func LoadConfigFromFS(fsys fs.FS, path string, reg *Registry) (*Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart from FS: %w", err)
	}

	return LoadConfigFromBytes(data, reg)
}

// LoadConfigFromBytes parses YAML chart bytes into a validated Config.
func LoadConfigFromBytes(data []byte, reg *Registry) (*Config, error) {
	var file chartFile

	err := yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chart YAML: %w", err)
	}

	config := &Config{
		ID:      file.ID,
		Initial: file.Initial,
		Seed:    file.Seed,
		States:  make(map[string]State, len(file.States)),
	}

	for name, stateFile := range file.States {
		state, err := buildState(name, stateFile, reg)
		if err != nil {
			return nil, err
		}

		config.States[name] = state
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func buildState(name string, file chartStateFile, reg *Registry) (State, error) {
	state := State{
		Label:       file.Label,
		Description: file.Description,
		Final:       file.Final,
		On:          make(map[string]Transition, len(file.On)),
	}

	var err error

	state.OnEnter, err = resolveHook(name, file.OnEnter, reg)
	if err != nil {
		return State{}, err
	}

	state.OnExit, err = resolveHook(name, file.OnExit, reg)
	if err != nil {
		return State{}, err
	}

	for eventType, transFile := range file.On {
		transition := Transition{
			Target:       transFile.Target,
			GuardMessage: transFile.GuardMessage,
		}

		if transFile.Guard != "" {
			guard, ok := reg.lookupGuard(transFile.Guard)
			if !ok {
				return State{}, fmt.Errorf("state %s, event %s: %w: %s",
					name, eventType, ErrUnknownGuard, transFile.Guard)
			}

			transition.Guard = guard
		}

		for _, actionName := range transFile.Actions {
			action, ok := reg.lookupAction(actionName)
			if !ok {
				return State{}, fmt.Errorf("state %s, event %s: %w: %s",
					name, eventType, ErrUnknownAction, actionName)
			}

			transition.Actions = append(transition.Actions, action)
		}

		state.On[eventType] = transition
	}

	return state, nil
}

func resolveHook(stateName, hookName string, reg *Registry) (Hook, error) {
	if hookName == "" {
		return nil, nil
	}

	hook, ok := reg.lookupHook(hookName)
	if !ok {
		return nil, fmt.Errorf("state %s: %w: %s", stateName, ErrUnknownAction, hookName)
	}

	return hook, nil
}

func (r *Registry) lookupGuard(name string) (Guard, bool) {
	if r == nil {
		return nil, false
	}

	guard, ok := r.guards[name]

	return guard, ok
}

func (r *Registry) lookupAction(name string) (ActionFunc, bool) {
	if r == nil {
		return nil, false
	}

	action, ok := r.actions[name]

	return action, ok
}

func (r *Registry) lookupHook(name string) (Hook, bool) {
	if r == nil {
		return nil, false
	}

	hook, ok := r.hooks[name]

	return hook, ok
}
