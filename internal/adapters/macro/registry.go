package macro

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"palette/internal/domain"
	"palette/internal/logging"
)

// Class describes the class a script defines. The class name is the script's
// file name without extension, so "Editor/BuildTools.go" defines "BuildTools".
type Class struct {
	Name string

	// Static holds the class's static functions by name. Only func values
	// taking no parameters and returning nothing can be run.
	Static map[string]any

	// Instance, when set, is a value whose methods are the class's instance
	// methods. They are known but never runnable from a macro.
	Instance any
}

// Registry implements domain.MacroRunner over registered classes
type Registry struct {
	mu      sync.RWMutex
	classes map[string]Class
	logger  zerolog.Logger
}

// Ensure Registry implements MacroRunner
var _ domain.MacroRunner = (*Registry)(nil)

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		classes: make(map[string]Class),
		logger:  logging.GetLogger("macro"),
	}
}

// Register adds a class. Registering the same name twice is an error.
func (r *Registry) Register(c Class) error {
	if c.Name == "" {
		return fmt.Errorf("class name is required")
	}
	for name, fn := range c.Static {
		if fn == nil || reflect.TypeOf(fn).Kind() != reflect.Func {
			return fmt.Errorf("class %s: static member %s is not a function", c.Name, name)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.classes[c.Name]; exists {
		return fmt.Errorf("class %s already registered", c.Name)
	}
	r.classes[c.Name] = c
	return nil
}

// Classes returns the registered class names, sorted
func (r *Registry) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Methods returns the runnable static methods of a class, sorted
func (r *Registry) Methods(class string) []string {
	r.mu.RLock()
	c, ok := r.classes[class]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	var names []string
	for name, fn := range c.Static {
		if runnable(reflect.TypeOf(fn)) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Check reports why method cannot be invoked on the class script defines
func (r *Registry) Check(script *domain.Resource, method string) error {
	_, err := r.lookup(script, method)
	return err
}

// Run invokes a static method. A panic inside the method is returned as an error.
func (r *Registry) Run(script *domain.Resource, method string) (err error) {
	fn, err := r.lookup(script, method)
	if err != nil {
		return err
	}

	done := logging.LogOperationStart(r.logger, script.Name+"."+method)
	defer done()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s.%s panicked: %v", script.Name, method, p)
			r.logger.Error().Str("class", script.Name).Str("method", method).Interface("panic", p).Msg("Macro panicked")
		}
	}()

	fn.Call(nil)
	return nil
}

func (r *Registry) lookup(script *domain.Resource, method string) (reflect.Value, error) {
	if script == nil {
		return reflect.Value{}, domain.ErrScriptMissing
	}

	r.mu.RLock()
	c, ok := r.classes[script.Name]
	r.mu.RUnlock()
	if !ok {
		return reflect.Value{}, fmt.Errorf("%s: %w", script.Path, domain.ErrClassNotFound)
	}

	if fn, ok := c.Static[method]; ok {
		v := reflect.ValueOf(fn)
		if !runnable(v.Type()) {
			return reflect.Value{}, fmt.Errorf("%s.%s is %s: %w", c.Name, method, v.Type(), domain.ErrBadSignature)
		}
		return v, nil
	}

	if c.Instance != nil {
		t := reflect.TypeOf(c.Instance)
		if _, ok := t.MethodByName(method); ok {
			return reflect.Value{}, fmt.Errorf("%s.%s: %w", c.Name, method, domain.ErrInstanceMethod)
		}
		if t.Kind() != reflect.Pointer {
			if _, ok := reflect.PointerTo(t).MethodByName(method); ok {
				return reflect.Value{}, fmt.Errorf("%s.%s: %w", c.Name, method, domain.ErrInstanceMethod)
			}
		}
	}

	return reflect.Value{}, fmt.Errorf("%s.%s: %w", c.Name, method, domain.ErrMethodNotFound)
}

func runnable(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Func && t.NumIn() == 0 && t.NumOut() == 0
}
