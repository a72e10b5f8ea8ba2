package domain

import (
	"errors"
	"path/filepath"
	"strings"
)

// Resource is a live project file as seen by the host
type Resource struct {
	Path string // Path relative to the project root, slash separated
	Name string // Display name (file name without extension)
}

// NewResource builds a Resource for a project-relative path
func NewResource(path string) *Resource {
	path = filepath.ToSlash(path)
	base := filepath.Base(path)
	return &Resource{
		Path: path,
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

// Ext returns the lower-cased extension without the dot
func (r *Resource) Ext() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(r.Path)), ".")
}

// Resolver maps stable identifiers to live resources and back.
type Resolver interface {
	// Lookup returns the resource for an identifier, or false when it no longer resolves
	Lookup(id string) (*Resource, bool)

	// Identify returns the stable identifier of a live resource, minting one if needed
	Identify(res *Resource) (string, error)
}

// MacroRunner locates and invokes parameterless static methods of script classes
type MacroRunner interface {
	// Check reports why a method cannot be invoked, or nil when it can
	Check(script *Resource, method string) error

	// Run invokes the method
	Run(script *Resource, method string) error
}

// Opener performs the host's "open" action on a resource
type Opener interface {
	Open(res *Resource) error
}

// Selector re-establishes a multi-selection in the host
type Selector interface {
	Select(resources []*Resource) error
}

// Logger receives human-readable messages for non-fatal failures
type Logger interface {
	Error(msg string)
}

// Host bundles the collaborators the model needs. Any of them may be nil.
//
// The model is driven from a single goroutine; none of the memo caches it
// touches are safe for concurrent use.
type Host struct {
	Resolver Resolver
	Macros   MacroRunner
	Opener   Opener
	Selector Selector
	Log      Logger
}

// Macro failure causes reported by a MacroRunner
var (
	ErrScriptMissing  = errors.New("script missing")
	ErrClassNotFound  = errors.New("class not found")
	ErrMethodNotFound = errors.New("method not found")
	ErrInstanceMethod = errors.New("method is not static")
	ErrBadSignature   = errors.New("method signature not supported")
)

func (h *Host) lookup(id string) (*Resource, bool) {
	if h == nil || h.Resolver == nil || id == "" {
		return nil, false
	}
	return h.Resolver.Lookup(id)
}

func (h *Host) report(msg string) {
	if h == nil || h.Log == nil {
		return
	}
	h.Log.Error(msg)
}
