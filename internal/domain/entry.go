package domain

import (
	"errors"
	"fmt"
	"strings"
)

// EntryKind tags the variant carried by an Entry
type EntryKind int

const (
	EntryAsset EntryKind = iota
	EntryMacro
	EntryShortcut
)

func (k EntryKind) String() string {
	switch k {
	case EntryAsset:
		return "asset"
	case EntryMacro:
		return "macro"
	case EntryShortcut:
		return "shortcut"
	default:
		return "unknown"
	}
}

// ParseEntryKind is the inverse of EntryKind.String
func ParseEntryKind(s string) (EntryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asset":
		return EntryAsset, nil
	case "macro":
		return EntryMacro, nil
	case "shortcut":
		return EntryShortcut, nil
	default:
		return 0, fmt.Errorf("unknown entry kind: %q", s)
	}
}

// Sort classes, lowest first
const (
	SortClassShortcut = 0
	SortClassMacro    = 1
	SortClassDefault  = 2
)

// maxShortcutNames is how many member names a shortcut lists before
// falling back to a count
const maxShortcutNames = 3

// MissingName is shown for an asset whose resource no longer resolves
const MissingName = "(missing)"

// AssetEntry references one resource
type AssetEntry struct {
	Ref Reference
}

// MacroEntry references a script and the name of a static method on its class
type MacroEntry struct {
	Script Reference
	Method string
	Icon   Reference // optional
}

// ShortcutEntry is a saved multi-selection
type ShortcutEntry struct {
	Members ReferenceList

	name      string
	nameValid bool
	nameGen   uint64 // Members generation the name was built from
}

// Entry is one item of a folder. Exactly one of Asset, Macro, Shortcut is set,
// matching Kind.
type Entry struct {
	Kind       EntryKind
	CustomName string

	Asset    *AssetEntry
	Macro    *MacroEntry
	Shortcut *ShortcutEntry
}

// NewAssetEntry references a live resource
func NewAssetEntry(r Resolver, res *Resource) (*Entry, error) {
	ref, err := NewReference(r, res)
	if err != nil {
		return nil, err
	}
	return &Entry{Kind: EntryAsset, Asset: &AssetEntry{Ref: ref}}, nil
}

// NewMacroEntry references a method of the class defined by script
func NewMacroEntry(r Resolver, script *Resource, method string) (*Entry, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, fmt.Errorf("macro method name is required")
	}
	ref, err := NewReference(r, script)
	if err != nil {
		return nil, err
	}
	return &Entry{Kind: EntryMacro, Macro: &MacroEntry{Script: ref, Method: method}}, nil
}

// NewShortcutEntry saves a multi-selection
func NewShortcutEntry(r Resolver, members []*Resource) (*Entry, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("a selection shortcut needs at least one member")
	}
	s := &ShortcutEntry{}
	for _, res := range members {
		if err := s.Members.Add(r, res); err != nil {
			return nil, err
		}
	}
	return &Entry{Kind: EntryShortcut, Shortcut: s}, nil
}

// Name returns the custom name when set, otherwise the variant's default name
func (e *Entry) Name(h *Host) string {
	if strings.TrimSpace(e.CustomName) != "" {
		return e.CustomName
	}
	return e.DefaultName(h)
}

// DefaultName is the variant specific name used when no custom name is set
func (e *Entry) DefaultName(h *Host) string {
	switch e.Kind {
	case EntryAsset:
		if res, ok := e.Asset.Ref.Resolve(resolver(h)); ok {
			return res.Name
		}
		return MissingName
	case EntryMacro:
		return HumanizeName(e.Macro.Method)
	case EntryShortcut:
		return e.Shortcut.defaultName(h)
	default:
		return ""
	}
}

func (s *ShortcutEntry) defaultName(h *Host) string {
	if s.nameValid && s.nameGen == s.Members.Generation() {
		return s.name
	}
	valid := s.Members.Valid(resolver(h))
	if len(valid) > maxShortcutNames {
		s.name = fmt.Sprintf("%d items", len(valid))
	} else {
		names := make([]string, len(valid))
		for i, res := range valid {
			names[i] = res.Name
		}
		s.name = strings.Join(names, ", ")
	}
	s.nameValid = true
	s.nameGen = s.Members.Generation()
	return s.name
}

// IsValid reports whether the entry's external references still resolve
func (e *Entry) IsValid(h *Host) bool {
	switch e.Kind {
	case EntryAsset:
		_, ok := e.Asset.Ref.Resolve(resolver(h))
		return ok
	case EntryMacro:
		return e.macroProblem(h) == nil
	case EntryShortcut:
		return len(e.Shortcut.Members.Valid(resolver(h))) > 0
	default:
		return false
	}
}

func (e *Entry) macroProblem(h *Host) error {
	script, ok := e.Macro.Script.Resolve(resolver(h))
	if !ok {
		return ErrScriptMissing
	}
	if h == nil || h.Macros == nil {
		return fmt.Errorf("no macro runner: %w", ErrClassNotFound)
	}
	return h.Macros.Check(script, e.Macro.Method)
}

// Open runs the variant's action. Failures are reported to the host logger;
// Open itself never fails.
func (e *Entry) Open(h *Host) {
	if err := e.open(h); err != nil {
		h.report(err.Error())
	}
}

func (e *Entry) open(h *Host) error {
	if h == nil {
		return fmt.Errorf("cannot open %s entry without a host", e.Kind)
	}
	switch e.Kind {
	case EntryAsset:
		res, ok := e.Asset.Ref.Resolve(resolver(h))
		if !ok {
			return fmt.Errorf("cannot open %q: resource %s no longer resolves", e.Name(h), e.Asset.Ref.ID())
		}
		if h.Opener == nil {
			return fmt.Errorf("cannot open %s: no opener configured", res.Path)
		}
		if err := h.Opener.Open(res); err != nil {
			return fmt.Errorf("failed to open %s: %w", res.Path, err)
		}
		return nil

	case EntryMacro:
		return e.runMacro(h)

	case EntryShortcut:
		members := e.Shortcut.Members.Valid(resolver(h))
		if len(members) == 0 {
			return fmt.Errorf("cannot select %q: no member resolves", e.Name(h))
		}
		if h.Selector == nil {
			return fmt.Errorf("cannot select %q: no selector configured", e.Name(h))
		}
		if err := h.Selector.Select(members); err != nil {
			return fmt.Errorf("failed to select %q: %w", e.Name(h), err)
		}
		return nil

	default:
		return fmt.Errorf("unknown entry kind %d", e.Kind)
	}
}

func (e *Entry) runMacro(h *Host) error {
	m := e.Macro
	script, ok := m.Script.Resolve(resolver(h))
	if !ok {
		return fmt.Errorf("macro %s: script %s is missing", m.Method, m.Script.ID())
	}
	if h.Macros == nil {
		return fmt.Errorf("macro %s: no macro runner configured", m.Method)
	}
	if err := h.Macros.Check(script, m.Method); err != nil {
		return describeMacroError(script, m.Method, err)
	}
	if err := h.Macros.Run(script, m.Method); err != nil {
		return describeMacroError(script, m.Method, err)
	}
	return nil
}

func describeMacroError(script *Resource, method string, err error) error {
	switch {
	case errors.Is(err, ErrClassNotFound):
		return fmt.Errorf("macro %s: no class defined by script %s: %w", method, script.Path, err)
	case errors.Is(err, ErrMethodNotFound):
		return fmt.Errorf("macro %s: class %s has no method %s: %w", method, script.Name, method, err)
	case errors.Is(err, ErrInstanceMethod):
		return fmt.Errorf("macro %s: %s.%s must be static: %w", method, script.Name, method, err)
	case errors.Is(err, ErrBadSignature):
		return fmt.Errorf("macro %s: %s.%s must take no parameters and return nothing: %w", method, script.Name, method, err)
	default:
		return fmt.Errorf("macro %s failed: %w", method, err)
	}
}

// Refresh drops every cached derived value so it is recomputed on next access
func (e *Entry) Refresh() {
	switch e.Kind {
	case EntryAsset:
		e.Asset.Ref.Invalidate()
	case EntryMacro:
		e.Macro.Script.Invalidate()
		e.Macro.Icon.Invalidate()
	case EntryShortcut:
		e.Shortcut.Members.Invalidate()
		e.Shortcut.name = ""
		e.Shortcut.nameValid = false
	}
}

// SortClass returns the primary sort key of the entry
func (e *Entry) SortClass() int {
	switch e.Kind {
	case EntryShortcut:
		return SortClassShortcut
	case EntryMacro:
		return SortClassMacro
	default:
		return SortClassDefault
	}
}

// AssetsToSelect returns the resources the entry stands for
func (e *Entry) AssetsToSelect(h *Host) []*Resource {
	r := resolver(h)
	switch e.Kind {
	case EntryAsset:
		if res, ok := e.Asset.Ref.Resolve(r); ok {
			return []*Resource{res}
		}
	case EntryMacro:
		if res, ok := e.Macro.Script.Resolve(r); ok {
			return []*Resource{res}
		}
	case EntryShortcut:
		return e.Shortcut.Members.Valid(r)
	}
	return nil
}

// IconResource returns the macro's custom icon, if any
func (e *Entry) IconResource(h *Host) (*Resource, bool) {
	if e.Kind != EntryMacro || e.Macro.Icon.IsZero() {
		return nil, false
	}
	return e.Macro.Icon.Resolve(resolver(h))
}

var imageExts = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true,
	"bmp": true, "tga": true, "psd": true, "svg": true,
}

// CanAcceptDrop reports whether the entry consumes a dropped payload.
// Macros take a single image as their icon; other variants reject.
func (e *Entry) CanAcceptDrop(h *Host, candidates []*Resource) bool {
	if e.Kind != EntryMacro || len(candidates) != 1 || candidates[0] == nil {
		return false
	}
	return imageExts[candidates[0].Ext()]
}

// AcceptDrop consumes a payload accepted by CanAcceptDrop
func (e *Entry) AcceptDrop(h *Host, candidates []*Resource) error {
	if !e.CanAcceptDrop(h, candidates) {
		return fmt.Errorf("%s entry does not accept this drop", e.Kind)
	}
	ref, err := NewReference(resolver(h), candidates[0])
	if err != nil {
		return err
	}
	e.Macro.Icon = ref
	return nil
}

func resolver(h *Host) Resolver {
	if h == nil {
		return nil
	}
	return h.Resolver
}
