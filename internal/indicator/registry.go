// File: registry.go
// Title: Indicator Capability Registry
// Description: Implements the catalogue of indicator names with their query
//              capability flags. The registry is populated once at startup
//              (or per test) and treated as read-only by the conversion
//              layer; requires-query predicates are evaluated against an
//              immutable sibling-parameter snapshot passed in at call time.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial registry implementation

package indicator

import (
	"sort"
	"strings"
	"sync"

	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
	odlog "github.com/X-lab2017/opendigger-cli/internal/core/log"
)

// Type classifies the entity an indicator describes
type Type string

const (
	TypeRepo Type = "repo"
	TypeUser Type = "user"
)

// Introducer identifies the party that defined an indicator
type Introducer string

const (
	IntroducerXLab   Introducer = "X-lab"
	IntroducerCHAOSS Introducer = "CHAOSS"
)

// Siblings is an immutable snapshot of the sibling command-line parameters
// that capability predicates may consult. The registry never inspects the
// meaning of these values beyond the predicates defined on its entries.
type Siblings struct {
	// UniformQuery is set when a uniform query body was supplied for all
	// indicators in the invocation.
	UniformQuery bool

	// Flags carries other already-parsed parameters by name.
	Flags map[string]string
}

// Flag returns a sibling flag value
func (s Siblings) Flag(name string) (string, bool) {
	v, ok := s.Flags[name]
	return v, ok
}

// Predicate decides whether a capability applies under the given siblings
type Predicate func(Siblings) bool

// Never is the predicate that always reports false
func Never(Siblings) bool { return false }

// Always is the predicate that always reports true
func Always(Siblings) bool { return true }

// UnlessUniformQuery reports true unless a uniform query was supplied
func UnlessUniformQuery(s Siblings) bool { return !s.UniformQuery }

// Definition describes a single indicator and its query capabilities
type Definition struct {
	Name          string     // Indicator name (normalized to lower case)
	Type          Type       // Entity type the indicator applies to
	Introducer    Introducer // Who introduced the indicator
	Description   string     // Short description for catalogue output
	AcceptsQuery  bool       // Whether a query suffix is allowed at all
	RequiresQuery Predicate  // Whether a query suffix is mandatory; nil means never
}

// requiresQuery evaluates the requires-query predicate against a snapshot
func (d *Definition) requiresQuery(s Siblings) bool {
	if !d.AcceptsQuery || d.RequiresQuery == nil {
		return false
	}
	return d.RequiresQuery(s)
}

// Registry holds indicator definitions keyed by normalized name
type Registry struct {
	definitions map[string]*Definition
	logger      *odlog.Logger
	mutex       sync.RWMutex
}

// Options configures registry behavior
type Options struct {
	Logger *odlog.Logger
}

// New creates an empty indicator registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = odlog.GetDefault()
	}

	return &Registry{
		definitions: make(map[string]*Definition),
		logger:      opts.Logger.WithField("component", "indicator-registry"),
	}
}

// Register adds a definition to the registry. Names are normalized to lower
// case; duplicate names are an error.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return oderror.New("indicator definition cannot be nil").
			WithCode(oderror.CodeInternal)
	}

	name := strings.ToLower(strings.TrimSpace(def.Name))
	if name == "" {
		return oderror.New("indicator name cannot be empty").
			WithCode(oderror.CodeInternal)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.definitions[name]; exists {
		return oderror.Newf("indicator %s already registered", name).
			WithCode(oderror.CodeInternal).
			WithDetail("name", name)
	}

	def.Name = name
	r.definitions[name] = def

	r.logger.Debug("indicator registered", odlog.Fields{
		"name":          name,
		"type":          string(def.Type),
		"accepts_query": def.AcceptsQuery,
	})

	return nil
}

// MustRegister registers a definition and panics on error; for catalogue
// construction at startup only.
func (r *Registry) MustRegister(def *Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Has reports whether a name is in the catalogue
func (r *Registry) Has(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	_, ok := r.definitions[strings.ToLower(name)]
	return ok
}

// Get returns the definition for a name
func (r *Registry) Get(name string) (*Definition, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	def, ok := r.definitions[strings.ToLower(name)]
	if !ok {
		return nil, oderror.Newf("unknown indicator: %s", name).
			WithCode(oderror.CodeUnknownIndicator).
			WithDetail("name", name).
			WithDetail("known_names", r.namesLocked())
	}
	return def, nil
}

// Names returns all indicator names in sorted order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.namesLocked()
}

// namesLocked returns sorted names; caller holds at least the read lock
func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered indicators
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.definitions)
}

// ByType returns the definitions for a given entity type, sorted by name
func (r *Registry) ByType(t Type) []*Definition {
	return r.filter(func(d *Definition) bool { return d.Type == t })
}

// ByIntroducer returns the definitions from a given introducer, sorted by name
func (r *Registry) ByIntroducer(i Introducer) []*Definition {
	return r.filter(func(d *Definition) bool { return d.Introducer == i })
}

// All returns every definition, sorted by name
func (r *Registry) All() []*Definition {
	return r.filter(func(*Definition) bool { return true })
}

// RequiresQuery evaluates the requires-query predicate for a name under the
// given sibling snapshot. Unknown names report false.
func (r *Registry) RequiresQuery(name string, s Siblings) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	def, ok := r.definitions[strings.ToLower(name)]
	if !ok {
		return false
	}
	return def.requiresQuery(s)
}

// filter returns definitions matching the predicate, sorted by name
func (r *Registry) filter(keep func(*Definition) bool) []*Definition {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var out []*Definition
	for _, def := range r.definitions {
		if keep(def) {
			out = append(out, def)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
