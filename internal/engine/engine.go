// Package engine owns the active model-type configuration and runs the
// decode pipeline: parse, resolve, enhance, validate. Every pass is
// synchronous and cheap; a fresh call simply supersedes whatever the
// caller did with the previous result.
package engine

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"modelnum/internal/catalog"
	"modelnum/internal/decode"
	"modelnum/internal/enhance"
	"modelnum/internal/search"
	"modelnum/internal/validate"
	"modelnum/internal/viz"
)

// activeSet bundles a model type with its prepared enhancer descriptors.
// Swapping model types replaces the whole set in one pointer store; a
// decode in flight keeps reading the set it started with.
type activeSet struct {
	mt        *catalog.ModelType
	enhancers []enhance.Descriptor
}

// Engine holds every loaded model type and the currently active one.
type Engine struct {
	log    *zap.Logger
	types  map[string]*catalog.ModelType
	order  []string
	active atomic.Pointer[activeSet]
}

// Result is one full decode pass over one input string.
type Result struct {
	ModelType  string
	Attributes []decode.Attribute
	Notices    []string
	Warnings   []validate.Warning
}

// New builds an engine over the given model types and activates the first
// one. The types must already have passed catalog.Validate (catalog.Load
// guarantees this).
func New(log *zap.Logger, types []*catalog.ModelType) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("no model types configured")
	}
	e := &Engine{log: log, types: make(map[string]*catalog.ModelType, len(types))}
	for _, mt := range types {
		if _, dup := e.types[mt.ID]; dup {
			return nil, fmt.Errorf("duplicate model type %q", mt.ID)
		}
		e.types[mt.ID] = mt
		e.order = append(e.order, mt.ID)
	}
	e.activate(types[0])
	return e, nil
}

func (e *Engine) activate(mt *catalog.ModelType) {
	e.active.Store(&activeSet{mt: mt, enhancers: enhance.FromSpecs(mt.Enhancers)})
	e.log.Debug("model type activated", zap.String("type", mt.ID))
}

// ModelTypes lists the configured model type IDs in load order.
func (e *Engine) ModelTypes() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Active returns the currently active model type.
func (e *Engine) Active() *catalog.ModelType {
	return e.active.Load().mt
}

// SetModelType swaps the active configuration set atomically.
func (e *Engine) SetModelType(id string) error {
	mt, ok := e.types[id]
	if !ok {
		return fmt.Errorf("unknown model type %q", id)
	}
	e.activate(mt)
	return nil
}

// Decode runs the full pipeline over one raw input string.
func (e *Engine) Decode(input string) Result {
	set := e.active.Load()
	mt := set.mt

	parsed := decode.Parse(input, mt.ModelGrammar, mt.FeatureGrammar)
	attrs := decode.ResolveAll(mt.Catalog, parsed.Segments)
	enhance.Apply(attrs, set.enhancers)
	warnings := validate.Evaluate(mt.Catalog, mt.Rules, attrs)

	notices := make([]string, 0, len(parsed.Extras))
	for _, extra := range parsed.Extras {
		notices = append(notices, fmt.Sprintf("unrecognized segment %q", extra))
	}

	e.log.Debug("decoded",
		zap.String("type", mt.ID),
		zap.Int("attributes", len(attrs)),
		zap.Int("notices", len(notices)),
		zap.Int("warnings", len(warnings)))

	return Result{
		ModelType:  mt.ID,
		Attributes: attrs,
		Notices:    notices,
		Warnings:   warnings,
	}
}

// Search runs a reverse lookup against the active catalog.
func (e *Engine) Search(query string) []search.Match {
	return search.Query(e.active.Load().mt.Catalog, query)
}

// Highlight computes per-character marks for the given categories. An
// empty ref means the model type's canonical reference string.
func (e *Engine) Highlight(categories []string, ref string) []viz.Mark {
	mt := e.active.Load().mt
	if ref == "" {
		ref = mt.Reference
	}
	return viz.Render(mt.Positions, categories, ref)
}
