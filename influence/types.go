package influence

import "errors"

// DefaultSyntheticLabel is the vertex ID given to the merged seed unless
// WithSyntheticLabel overrides it.
const DefaultSyntheticLabel = "s"

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("influence: graph is nil")

	// ErrEmptySeedSet indicates AggregateSeeds was called without seeds.
	ErrEmptySeedSet = errors.New("influence: seed set is empty")

	// ErrSeedNotFound indicates a seed ID that is not a vertex of the graph.
	ErrSeedNotFound = errors.New("influence: seed not found in graph")

	// ErrEmptyLabel indicates an empty synthetic seed label.
	ErrEmptyLabel = errors.New("influence: synthetic label is empty")

	// ErrLabelCollision indicates the synthetic label names an existing non-seed vertex.
	ErrLabelCollision = errors.New("influence: synthetic label collides with an existing vertex")

	// ErrStartNotFound indicates the pathfinder start vertex is not in the graph.
	ErrStartNotFound = errors.New("influence: start vertex not found in graph")

	// ErrBadProbability indicates an edge probability outside [0, 1] or NaN.
	ErrBadProbability = errors.New("influence: edge probability outside [0, 1]")
)

// Options configures AggregateSeeds.
type Options struct {
	// Label is the vertex ID of the synthetic seed.
	Label string
}

// Option is a functional option for AggregateSeeds.
type Option func(*Options)

// WithSyntheticLabel sets the vertex ID used for the merged seed.
func WithSyntheticLabel(label string) Option {
	return func(o *Options) {
		o.Label = label
	}
}

// DefaultOptions returns Options with Label = DefaultSyntheticLabel.
func DefaultOptions() Options {
	return Options{Label: DefaultSyntheticLabel}
}
