package cellshape

// Option configures an Engine during creation.
//
// Example:
//
//	// Full shaping with ligatures disabled and a bigger cache:
//	eng := cellshape.New(resolver,
//	    cellshape.WithBackend(cellshape.NewHarfbuzzBackend(cellshape.Feature{Tag: "liga", Value: 0})),
//	    cellshape.WithCacheCapacity(4096),
//	)
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	backend       Backend
	cacheCapacity int
	cacheDisabled bool
	maxCells      int
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		backend: nil, // Will be set to a DirectBackend if nil
	}
}

// WithBackend selects the shaping backend. The default is a
// DirectBackend; use NewHarfbuzzBackend for ligatures and complex text,
// or NewNoopBackend for the bare minimum.
//
// The engine takes ownership: a backend must not be shared between
// engines.
func WithBackend(b Backend) Option {
	return func(o *engineOptions) {
		o.backend = b
	}
}

// WithCacheCapacity sets the shape result cache's entry capacity.
// Without this option the cache uses cache.DefaultCapacity (1024).
func WithCacheCapacity(n int) Option {
	return func(o *engineOptions) {
		o.cacheCapacity = n
	}
}

// WithoutCache disables the shape result cache. Every ShapeCached call
// then shapes fresh, which is only sensible for embedders that memoize at
// a higher level.
func WithoutCache() Option {
	return func(o *engineOptions) {
		o.cacheDisabled = true
	}
}

// WithMaxCells bounds the engine's cell output buffer. Shape returns
// ErrBufferCapacity for a run needing more cells. Without this option the
// buffer grows as needed and the error never occurs. Size it to at least
// the terminal's column count.
func WithMaxCells(n int) Option {
	return func(o *engineOptions) {
		o.maxCells = n
	}
}
