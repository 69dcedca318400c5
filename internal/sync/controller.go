// Package sync keeps a page's local list of records in step with its
// collection. Mutations apply locally right away and are persisted in the
// background; any failed write reloads the list from the store.
package sync

import (
	"context"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/logger"
	"github.com/julianstephens/quantumlife/internal/models"
)

// Operation names reported to the error observer.
const (
	OpLoad   = "load"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

type config struct {
	parent   context.Context
	filter   collection.Filter
	opts     collection.Options
	newID    func() string
	onChange func()
	onError  func(op string, err error)
}

type Option func(*config)

// WithContext ties the controller's lifetime to ctx as well as Close.
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.parent = ctx }
}

// WithQuery narrows what Load fetches.
func WithQuery(filter collection.Filter, opts collection.Options) Option {
	return func(c *config) {
		c.filter = filter
		c.opts = opts
	}
}

// WithIDGenerator replaces uuid.NewString for new records.
func WithIDGenerator(fn func() string) Option {
	return func(c *config) { c.newID = fn }
}

// OnChange registers a callback run after every state change. It is called
// without the controller lock held, from whichever goroutine made the change.
func OnChange(fn func()) Option {
	return func(c *config) { c.onChange = fn }
}

// OnError registers an observer for failed store calls.
func OnError(fn func(op string, err error)) Option {
	return func(c *config) { c.onError = fn }
}

// Controller is the state of one page: the loaded records and whether a load
// is in flight.
type Controller[T models.Record[T]] struct {
	coll *collection.Collection[T]
	cfg  config
	log  *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	items   []T
	loading bool
}

func New[T models.Record[T]](p collection.Provider, opts ...Option) *Controller[T] {
	cfg := config{
		parent: context.Background(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	coll := collection.For[T](p)
	ctx, cancel := context.WithCancel(cfg.parent)
	return &Controller[T]{
		coll:   coll,
		cfg:    cfg,
		log:    logger.Component("sync").With("collection", coll.Name()),
		ctx:    ctx,
		cancel: cancel,
		items:  []T{},
	}
}

// Name returns the collection the controller is bound to.
func (c *Controller[T]) Name() string {
	return c.coll.Name()
}

// Items returns a copy of the current list.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *Controller[T]) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Find returns the local record with id.
func (c *Controller[T]) Find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexLocked(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Load replaces the list with the store's. On failure the previous list is kept.
func (c *Controller[T]) Load() {
	if c.ctx.Err() != nil {
		return
	}
	c.mutate(func() { c.loading = true })

	items, err := c.coll.ListAll(c.ctx, c.cfg.filter, c.cfg.opts)
	if c.ctx.Err() != nil {
		return
	}
	if err != nil {
		c.report(OpLoad, err)
		c.mutate(func() { c.loading = false })
		return
	}
	c.mutate(func() {
		c.items = items
		c.loading = false
	})
}

// Create gives fields a fresh id, shows it at the top of the list and
// persists it in the background. It returns the record as shown.
func (c *Controller[T]) Create(fields T) T {
	rec := fields.WithID(c.cfg.newID())
	c.mutate(func() {
		c.items = slices.Insert(c.items, 0, rec)
	})

	// The local record may have been edited while the create was in flight,
	// so the stored copy never replaces it.
	c.persist(OpCreate, func(ctx context.Context) error {
		_, err := c.coll.Create(ctx, rec)
		return err
	})
	return rec
}

// Update merges patch into the local record and sends it to the store.
func (c *Controller[T]) Update(id string, patch models.Patch[T]) {
	c.mutate(func() {
		if i := c.indexLocked(id); i >= 0 {
			c.items[i] = patch.Apply(c.items[i])
		}
	})

	c.persist(OpUpdate, func(ctx context.Context) error {
		_, err := c.coll.Update(ctx, id, patch)
		return err
	})
}

// Toggle derives a patch from the current local record and applies it like
// Update. It reports false when id is not in the list.
func (c *Controller[T]) Toggle(id string, flip func(T) models.Patch[T]) bool {
	rec, ok := c.Find(id)
	if !ok {
		return false
	}
	c.Update(id, flip(rec))
	return true
}

// Delete removes the record locally and from the store.
func (c *Controller[T]) Delete(id string) {
	c.mutate(func() {
		c.items = slices.DeleteFunc(c.items, func(item T) bool { return item.GetID() == id })
	})

	c.persist(OpDelete, func(ctx context.Context) error {
		return c.coll.Delete(ctx, id)
	})
}

// Wait blocks until every background write, and any reload it triggered, is done.
func (c *Controller[T]) Wait() {
	c.wg.Wait()
}

// Close stops the controller. Store responses that arrive afterwards are dropped.
func (c *Controller[T]) Close() {
	c.cancel()
}

// persist runs a store call in the background. A failure reloads the list so
// the local state matches the store again.
func (c *Controller[T]) persist(op string, call func(ctx context.Context) error) {
	if c.ctx.Err() != nil {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		err := call(c.ctx)
		if err == nil || c.ctx.Err() != nil {
			return
		}
		c.report(op, err)
		c.Load()
	}()
}

// mutate applies fn under the lock unless the controller is closed, then
// notifies the change callback.
func (c *Controller[T]) mutate(fn func()) {
	c.mu.Lock()
	if c.ctx.Err() != nil {
		c.mu.Unlock()
		return
	}
	fn()
	c.mu.Unlock()

	if c.cfg.onChange != nil {
		c.cfg.onChange()
	}
}

func (c *Controller[T]) indexLocked(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool { return item.GetID() == id })
}

func (c *Controller[T]) report(op string, err error) {
	c.log.Error("Store call failed", "op", op, "error", err)
	if c.cfg.onError != nil {
		c.cfg.onError(op, err)
	}
}
