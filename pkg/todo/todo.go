// Package todo holds the in-memory to-do lists, the edit session, and their
// round trip to a store.Backend.
package todo

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jys9049/RN-TodoList/pkg/entry"
	"github.com/jys9049/RN-TodoList/pkg/store"
)

// Store is the single owner of the entries, the active category and the edit
// session. Every method is safe for concurrent use; each mutation is applied
// atomically and its write is queued with the state as of that call.
type Store struct {
	backend store.Backend
	logger  *log.Entry
	newID   func() string

	mu      sync.Mutex
	ready   bool
	closed  bool
	entries entry.Collection
	filter  entry.Category
	session Session
	seq     uint64

	w *writer
}

// Option configures a Store in New.
type Option func(*Store)

// WithLogger sets the logger used for save failures.
func WithLogger(l *log.Entry) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithIDs replaces the uuid generator.
func WithIDs(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// New creates an empty store. It accepts no mutations until Load succeeds.
func New(backend store.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  log.WithField("component", "todo"),
		newID:   uuid.NewString,
		entries: make(entry.Collection),
		filter:  entry.Work,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.w = newWriter(s.write)
	return s
}

func (s *Store) write(key, value string) error {
	err := s.backend.Set(context.Background(), key, value)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("save failed")
		return err
	}
	s.logger.WithField("key", key).Debug("saved")
	return nil
}

// Load reads both records from the backend. An absent record leaves the
// default in place. A corrupt record fails with *entry.DecodeError and leaves
// the store unloaded; nothing is reset.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return ErrClosed
	case s.ready:
		s.mu.Unlock()
		return ErrAlreadyLoaded
	}
	s.mu.Unlock()

	filter := entry.Work
	menu, ok, err := s.backend.Get(ctx, store.MenuKey)
	if err != nil {
		return err
	}
	if ok {
		if filter, err = entry.DecodeFilter(menu); err != nil {
			return err
		}
	}

	entries := make(entry.Collection)
	todos, ok, err := s.backend.Get(ctx, store.TodosKey)
	if err != nil {
		return err
	}
	if ok {
		if entries, err = entry.DecodeCollection(todos); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return ErrAlreadyLoaded
	}
	s.entries = entries
	s.filter = filter
	s.seq = entries.MaxSeq()
	s.ready = true
	s.logger.WithField("entries", len(entries)).Debug("loaded")
	return nil
}

func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Filter is the active category.
func (s *Store) Filter() entry.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Session returns the current edit session; the zero value means none.
func (s *Store) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Get returns a copy of the entry with the given id.
func (s *Store) Get(id string) (entry.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return entry.Entry{}, false
	}
	return *e, true
}

// Resolve expands a unique id prefix to a full id.
func (s *Store) Resolve(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[prefix]; ok {
		return prefix, nil
	}
	found := ""
	for id := range s.entries {
		if strings.HasPrefix(id, prefix) {
			if found != "" {
				return "", ErrAmbiguous
			}
			found = id
		}
	}
	if found == "" {
		return "", ErrNotFound
	}
	return found, nil
}

// Query yields copies of the entries in category c in creation order. Each
// iteration takes a fresh view, so the sequence can be ranged over again to
// see later changes. It does not wait for Load.
func (s *Store) Query(c entry.Category) iter.Seq[entry.Entry] {
	return func(yield func(entry.Entry) bool) {
		s.mu.Lock()
		matched := make([]*entry.Entry, 0, len(s.entries))
		for _, e := range s.entries {
			if e.Category == c {
				cp := *e
				matched = append(matched, &cp)
			}
		}
		s.mu.Unlock()

		entry.Sort(matched)
		for _, e := range matched {
			if !yield(*e) {
				return
			}
		}
	}
}

// Snapshot deep-copies the persisted state.
func (s *Store) Snapshot() (entry.Collection, entry.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Clone(), s.filter
}

// mutable must be called with s.mu held.
func (s *Store) mutable() error {
	switch {
	case s.closed:
		return ErrClosed
	case !s.ready:
		return ErrNotReady
	}
	return nil
}

// saveEntries must be called with s.mu held so the payload is the state as of
// the mutation.
func (s *Store) saveEntries() (*Save, error) {
	data, err := entry.EncodeCollection(s.entries)
	if err != nil {
		return nil, err
	}
	return s.w.enqueue(store.TodosKey, data), nil
}

// SetCategoryFilter switches the active category and persists it.
func (s *Store) SetCategoryFilter(c entry.Category) (*Save, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return nil, err
	}
	data, err := entry.EncodeFilter(c)
	if err != nil {
		return nil, err
	}
	s.filter = c
	return s.w.enqueue(store.MenuKey, data), nil
}

// CreateEntry adds an open entry to the active category. Blank text is
// ignored: the result is (nil, nil, nil).
func (s *Store) CreateEntry(text string) (*entry.Entry, *Save, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return nil, nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil, nil
	}

	id := s.newID()
	if _, taken := s.entries[id]; taken {
		return nil, nil, fmt.Errorf("todo: id generator repeated %q", id)
	}
	s.seq++
	e := entry.New(id, s.seq, s.filter, text)
	s.entries[id] = e

	save, err := s.saveEntries()
	if err != nil {
		return nil, nil, err
	}
	cp := *e
	return &cp, save, nil
}

// ToggleComplete flips the completion flag of id.
func (s *Store) ToggleComplete(id string) (*entry.Entry, *Save, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return nil, nil, err
	}
	e, ok := s.entries[id]
	if !ok {
		return nil, nil, ErrNotFound
	}
	e.Toggle()

	save, err := s.saveEntries()
	if err != nil {
		return nil, nil, err
	}
	cp := *e
	return &cp, save, nil
}

// BeginOrCancelEdit starts editing id with its current text as the draft, or
// cancels if id is already being edited. Starting on another id replaces the
// current session without saving it.
func (s *Store) BeginOrCancelEdit(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return s.session, err
	}
	e, ok := s.entries[id]
	if !ok {
		return s.session, ErrNotFound
	}
	if s.session.Editing(id) {
		s.session = Session{}
	} else {
		s.session = Session{ActiveID: id, Draft: e.Text}
	}
	return s.session, nil
}

// UpdateDraftText replaces the draft. Drafts are never persisted.
func (s *Store) UpdateDraftText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.session.Active() {
		return ErrNoSession
	}
	s.session.Draft = text
	return nil
}

// CommitEdit writes the draft into the edited entry and ends the session. A
// blank draft ends the session without touching the entry and returns
// (nil, nil, nil).
func (s *Store) CommitEdit() (*entry.Entry, *Save, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return nil, nil, err
	}
	if !s.session.Active() {
		return nil, nil, ErrNoSession
	}
	session := s.session
	s.session = Session{}

	text := strings.TrimSpace(session.Draft)
	if text == "" {
		return nil, nil, nil
	}
	e, ok := s.entries[session.ActiveID]
	if !ok {
		return nil, nil, ErrNotFound
	}
	e.Text = text

	save, err := s.saveEntries()
	if err != nil {
		return nil, nil, err
	}
	cp := *e
	return &cp, save, nil
}

// ApplyDelete removes id. The caller is responsible for having asked the
// user first. An edit session on id is dropped.
func (s *Store) ApplyDelete(id string) (*Save, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return nil, err
	}
	if _, ok := s.entries[id]; !ok {
		return nil, ErrNotFound
	}
	delete(s.entries, id)
	if s.session.Editing(id) {
		s.session = Session{}
	}
	return s.saveEntries()
}

// Close waits for queued writes to finish and rejects further mutations.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	return s.w.close(ctx)
}
