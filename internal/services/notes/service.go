package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Paintersrp/focusnest/internal/cache"
	"github.com/Paintersrp/focusnest/internal/note"
	"github.com/Paintersrp/focusnest/internal/parser"
	"github.com/Paintersrp/focusnest/internal/search"
	"github.com/Paintersrp/focusnest/internal/services/index"
	"github.com/Paintersrp/focusnest/internal/store"
)

// ErrEmptyTitle is returned when a note title is blank.
var ErrEmptyTitle = errors.New("note title is required")

// ErrNotConfigured is returned by a Service missing its store.
var ErrNotConfigured = errors.New("notes service is not configured")

const renderCacheSize = 256

type renderKey struct {
	id      int64
	updated time.Time
	built   time.Time
}

// Service coordinates note persistence with link extraction and rendering.
type Service struct {
	store store.Store
	index *index.Service
	html  *cache.LRUCache[renderKey, string]
}

// NewService wires the note service to its store and the shared index.
func NewService(st store.Store, idx *index.Service) *Service {
	return &Service{
		store: st,
		index: idx,
		html:  cache.NewLRUCache[renderKey, string](renderCacheSize),
	}
}

// List returns notes ordered by most recent update. A limit of zero or less
// returns everything after offset.
func (s *Service) List(ctx context.Context, limit, offset int) ([]note.Note, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	all, err := s.store.ListNotes(ctx)
	if err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return []note.Note{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (s *Service) Get(ctx context.Context, id int64) (note.Note, error) {
	if err := s.ready(); err != nil {
		return note.Note{}, err
	}
	return s.store.FindNoteByID(ctx, id)
}

func (s *Service) FindByTitle(ctx context.Context, title string) (note.Note, error) {
	if err := s.ready(); err != nil {
		return note.Note{}, err
	}
	return s.store.FindNoteByTitle(ctx, title)
}

// Create stores a new note together with the links its content resolves to.
// A failure leaves nothing behind.
func (s *Service) Create(ctx context.Context, title, content string) (note.Note, error) {
	if err := s.ready(); err != nil {
		return note.Note{}, err
	}
	if strings.TrimSpace(title) == "" {
		return note.Note{}, ErrEmptyTitle
	}

	all, err := s.store.ListNotes(ctx)
	if err != nil {
		return note.Note{}, fmt.Errorf("load titles: %w", err)
	}
	ids := parser.ResolveContent(content, note.IndexTitles(all))

	n, err := s.store.CreateNoteWithLinks(ctx, title, content, ids, note.DefaultStrength)
	if err != nil {
		return note.Note{}, err
	}
	s.invalidate()
	return n, nil
}

// Update replaces a note's title and content and rebuilds its outgoing
// links.
func (s *Service) Update(ctx context.Context, id int64, title, content string) (note.Note, error) {
	if err := s.ready(); err != nil {
		return note.Note{}, err
	}
	if strings.TrimSpace(title) == "" {
		return note.Note{}, ErrEmptyTitle
	}

	n, err := s.store.UpdateNote(ctx, id, title, content)
	if err != nil {
		return note.Note{}, err
	}
	defer s.invalidate()

	if err := s.syncLinks(ctx, n); err != nil {
		return n, err
	}
	return n, nil
}

// Delete removes the note along with its links and tags.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.store.DeleteNote(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Relink recomputes outgoing links for every note. Links pointing at titles
// created after the linking note was last saved are picked up this way.
func (s *Service) Relink(ctx context.Context) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	all, err := s.store.ListNotes(ctx)
	if err != nil {
		return 0, err
	}
	defer s.invalidate()

	titles := note.IndexTitles(all)
	for _, n := range all {
		ids := parser.ResolveContent(n.Content, titles)
		if err := s.store.ReplaceOutgoingLinks(ctx, n.ID, ids, note.DefaultStrength); err != nil {
			return 0, fmt.Errorf("relink note %d: %w", n.ID, err)
		}
	}
	return len(all), nil
}

// Render returns the note content with wiki-links replaced by HTML markers.
func (s *Service) Render(ctx context.Context, id int64) (string, error) {
	n, snap, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	return parser.Render(n.Content, snap.Titles), nil
}

// RenderHTML renders the note's markdown to HTML with link markers.
func (s *Service) RenderHTML(ctx context.Context, id int64) (string, error) {
	n, snap, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}

	key := renderKey{id: id, updated: n.UpdatedAt, built: snap.BuiltAt}
	if out, ok := s.html.Get(key); ok {
		return out, nil
	}

	out, err := parser.RenderHTML(n.Content, snap.Titles)
	if err != nil {
		return "", err
	}
	s.html.Put(key, out)
	return out, nil
}

// RenderTerminal renders the note as markdown suited to terminal display.
func (s *Service) RenderTerminal(ctx context.Context, id int64) (string, error) {
	n, snap, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	return parser.RenderTerminal(n.Content, snap.Titles), nil
}

// Search matches term against note titles and content.
func (s *Service) Search(ctx context.Context, term string, limit int) (search.Results, error) {
	if s == nil || s.index == nil {
		return search.Results{}, ErrNotConfigured
	}
	return s.index.Search(ctx, search.Query{Term: term, Limit: limit})
}

func (s *Service) AddTag(ctx context.Context, id int64, name string) (note.Tag, error) {
	if err := s.ready(); err != nil {
		return note.Tag{}, err
	}
	return s.store.AddTag(ctx, id, name)
}

func (s *Service) Tags(ctx context.Context, id int64) ([]note.Tag, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.store.ListTags(ctx, id)
}

func (s *Service) syncLinks(ctx context.Context, n note.Note) error {
	all, err := s.store.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("load titles: %w", err)
	}

	ids := parser.ResolveContent(n.Content, note.IndexTitles(all))
	if err := s.store.ReplaceOutgoingLinks(ctx, n.ID, ids, note.DefaultStrength); err != nil {
		return fmt.Errorf("update links for note %d: %w", n.ID, err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, id int64) (note.Note, *index.Snapshot, error) {
	if err := s.ready(); err != nil {
		return note.Note{}, nil, err
	}
	if s.index == nil {
		return note.Note{}, nil, ErrNotConfigured
	}

	n, err := s.store.FindNoteByID(ctx, id)
	if err != nil {
		return note.Note{}, nil, err
	}
	snap, err := s.index.Snapshot(ctx)
	if err != nil {
		return note.Note{}, nil, err
	}
	return n, snap, nil
}

func (s *Service) invalidate() {
	if s.index != nil {
		s.index.Invalidate()
	}
	s.html.Purge()
}

func (s *Service) ready() error {
	if s == nil || s.store == nil {
		return ErrNotConfigured
	}
	return nil
}
