package entry

import (
	"sort"
	"time"
)

// New builds an open entry. The caller owns id and seq allocation.
func New(id string, seq uint64, category Category, text string) *Entry {
	return &Entry{
		ID:       id,
		Text:     text,
		Category: category,
		Seq:      seq,
		Created:  Timestamp{Time: time.Now().UTC().Truncate(time.Second)},
	}
}

// Entry is one task or trip.
type Entry struct {
	ID       string
	Text     string
	Category Category
	Complete bool

	// Seq is the creation sequence and fixes display order.
	Seq     uint64
	Created Timestamp
}

func (e *Entry) Toggle() {
	e.Complete = !e.Complete
}

// Collection maps entry id to entry.
type Collection map[string]*Entry

// Clone deep-copies the collection.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for id, e := range c {
		cp := *e
		out[id] = &cp
	}
	return out
}

// MaxSeq returns the highest sequence number in use.
func (c Collection) MaxSeq() uint64 {
	var max uint64
	for _, e := range c {
		if e.Seq > max {
			max = e.Seq
		}
	}
	return max
}

// Sorted returns the entries in creation order.
func (c Collection) Sorted() []*Entry {
	all := make([]*Entry, 0, len(c))
	for _, e := range c {
		all = append(all, e)
	}
	Sort(all)
	return all
}

// Sort orders entries by sequence, then id.
func Sort(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Seq == entries[j].Seq {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].Seq < entries[j].Seq
	})
}
