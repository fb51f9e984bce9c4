package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DecodeError reports a persisted record that could not be read back.
type DecodeError struct {
	Record string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("entry: decode %s record: %v", e.Record, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var errNull = errors.New("record is null")

// record is the persisted shape of a single entry. Working is only present in
// records written before categories were named.
type record struct {
	Text     string     `json:"text"`
	Category *Category  `json:"category,omitempty"`
	Working  *bool      `json:"working,omitempty"`
	Complete bool       `json:"complete"`
	Seq      uint64     `json:"seq,omitempty"`
	Created  *Timestamp `json:"created,omitempty"`
}

// EncodeCollection serializes the collection record.
func EncodeCollection(c Collection) (string, error) {
	out := make(map[string]record, len(c))
	for id, e := range c {
		cat := e.Category
		r := record{
			Text:     e.Text,
			Category: &cat,
			Complete: e.Complete,
			Seq:      e.Seq,
		}
		if !e.Created.IsZero() {
			ts := e.Created
			r.Created = &ts
		}
		out[id] = r
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("entry: encode collection: %w", err)
	}
	return string(b), nil
}

// DecodeCollection parses the collection record. Entries without a sequence
// number are ordered after the sequenced ones by their key, numerically when
// the key is a number.
func DecodeCollection(data string) (Collection, error) {
	var raw map[string]record
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, &DecodeError{Record: "collection", Err: err}
	}
	if raw == nil {
		return nil, &DecodeError{Record: "collection", Err: errNull}
	}

	c := make(Collection, len(raw))
	var unsequenced []string
	for id, r := range raw {
		if strings.TrimSpace(id) == "" {
			return nil, &DecodeError{Record: "collection", Err: fmt.Errorf("empty entry id")}
		}
		if strings.TrimSpace(r.Text) == "" {
			return nil, &DecodeError{Record: "collection", Err: fmt.Errorf("entry %s: empty text", id)}
		}
		e := &Entry{ID: id, Text: r.Text, Complete: r.Complete, Seq: r.Seq}
		switch {
		case r.Category != nil:
			e.Category = *r.Category
		case r.Working != nil:
			if *r.Working {
				e.Category = Work
			} else {
				e.Category = Travel
			}
		default:
			return nil, &DecodeError{Record: "collection", Err: fmt.Errorf("entry %s: missing category", id)}
		}
		if r.Created != nil {
			e.Created = *r.Created
		}
		if e.Seq == 0 {
			unsequenced = append(unsequenced, id)
		}
		c[id] = e
	}

	sort.Slice(unsequenced, func(i, j int) bool {
		return keyLess(unsequenced[i], unsequenced[j])
	})
	next := c.MaxSeq()
	for _, id := range unsequenced {
		next++
		c[id].Seq = next
	}
	return c, nil
}

func keyLess(a, b string) bool {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// EncodeFilter serializes the active category.
func EncodeFilter(c Category) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("entry: encode filter: %w", err)
	}
	return string(b), nil
}

// DecodeFilter parses the filter record, accepting the older boolean form
// where true meant Work.
func DecodeFilter(data string) (Category, error) {
	if strings.TrimSpace(data) == "null" {
		return Work, &DecodeError{Record: "filter", Err: errNull}
	}
	var working bool
	if err := json.Unmarshal([]byte(data), &working); err == nil {
		if working {
			return Work, nil
		}
		return Travel, nil
	}
	var c Category
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return Work, &DecodeError{Record: "filter", Err: err}
	}
	return c, nil
}
