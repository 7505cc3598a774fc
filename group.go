package goform

import (
	"sort"
	"strings"

	"github.com/reoring/goform/internal/keytree"
)

// ArrayGroup manages the dotted-indexed fields of one named group. It holds
// no state of its own: storage stays in the form's registry and every
// mutation goes through it, so group views can never desynchronize.
type ArrayGroup struct {
	form *Form
	name string
}

// Group returns the array-group controller for name.
func (f *Form) Group(name string) *ArrayGroup {
	return &ArrayGroup{form: f, name: name}
}

// Name returns the group name.
func (g *ArrayGroup) Name() string { return g.name }

// itemsLocked collects the group's records ordered by numeric index.
// Caller holds the form lock.
func (g *ArrayGroup) itemsLocked() []FieldRecord {
	type slot struct {
		idx int
		rec FieldRecord
	}
	var slots []slot
	for _, name := range g.form.reg.Names() {
		k := keytree.Parse(name)
		if k.Kind != keytree.ArrayItem || k.Group != g.name {
			continue
		}
		rec, _ := g.form.reg.Get(name)
		slots = append(slots, slot{idx: k.Index, rec: rec})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].idx < slots[j].idx })
	out := make([]FieldRecord, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.rec)
	}
	return out
}

// Items returns the dense, index-ordered view of the group's records,
// honoring numeric order regardless of insertion order.
func (g *ArrayGroup) Items() []FieldRecord {
	g.form.mu.Lock()
	defer g.form.mu.Unlock()
	return g.itemsLocked()
}

// Len returns the current item count.
func (g *ArrayGroup) Len() int {
	g.form.mu.Lock()
	defer g.form.mu.Unlock()
	return len(g.itemsLocked())
}

// Errors returns the deduplicated error messages of every field and
// unregistered-error key prefixed by the group name, item order first.
func (g *ArrayGroup) Errors() []string {
	g.form.mu.Lock()
	var msgs []string
	seen := map[string]struct{}{}
	add := func(m string) {
		if m == "" {
			return
		}
		if _, dup := seen[m]; dup {
			return
		}
		seen[m] = struct{}{}
		msgs = append(msgs, m)
	}
	for _, rec := range g.itemsLocked() {
		if rec.Error {
			add(rec.ErrorMessage)
		}
	}
	unreg := g.form.unregistered
	for _, key := range keytree.SortedNames(unreg) {
		if key == g.name || strings.HasPrefix(key, g.name+".") {
			add(unreg[key])
		}
	}
	g.form.mu.Unlock()
	return msgs
}

// Add registers a new field at the group's next index, seeded with item as
// both value and original value. Touched is seeded from item, not from the
// initial-values environment: after a Remove the environment may still hold
// a stale element at the new index.
func (g *ArrayGroup) Add(item any) {
	g.form.mutate(func() {
		n := len(g.itemsLocked())
		g.form.reg.Register(keytree.ItemName(g.name, n), FieldPatch{
			Value:         Some(item),
			OriginalValue: Some(item),
			Touched:       Some(truthy(item)),
		}, false)
	})
}

// Remove drops the item at index, shifting every subsequent item's full
// record down one slot and deleting the now-duplicate last slot. Shifting
// preserves per-item value/touched/error state under removal from the
// middle rather than just truncating the end.
func (g *ArrayGroup) Remove(index int) {
	g.form.mutate(func() {
		n := len(g.itemsLocked())
		if index < 0 || index >= n {
			return
		}
		for i := index; i < n-1; i++ {
			src, ok := g.form.reg.fields[keytree.ItemName(g.name, i+1)]
			if !ok {
				continue
			}
			moved := *src
			moved.Name = keytree.ItemName(g.name, i)
			g.form.reg.fields[moved.Name] = &moved
		}
		g.form.reg.Delete(keytree.ItemName(g.name, n-1))
	})
}
