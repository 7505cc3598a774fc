package goform

import (
	"github.com/davecgh/go-spew/spew"
)

// DumpString renders every stored record in name order for debugging.
func (f *Form) DumpString() string {
	f.mu.Lock()
	recs := make([]FieldRecord, 0, f.reg.Len())
	for _, name := range f.reg.Names() {
		rec, _ := f.reg.Get(name)
		recs = append(recs, rec)
	}
	f.mu.Unlock()
	return spew.Sdump(recs)
}
