package item

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/osse101/ItemRegistry_Go/internal/domain"
	"github.com/osse101/ItemRegistry_Go/internal/metrics"
)

// Registry holds one item record per id.
//
// Records are iterated in ascending id order. Writers replace a record by
// swapping its pointer, so a *domain.Item handed out earlier stays consistent
// but may be stale after a reload. Callers must not modify returned records.
type Registry struct {
	mu         sync.RWMutex
	items      map[int]*domain.Item
	order      []int
	generation uint64

	// publish is false for staging registries built by Reload, so only the
	// live registry reports to the records gauge.
	publish bool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		items:   make(map[int]*domain.Item),
		publish: true,
	}
}

func newStagingRegistry() *Registry {
	return &Registry{
		items: make(map[int]*domain.Item),
	}
}

// Lookup returns the record for id if one exists
func (r *Registry) Lookup(id int) (*domain.Item, bool) {
	r.mu.RLock()
	it, ok := r.items[id]
	r.mu.RUnlock()

	recordLookup(lookupOpID, ok)
	return it, ok
}

// Exists reports whether a record for id exists
func (r *Registry) Exists(id int) bool {
	_, ok := r.Lookup(id)
	return ok
}

// GetOrCreate returns the record for id, creating a default one on first use
func (r *Registry) GetOrCreate(id int) *domain.Item {
	r.mu.RLock()
	it, ok := r.items[id]
	r.mu.RUnlock()
	if ok {
		metrics.ItemDBLookups.WithLabelValues(lookupOpGetOrCreate, lookupHit).Inc()
		return it
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another writer may have created it between the two locks.
	if it, ok := r.items[id]; ok {
		metrics.ItemDBLookups.WithLabelValues(lookupOpGetOrCreate, lookupHit).Inc()
		return it
	}

	it = defaultItem(id)
	r.insertLocked(it)
	metrics.ItemDBLookups.WithLabelValues(lookupOpGetOrCreate, lookupCreated).Inc()
	return it
}

// SearchByAlias returns the first record, in id order, whose alias is name.
// This is a linear scan; aliases are not unique and not indexed. The empty
// alias matches records created by GetOrCreate.
func (r *Registry) SearchByAlias(name string) (*domain.Item, bool) {
	if len(name) > domain.ItemNameMaxLen {
		recordLookup(lookupOpAlias, false)
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if it := r.items[id]; it.Alias == name {
			recordLookup(lookupOpAlias, true)
			return it, true
		}
	}
	recordLookup(lookupOpAlias, false)
	return nil, false
}

// Store makes it the record for it.ID, releasing the scripts of the record it
// replaces. The registry takes ownership of it and its scripts.
func (r *Registry) Store(it *domain.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.items[it.ID]; ok {
		releaseReplaced(old, it)
		r.items[it.ID] = it
		r.generation++
		return
	}
	r.insertLocked(it)
}

// Clear releases every record's scripts and empties the registry
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		releaseReplaced(it, nil)
	}
	slog.Debug(LogMsgRegistryClear, "records", len(r.items))
	r.items = make(map[int]*domain.Item)
	r.order = nil
	r.generation++
	r.publishLenLocked()
}

// Len returns the number of records
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// All returns every record in id order
func (r *Registry) All() []*domain.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Item, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

// Generation changes every time the registry content changes
func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}

// ClassOf returns the stored class of id, or its fallback class when the id
// is undefined. Nothing is created.
func (r *Registry) ClassOf(id int) (domain.ItemClass, bool) {
	r.mu.RLock()
	it, ok := r.items[id]
	r.mu.RUnlock()
	if !ok {
		return Classify(id), false
	}
	return it.Class, true
}

// IsEquipment reports whether id names an equippable item
func (r *Registry) IsEquipment(id int) bool {
	class, _ := r.ClassOf(id)
	return IsEquipmentClass(class)
}

// IsWearable reports whether id names a weapon, armor or other worn item
func (r *Registry) IsWearable(id int) bool {
	class, _ := r.ClassOf(id)
	return IsWearableClass(class)
}

// Class returns the class of id, creating a default record if needed
func (r *Registry) Class(id int) domain.ItemClass {
	return r.GetOrCreate(id).Class
}

// Weight returns the weight of id, creating a default record if needed
func (r *Registry) Weight(id int) int {
	return r.GetOrCreate(id).Weight
}

// Look returns the look of id, creating a default record if needed
func (r *Registry) Look(id int) int {
	return r.GetOrCreate(id).Look
}

// BuyPrice returns the buy price of id, creating a default record if needed
func (r *Registry) BuyPrice(id int) int {
	return r.GetOrCreate(id).BuyPrice
}

// SellPrice returns the sell price of id, creating a default record if needed
func (r *Registry) SellPrice(id int) int {
	return r.GetOrCreate(id).SellPrice
}

// replaceWith moves every record of next into r, releasing the scripts of
// records r held before. next must not be used afterwards.
func (r *Registry) replaceWith(next *Registry) {
	next.mu.Lock()
	items, order := next.items, next.order
	next.items, next.order = make(map[int]*domain.Item), nil
	next.mu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, old := range r.items {
		releaseReplaced(old, items[id])
	}
	r.items = items
	r.order = order
	r.generation++
	r.publishLenLocked()
}

func (r *Registry) insertLocked(it *domain.Item) {
	r.items[it.ID] = it
	pos := sort.SearchInts(r.order, it.ID)
	r.order = append(r.order, 0)
	copy(r.order[pos+1:], r.order[pos:])
	r.order[pos] = it.ID
	r.generation++
	r.publishLenLocked()
}

func (r *Registry) publishLenLocked() {
	if r.publish {
		metrics.ItemDBRecords.Set(float64(len(r.items)))
	}
}

func defaultItem(id int) *domain.Item {
	return &domain.Item{
		ID:         id,
		Class:      Classify(id),
		BuyPrice:   DefaultBuyPrice,
		SellPrice:  DefaultSellPrice,
		Weight:     DefaultWeight,
		Sex:        domain.SexNeutral,
		EquipLevel: DefaultEquipLevel,
	}
}

// releaseReplaced releases the scripts old owns that next does not take over.
// The old record itself is left untouched since readers may still hold it.
func releaseReplaced(old, next *domain.Item) {
	var keepUse, keepEquip domain.Script
	if next != nil {
		keepUse, keepEquip = next.UseScript, next.EquipScript
	}
	for _, s := range []domain.Script{old.UseScript, old.EquipScript} {
		if s == nil || s == keepUse || s == keepEquip {
			continue
		}
		s.Release()
		metrics.ItemDBScriptsReleased.Inc()
	}
}

func recordLookup(op string, hit bool) {
	result := lookupMiss
	if hit {
		result = lookupHit
	}
	metrics.ItemDBLookups.WithLabelValues(op, result).Inc()
}
