package ecs

import "github.com/milk9111/topdown/ecs/component"

// World owns entities, their component stores and the per-tick event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires its handle. It
// returns false when e was already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.remove(e)
	}
	return w.entities.destroy(e)
}

func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities in slot order.
func (w *World) Entities() []Entity {
	return w.entities.all()
}

func (w *World) Events() *EventQueue {
	return &w.events
}

func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	store, ok := w.stores[kind.ID()]
	return ok && store.has(e)
}

func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	store, ok := w.stores[kind.ID()]
	return ok && store.remove(e)
}

// First returns any live entity carrying kind. Useful for singletons such as
// the player or the camera.
func (w *World) First(kind component.Kind) (Entity, bool) {
	store, ok := w.stores[kind.ID()]
	if !ok {
		return 0, false
	}
	for _, e := range store.entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Query returns the live entities that carry every kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if len(kinds) == 0 {
		return nil
	}
	stores := make([]componentStore, 0, len(kinds))
	for _, kind := range kinds {
		store, ok := w.stores[kind.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, store)
	}
	smallest := stores[0]
	for _, store := range stores[1:] {
		if store.len() < smallest.len() {
			smallest = store
		}
	}

	var out []Entity
	for _, e := range smallest.entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		all := true
		for _, store := range stores {
			if !store.has(e) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	return out
}
