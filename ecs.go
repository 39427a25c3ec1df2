package bossfx

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"reflect"
	"slices"
	"sync"
)

type EntityId uint64
type archetypeId uint64
type archetypeKey []componentId
type componentId uint32
type set[T comparable] = map[T]struct{}

// Ecs stores components in archetypes: one dense column per component type,
// rows shared by all columns of the archetype.
type Ecs struct {
	archetypes  map[archetypeId]*archetype
	archOrder   []archetypeId
	entityIndex map[EntityId]location

	idGeneratorLock sync.Mutex
	entityIdCounter EntityId

	componentIdCounterLock sync.Mutex
	componentIdCounter     componentId
	componentTypeIdMap     map[reflect.Type]componentId
	componentIdTypeMap     map[componentId]reflect.Type
}

type location struct {
	arch *archetype
	row  int
}

type archetype struct {
	id      archetypeId
	key     archetypeKey
	ids     []EntityId
	columns map[componentId]reflect.Value // addressable []T
}

func MakeEcs() Ecs {
	return Ecs{
		archetypes:         make(map[archetypeId]*archetype),
		entityIndex:        make(map[EntityId]location),
		componentTypeIdMap: make(map[reflect.Type]componentId),
		componentIdTypeMap: make(map[componentId]reflect.Type),
	}
}

func (ecs *Ecs) addEntity(components ...any) EntityId {
	return ecs.insertEntity(ecs.nextEntityId(), components...)
}

func (ecs *Ecs) insertEntity(entityId EntityId, components ...any) EntityId {
	arch := ecs.getOrMakeArchetype(ecs.getArchetypeKey(components...))

	r := arch.pushRow(entityId)
	for _, component := range components {
		ecs.writeComponent(arch, r, component)
	}
	ecs.entityIndex[entityId] = location{arch: arch, row: r}
	return entityId
}

func (ecs *Ecs) hasEntity(entityId EntityId) bool {
	_, ok := ecs.entityIndex[entityId]
	return ok
}

func (ecs *Ecs) removeEntity(entityId EntityId) {
	loc, ok := ecs.entityIndex[entityId]
	if !ok {
		return
	}
	ecs.dropRow(loc)
	delete(ecs.entityIndex, entityId)
}

func (ecs *Ecs) addComponents(entityId EntityId, components ...any) {
	src, ok := ecs.entityIndex[entityId]
	if !ok {
		return
	}
	dstKey := dedupAndSortArchetypeKey(append(slices.Clone(src.arch.key), ecs.getArchetypeKey(components...)...))
	dst := ecs.moveEntity(entityId, src, dstKey)
	for _, component := range components {
		ecs.writeComponent(dst.arch, dst.row, component)
	}
}

func (ecs *Ecs) removeComponents(entityId EntityId, components ...any) {
	src, ok := ecs.entityIndex[entityId]
	if !ok {
		return
	}
	drop := make(set[componentId])
	for _, id := range ecs.getArchetypeKey(components...) {
		drop[id] = struct{}{}
	}
	var dstKey archetypeKey
	for _, id := range src.arch.key {
		if _, gone := drop[id]; !gone {
			dstKey = append(dstKey, id)
		}
	}
	ecs.moveEntity(entityId, src, dstKey)
}

// moveEntity copies the columns shared by both archetypes, then frees the source row.
func (ecs *Ecs) moveEntity(entityId EntityId, src location, dstKey archetypeKey) location {
	dstArch := ecs.getOrMakeArchetype(dstKey)
	if dstArch == src.arch {
		return src
	}
	dst := location{arch: dstArch, row: dstArch.pushRow(entityId)}
	for id, col := range src.arch.columns {
		if dstCol, ok := dstArch.columns[id]; ok {
			dstCol.Index(dst.row).Set(col.Index(src.row))
		}
	}
	ecs.dropRow(src)
	ecs.entityIndex[entityId] = dst
	return dst
}

// dropRow swap-removes a row and fixes the index of the entity moved into it.
func (ecs *Ecs) dropRow(loc location) {
	arch := loc.arch
	last := len(arch.ids) - 1
	if loc.row != last {
		moved := arch.ids[last]
		arch.ids[loc.row] = moved
		for _, col := range arch.columns {
			col.Index(loc.row).Set(col.Index(last))
		}
		ecs.entityIndex[moved] = location{arch: arch, row: loc.row}
	}
	arch.ids = arch.ids[:last]
	for id, col := range arch.columns {
		col.Index(last).Set(reflect.Zero(col.Type().Elem()))
		arch.columns[id] = col.Slice(0, last)
	}
}

func (arch *archetype) pushRow(entityId EntityId) int {
	r := len(arch.ids)
	arch.ids = append(arch.ids, entityId)
	for id, col := range arch.columns {
		arch.columns[id] = reflect.Append(col, reflect.Zero(col.Type().Elem()))
	}
	return r
}

func (ecs *Ecs) writeComponent(arch *archetype, r int, component any) {
	value := reflect.ValueOf(component)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		panic(fmt.Errorf("expected component to be a struct or a pointer to a struct, got %s", value.Kind()))
	}
	arch.columns[ecs.getComponentId(value.Type())].Index(r).Set(value)
}

func (ecs *Ecs) getOrMakeArchetype(key archetypeKey) *archetype {
	id := getArchetypeId(key)
	if arch, ok := ecs.archetypes[id]; ok {
		return arch
	}

	arch := &archetype{
		id:      id,
		key:     key,
		columns: make(map[componentId]reflect.Value, len(key)),
	}
	for _, cid := range key {
		arch.columns[cid] = reflectSliceMake(ecs.componentIdTypeMap[cid])
	}
	ecs.archetypes[id] = arch
	ecs.archOrder = append(ecs.archOrder, id)
	return arch
}

// getArchetypeKey returns the sorted, deduplicated component ids of components.
func (ecs *Ecs) getArchetypeKey(components ...any) archetypeKey {
	var res archetypeKey
	for _, component := range components {
		t := reflect.TypeOf(component)
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			panic("component should be a struct")
		}
		res = append(res, ecs.getComponentId(t))
	}
	return dedupAndSortArchetypeKey(res)
}

func dedupAndSortArchetypeKey(key archetypeKey) archetypeKey {
	res := slices.Clone(key)
	slices.Sort(res)
	return slices.Compact(res)
}

func getArchetypeId(key archetypeKey) archetypeId {
	hash := fnv.New64a()
	b := make([]byte, 4)
	for _, cid := range key {
		binary.LittleEndian.PutUint32(b, uint32(cid))
		hash.Write(b)
	}
	return archetypeId(hash.Sum64())
}

func (ecs *Ecs) nextEntityId() EntityId {
	ecs.idGeneratorLock.Lock()
	defer ecs.idGeneratorLock.Unlock()

	id := ecs.entityIdCounter
	ecs.entityIdCounter++
	return id
}

func (ecs *Ecs) getComponentId(componentType reflect.Type) componentId {
	ecs.componentIdCounterLock.Lock()
	defer ecs.componentIdCounterLock.Unlock()

	if id, ok := ecs.componentTypeIdMap[componentType]; ok {
		return id
	}
	id := ecs.componentIdCounter
	ecs.componentIdCounter++
	ecs.componentTypeIdMap[componentType] = id
	ecs.componentIdTypeMap[id] = componentType
	return id
}
