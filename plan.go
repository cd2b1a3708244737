package dupe

import (
	"go/token"
	"reflect"
	"sync"
	"unsafe"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the field-level override tag with sentinel
	sentinel.Tag("clone")
}

// tagMerge keeps a field's Defaults through ReplaceCollections.
const tagMerge = "merge"

// reconstructPlan describes how to prepare a fresh instance of one type.
// Plans are immutable and shared across Duplicators.
type reconstructPlan struct {
	typeName  string
	indirect  bool     // T is a pointer; the instance is its element
	defaulter bool     // the instance implements Defaulter
	resetSelf bool     // the instance itself is a map or slice
	resets    [][]int  // reference-typed field paths, FieldByIndex order
	names     []string // field names matching resets
}

// planKey identifies a plan: the same type read through different tag keys
// skips different fields.
type planKey struct {
	typ    reflect.Type
	tagKey string
}

var (
	planCache   = make(map[planKey]*reconstructPlan)
	planCacheMu sync.RWMutex

	defaulterType = reflect.TypeFor[Defaulter]()
)

// getOrBuildPlan returns the cached plan for t under tagKey, building it on
// first use.
func getOrBuildPlan(t reflect.Type, tagKey string) *reconstructPlan {
	key := planKey{typ: t, tagKey: tagKey}

	planCacheMu.RLock()
	if plan, ok := planCache[key]; ok {
		planCacheMu.RUnlock()
		return plan
	}
	planCacheMu.RUnlock()

	plan := buildPlan(t, tagKey)

	planCacheMu.Lock()
	defer planCacheMu.Unlock()
	if cached, ok := planCache[key]; ok {
		return cached
	}
	planCache[key] = plan
	return plan
}

// buildPlan scans t for fields a ReplaceCollections reset must clear. Fields
// the codec skips through tagKey are never decoded, so they keep their
// defaults.
func buildPlan(t reflect.Type, tagKey string) *reconstructPlan {
	plan := &reconstructPlan{typeName: t.String()}

	target := t
	if t.Kind() == reflect.Pointer {
		plan.indirect = true
		target = t.Elem()
	}
	plan.defaulter = reflect.PointerTo(target).Implements(defaulterType)

	switch target.Kind() {
	case reflect.Map, reflect.Slice:
		plan.resetSelf = true
	case reflect.Struct:
		collectResets(plan, target, tagKey, nil, "")
	}
	return plan
}

// collectResets records reference-typed fields of a struct, recursing into
// nested struct values. Pointer fields are reset as a whole, so recursion
// never follows them and recursive types terminate.
//
// Unexported embedded structs are recursed into because encoders promote
// their exported fields; unexported embedded pointers are left alone since
// decoders cannot allocate them.
func collectResets(plan *reconstructPlan, rt reflect.Type, tagKey string, parentIndex []int, namePrefix string) {
	for _, field := range structFields(rt) {
		sf := rt.FieldByIndex(field.Index)
		if sf.Tag.Get(tagKey) == "-" || field.Tags["clone"] == tagMerge {
			continue
		}
		if !token.IsExported(field.Name) && !(sf.Anonymous && sf.Type.Kind() == reflect.Struct) {
			continue
		}

		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		switch field.Kind {
		case sentinel.KindStruct:
			collectResets(plan, field.ReflectType, tagKey, fullIndex, fullName)
		case sentinel.KindSlice:
			// arrays are values, only slices share backing storage
			if field.ReflectType.Kind() != reflect.Slice {
				continue
			}
			plan.resets = append(plan.resets, fullIndex)
			plan.names = append(plan.names, fullName)
		case sentinel.KindPointer, sentinel.KindMap, sentinel.KindInterface:
			plan.resets = append(plan.resets, fullIndex)
			plan.names = append(plan.names, fullName)
		}
	}
}

// structFields returns field metadata for rt, preferring sentinel's cache.
// Unexported embedded structs missing from the cached metadata are added.
func structFields(rt reflect.Type) []sentinel.FieldMetadata {
	var fields []sentinel.FieldMetadata
	if meta, ok := sentinel.Lookup(rt.String()); ok && meta.PackageName == rt.PkgPath() {
		fields = append(fields, meta.Fields...)
	}
	known := make(map[string]bool, len(fields))
	for _, fm := range fields {
		known[fm.Name] = true
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if known[sf.Name] {
			continue
		}
		if !sf.IsExported() && !(sf.Anonymous && sf.Type.Kind() == reflect.Struct) {
			continue
		}
		fields = append(fields, fieldMetadata(sf))
	}
	return fields
}

// fieldMetadata describes sf the way sentinel does.
func fieldMetadata(sf reflect.StructField) sentinel.FieldMetadata {
	fm := sentinel.FieldMetadata{
		Name:        sf.Name,
		Type:        sf.Type.String(),
		ReflectType: sf.Type,
		Index:       sf.Index,
		Tags:        map[string]string{},
	}
	if val, ok := sf.Tag.Lookup("clone"); ok {
		fm.Tags["clone"] = val
	}

	switch sf.Type.Kind() {
	case reflect.Struct:
		fm.Kind = sentinel.KindStruct
	case reflect.Ptr:
		fm.Kind = sentinel.KindPointer
	case reflect.Slice, reflect.Array:
		fm.Kind = sentinel.KindSlice
	case reflect.Map:
		fm.Kind = sentinel.KindMap
	case reflect.Interface:
		fm.Kind = sentinel.KindInterface
	default:
		fm.Kind = sentinel.KindScalar
	}
	return fm
}

// construct prepares the value a decode writes into. When the type has a
// Defaulter, out (or its freshly allocated element when T is a pointer) gets
// Defaults applied and, if replace is set, its reference fields reset.
func (plan *reconstructPlan) construct(out reflect.Value, replace bool) {
	if !plan.defaulter {
		return
	}

	target := out
	if plan.indirect {
		out.Set(reflect.New(out.Type().Elem()))
		target = out.Elem()
	}
	target.Addr().Interface().(Defaulter).Defaults()

	if !replace {
		return
	}
	if plan.resetSelf {
		target.Set(reflect.Zero(target.Type()))
		return
	}
	for _, idx := range plan.resets {
		field := target.FieldByIndex(idx)
		if !field.CanSet() {
			// reached through an unexported embedded struct
			field = reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem()
		}
		field.Set(reflect.Zero(field.Type()))
	}
}
