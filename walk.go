package dupe

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unsafe"
)

// visitState describes what the walker did with a value.
type visitState uint8

const (
	kept      visitState = iota // original value is encoded as is
	rewritten                   // a pruned copy replaces the original
	omitted                     // back-reference, the edge is dropped
)

// identity keys a reference on the current path.
// Slices include their length: two slices sharing a backing array only form
// a cycle when they describe the same window.
type identity struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// walker traverses a source graph ahead of encoding. It tracks the
// ancestors of the value being visited, never the whole graph, so shared
// references are walked once per path and only true loops count as cycles.
//
// Under CycleIgnore the walker builds a pruned copy of every value on the
// path to an omitted edge. The source is never modified.
type walker struct {
	policy    CyclePolicy
	inspector Inspector
	tagKey    string
	ancestors map[identity]struct{}
	path      []string
	omitted   []string
}

func newWalker(policy CyclePolicy, in Inspector) *walker {
	return &walker{
		policy:    policy,
		inspector: in,
		tagKey:    in.TagKey(),
		ancestors: make(map[identity]struct{}),
	}
}

// prepare walks v and returns the value to hand to the codec.
func (w *walker) prepare(v reflect.Value) (reflect.Value, error) {
	out, state, err := w.visit(v)
	if err != nil {
		return reflect.Value{}, err
	}
	if state == rewritten {
		return out, nil
	}
	return v, nil
}

func (w *walker) visit(v reflect.Value) (reflect.Value, visitState, error) {
	if !v.IsValid() {
		return v, kept, nil
	}

	t := v.Type()
	if w.inspector.SelfEncoding(t) {
		return v, kept, nil
	}
	if unsupportedKind(t.Kind()) || w.inspector.Unsupported(t) {
		return v, kept, &UnsupportedShapeError{Path: w.pathString(), Type: t}
	}

	switch v.Kind() {
	case reflect.Pointer:
		return w.visitPointer(v)
	case reflect.Interface:
		return w.visitInterface(v)
	case reflect.Map:
		return w.visitMap(v)
	case reflect.Slice:
		return w.visitSlice(v)
	case reflect.Array:
		return w.visitArray(v)
	case reflect.Struct:
		return w.visitStruct(v)
	}
	return v, kept, nil
}

func (w *walker) visitPointer(v reflect.Value) (reflect.Value, visitState, error) {
	if v.IsNil() {
		return v, kept, nil
	}

	id := identity{ptr: v.Pointer(), typ: v.Type()}
	if state, err := w.enter(id); state != kept || err != nil {
		return v, state, err
	}
	defer w.leave(id)

	elem, state, err := w.visit(v.Elem())
	if err != nil || state == kept {
		return v, kept, err
	}

	p := reflect.New(v.Type().Elem())
	if state == rewritten {
		p.Elem().Set(elem)
	}
	return p, rewritten, nil
}

// visitInterface propagates an omitted edge to the holder, so a map entry or
// slice element whose dynamic value loops back is dropped entirely.
func (w *walker) visitInterface(v reflect.Value) (reflect.Value, visitState, error) {
	if v.IsNil() {
		return v, kept, nil
	}

	inner, state, err := w.visit(v.Elem())
	if err != nil || state != rewritten {
		return v, state, err
	}

	out := reflect.New(v.Type()).Elem()
	out.Set(inner)
	return out, rewritten, nil
}

func (w *walker) visitMap(v reflect.Value) (reflect.Value, visitState, error) {
	if v.IsNil() || v.Len() == 0 || scalar(v.Type().Elem()) {
		return v, kept, nil
	}

	id := identity{ptr: v.Pointer(), typ: v.Type()}
	if state, err := w.enter(id); state != kept || err != nil {
		return v, state, err
	}
	defer w.leave(id)

	type change struct {
		key   reflect.Value
		val   reflect.Value
		state visitState
	}
	var changes []change

	iter := v.MapRange()
	for iter.Next() {
		k := iter.Key()
		w.push(fmt.Sprintf("[%v]", k))
		val, state, err := w.visit(iter.Value())
		w.pop()
		if err != nil {
			return v, kept, err
		}
		if state != kept {
			changes = append(changes, change{key: k, val: val, state: state})
		}
	}
	if len(changes) == 0 {
		return v, kept, nil
	}

	out := reflect.MakeMapWithSize(v.Type(), v.Len())
	iter = v.MapRange()
	for iter.Next() {
		out.SetMapIndex(iter.Key(), iter.Value())
	}
	for _, c := range changes {
		if c.state == omitted {
			out.SetMapIndex(c.key, reflect.Value{})
			continue
		}
		out.SetMapIndex(c.key, c.val)
	}
	return out, rewritten, nil
}

// visitSlice drops omitted elements, shortening the copy.
func (w *walker) visitSlice(v reflect.Value) (reflect.Value, visitState, error) {
	if v.IsNil() || v.Len() == 0 || scalar(v.Type().Elem()) {
		return v, kept, nil
	}

	id := identity{ptr: v.Pointer(), typ: v.Type(), len: v.Len()}
	if state, err := w.enter(id); state != kept || err != nil {
		return v, state, err
	}
	defer w.leave(id)

	n := v.Len()
	var (
		states []visitState
		repl   []reflect.Value
	)
	for i := 0; i < n; i++ {
		w.push("[" + strconv.Itoa(i) + "]")
		val, state, err := w.visit(v.Index(i))
		w.pop()
		if err != nil {
			return v, kept, err
		}
		if state == kept {
			continue
		}
		if states == nil {
			states = make([]visitState, n)
			repl = make([]reflect.Value, n)
		}
		states[i] = state
		repl[i] = val
	}
	if states == nil {
		return v, kept, nil
	}

	out := reflect.MakeSlice(v.Type(), 0, n)
	for i := 0; i < n; i++ {
		switch states[i] {
		case omitted:
			continue
		case rewritten:
			out = reflect.Append(out, repl[i])
		default:
			out = reflect.Append(out, v.Index(i))
		}
	}
	return out, rewritten, nil
}

// visitArray zeroes omitted elements; arrays cannot shrink.
func (w *walker) visitArray(v reflect.Value) (reflect.Value, visitState, error) {
	if v.Len() == 0 || scalar(v.Type().Elem()) {
		return v, kept, nil
	}

	var out reflect.Value
	for i := 0; i < v.Len(); i++ {
		w.push("[" + strconv.Itoa(i) + "]")
		val, state, err := w.visit(v.Index(i))
		w.pop()
		if err != nil {
			return v, kept, err
		}
		if state == kept {
			continue
		}
		if !out.IsValid() {
			out = reflect.New(v.Type()).Elem()
			out.Set(v)
		}
		if state == omitted {
			out.Index(i).Set(reflect.Zero(v.Type().Elem()))
		} else {
			out.Index(i).Set(val)
		}
	}
	if !out.IsValid() {
		return v, kept, nil
	}
	return out, rewritten, nil
}

// visitStruct walks the fields the codec sees: exported fields not skipped
// by the tag key, and unexported embedded structs whose exported fields are
// promoted. A rewritten struct starts as a shallow copy of the original, so
// unexported state travels with it.
func (w *walker) visitStruct(v reflect.Value) (reflect.Value, visitState, error) {
	t := v.Type()

	var out reflect.Value
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Tag.Get(w.tagKey) == "-" {
			continue
		}
		promoted := !sf.IsExported() && embeddedStruct(sf)
		if !sf.IsExported() && !promoted {
			continue
		}

		field := v.Field(i)
		if promoted {
			if !v.CanAddr() {
				c := reflect.New(t).Elem()
				c.Set(v)
				v = c
			}
			field = settable(v.Field(i))
		}

		flat := sf.Anonymous && sf.Tag.Get(w.tagKey) == ""
		if !flat {
			w.push(sf.Name)
		}
		val, state, err := w.visit(field)
		if !flat {
			w.pop()
		}
		if err != nil {
			return v, kept, err
		}
		if state == kept {
			continue
		}
		if !out.IsValid() {
			out = reflect.New(t).Elem()
			out.Set(v)
		}
		dst := out.Field(i)
		if promoted {
			dst = settable(dst)
		}
		if state == omitted {
			dst.Set(reflect.Zero(sf.Type))
		} else {
			dst.Set(val)
		}
	}
	if !out.IsValid() {
		return v, kept, nil
	}
	return out, rewritten, nil
}

// embeddedStruct reports anonymous struct or pointer-to-struct fields, whose
// exported fields encoders promote even when the embedded type is unexported.
func embeddedStruct(sf reflect.StructField) bool {
	if !sf.Anonymous {
		return false
	}
	t := sf.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// settable returns an addressable field of an unexported embedded struct
// without the read-only flag reflect attaches to it.
func settable(f reflect.Value) reflect.Value {
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}

// enter records id as an ancestor. A repeat visit is a back-reference and is
// either omitted or reported depending on the policy.
func (w *walker) enter(id identity) (visitState, error) {
	if _, ok := w.ancestors[id]; !ok {
		w.ancestors[id] = struct{}{}
		return kept, nil
	}
	if w.policy == CycleIgnore {
		w.omitted = append(w.omitted, w.pathString())
		return omitted, nil
	}
	return kept, &CyclicReferenceError{Path: w.pathString(), Type: id.typ}
}

func (w *walker) leave(id identity) {
	delete(w.ancestors, id)
}

func (w *walker) push(segment string) {
	w.path = append(w.path, segment)
}

func (w *walker) pop() {
	w.path = w.path[:len(w.path)-1]
}

// pathString renders the current path as Field.Sub[2][key].
func (w *walker) pathString() string {
	var b strings.Builder
	for i, seg := range w.path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// unsupportedKind reports kinds no textual or binary codec can represent.
func unsupportedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// scalar reports element types that hold no references and need no walk.
func scalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
