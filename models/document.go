// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Kind identifies which JSON variant a [Value] holds.
type Kind uint8

const (
	// KindNull is the JSON null literal. It is the zero Kind, so the zero
	// [Value] is a valid null.
	KindNull Kind = iota

	// KindBool is a JSON true or false literal.
	KindBool

	// KindNumber is a JSON number kept as its literal text.
	KindNumber

	// KindString is a JSON string.
	KindString

	// KindArray is an ordered JSON array.
	KindArray

	// KindObject is a JSON object with members kept in document order.
	KindObject
)

// String returns the JSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value pair of a JSON object.
type Member struct {
	Key   string
	Value Value
}

// Value is a loosely typed JSON document node used to carry settings files
// through the sync pipeline without imposing a schema on them.
//
// Objects keep their members in the order they were read so that the
// re-serialized settings produce stable diffs in the dotfiles repository.
// Numbers keep their literal text, so a load/save round trip never alters
// numeric precision.
//
// Value is a plain struct: copying it shares the underlying slices. Use
// [Value.Clone] when an independent copy is required.
type Value struct {
	kind    Kind
	boolean bool
	text    string
	items   []Value
	members []Member
}

// Null returns a JSON null value.
func Null() Value {
	return Value{}
}

// Bool returns a JSON boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Number returns a JSON number value holding the literal n.
func Number(n json.Number) Value {
	return Value{kind: KindNumber, text: n.String()}
}

// String returns a JSON string value.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Array returns a JSON array holding items in order.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

// Object returns a JSON object holding members in order. Later members with
// a key already present replace the earlier value in its original position.
func Object(members ...Member) Value {
	obj := Value{kind: KindObject, members: make([]Member, 0, len(members))}
	for _, m := range members {
		obj.Set(m.Key, m.Value)
	}
	return obj
}

// Kind reports which JSON variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// AsBool returns the boolean held by v and whether v is a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// AsNumber returns the number literal held by v and whether v is a number.
func (v Value) AsNumber() (json.Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return json.Number(v.text), true
}

// AsString returns the string held by v and whether v is a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// Len returns the number of array items or object members, and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Items returns the items of an array. The returned slice aliases v.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.items
}

// SetItem replaces the i-th array item. It reports false when v is not an
// array or i is out of range.
func (v Value) SetItem(i int, item Value) bool {
	if v.kind != KindArray || i < 0 || i >= len(v.items) {
		return false
	}
	v.items[i] = item
	return true
}

// Members returns the members of an object in document order. The returned
// slice aliases v.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.members
}

// Keys returns the member keys of an object in document order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.members))
	for _, m := range v.members {
		keys = append(keys, m.Key)
	}
	return keys
}

// Get returns the value stored under key and whether it exists.
func (v Value) Get(key string) (Value, bool) {
	if i := v.indexOf(key); i >= 0 {
		return v.members[i].Value, true
	}
	return Value{}, false
}

// Set stores val under key, keeping the position of an existing key and
// appending new keys. It reports false when v is not an object.
func (v *Value) Set(key string, val Value) bool {
	if v.kind != KindObject {
		return false
	}
	if i := v.indexOf(key); i >= 0 {
		v.members[i].Value = val
		return true
	}
	v.members = append(v.members, Member{Key: key, Value: val})
	return true
}

func (v Value) indexOf(key string) int {
	if v.kind != KindObject {
		return -1
	}
	for i, m := range v.members {
		if m.Key == key {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of v that shares no memory with it.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = item.Clone()
		}
		return Value{kind: KindArray, items: items}
	case KindObject:
		members := make([]Member, len(v.members))
		for i, m := range v.members {
			members[i] = Member{Key: m.Key, Value: m.Value.Clone()}
		}
		return Value{kind: KindObject, members: members}
	default:
		return v
	}
}

// Equal reports whether a and b hold the same JSON document. Objects compare
// by key set regardless of member order; arrays compare element-wise in order;
// numbers compare by literal text.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindNumber, KindString:
		return a.text == b.text
	case KindArray:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.members) != len(b.members) {
			return false
		}
		for _, m := range a.members {
			other, ok := b.Get(m.Key)
			if !ok || !Equal(m.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
