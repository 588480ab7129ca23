package traits

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotStruct indicates a member lookup on a non-struct type.
	ErrNotStruct = errors.New("traits: not a struct type")
	// ErrNoSuchMember indicates a field name absent from the struct.
	ErrNoSuchMember = errors.New("traits: no such member")
)

// Member decomposes a data-member declaration: it names a field of a
// struct type and exposes the owning type and the member's declared type.
type Member struct {
	owner reflect.Type
	field reflect.StructField
}

// MemberOf looks up the named field of struct type S.
//
//	type Point struct{ X, Y int }
//	m, err := traits.MemberOf[Point]("X")
//	m.Owner() // Point
//	m.Type()  // int
func MemberOf[S any](name string) (Member, error) {
	owner := reflect.TypeFor[S]()
	if owner.Kind() != reflect.Struct {
		return Member{}, fmt.Errorf("%w: %v", ErrNotStruct, owner)
	}
	field, ok := owner.FieldByName(name)
	if !ok {
		return Member{}, fmt.Errorf("%w: %v.%s", ErrNoSuchMember, owner, name)
	}
	return Member{owner: owner, field: field}, nil
}

// Owner returns the struct type the member belongs to.
func (m Member) Owner() reflect.Type {
	return m.owner
}

// Type returns the member's declared type.
func (m Member) Type() reflect.Type {
	return m.field.Type
}

// Name returns the member's field name.
func (m Member) Name() string {
	return m.field.Name
}

// In projects the member out of a value of its owning type, given either
// the struct value or a pointer to it (a pointer yields an addressable,
// settable result). Returns ErrNotStruct when v's type is not the owner.
func (m Member) In(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Type() != m.owner {
		return reflect.Value{}, fmt.Errorf("%w: member of %v projected from %T", ErrNotStruct, m.owner, v)
	}
	return rv.FieldByIndex(m.field.Index), nil
}

// SameOwner reports whether every given member belongs to the same owning
// struct type. It holds vacuously for zero or one member.
func SameOwner(members ...Member) bool {
	if len(members) == 0 {
		return true
	}
	for _, m := range members[1:] {
		if m.owner != members[0].owner {
			return false
		}
	}
	return true
}
