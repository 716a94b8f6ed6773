package types

import (
	"strings"
)

// MemberAttributes carries the declared flags of a field or constructor. The
// low nibble is the accessibility class; the remaining bits are independent
// modifier flags. Values follow the ECMA-335 member-attribute encoding.
type MemberAttributes uint16

const (
	// Accessibility classes (mutually exclusive, masked by AccessMask).
	PrivateScope MemberAttributes = 0x0 // Not referenceable outside the member's own body.
	Private      MemberAttributes = 0x1
	FamAndAssem  MemberAttributes = 0x2
	Assembly     MemberAttributes = 0x3
	Family       MemberAttributes = 0x4
	FamOrAssem   MemberAttributes = 0x5
	Public       MemberAttributes = 0x6
	AccessMask   MemberAttributes = 0x7

	// Modifier flags.
	Static        MemberAttributes = 0x10
	Final         MemberAttributes = 0x20
	Virtual       MemberAttributes = 0x40
	HideBySig     MemberAttributes = 0x80
	SpecialName   MemberAttributes = 0x800
	RTSpecialName MemberAttributes = 0x1000
)

// Access returns the accessibility class of the attributes.
func (a MemberAttributes) Access() MemberAttributes {
	return a & AccessMask
}

// accessString names the accessibility class.
func (a MemberAttributes) accessString() string {
	switch a.Access() {
	case PrivateScope:
		return "privatescope"
	case Private:
		return "private"
	case FamAndAssem:
		return "famandassem"
	case Assembly:
		return "assembly"
	case Family:
		return "family"
	case FamOrAssem:
		return "famorassem"
	case Public:
		return "public"
	default:
		return "unknown"
	}
}

// String returns the attribute flags in declaration order, e.g.
// "public static specialname".
func (a MemberAttributes) String() string {
	parts := []string{a.accessString()}
	if a&Static != 0 {
		parts = append(parts, "static")
	}
	if a&Final != 0 {
		parts = append(parts, "final")
	}
	if a&Virtual != 0 {
		parts = append(parts, "virtual")
	}
	if a&HideBySig != 0 {
		parts = append(parts, "hidebysig")
	}
	if a&SpecialName != 0 {
		parts = append(parts, "specialname")
	}
	if a&RTSpecialName != 0 {
		parts = append(parts, "rtspecialname")
	}
	return strings.Join(parts, " ")
}

// AccessibleToSubclass reports whether a member with these attributes can be
// reached from a derived type. PrivateScope and Private both block derived
// access; every wider class permits it.
func (a MemberAttributes) AccessibleToSubclass() bool {
	switch a.Access() {
	case PrivateScope, Private:
		return false
	default:
		return true
	}
}

// TypeAttributes carries a type definition's declared flags.
type TypeAttributes uint32

const (
	NotPublic     TypeAttributes = 0x0
	TypePublic    TypeAttributes = 0x1
	TypeInterface TypeAttributes = 0x20
	Abstract      TypeAttributes = 0x80
	Sealed        TypeAttributes = 0x100
)

// IsInterface reports whether the attributes describe an interface kind.
func (a TypeAttributes) IsInterface() bool {
	return a&TypeInterface != 0
}

func (a TypeAttributes) String() string {
	var parts []string
	if a&TypePublic != 0 {
		parts = append(parts, "public")
	}
	if a&TypeInterface != 0 {
		parts = append(parts, "interface")
	} else {
		parts = append(parts, "class")
	}
	if a&Abstract != 0 {
		parts = append(parts, "abstract")
	}
	if a&Sealed != 0 {
		parts = append(parts, "sealed")
	}
	return strings.Join(parts, " ")
}

// CallingConvention describes how a constructor expects to be invoked.
type CallingConvention uint8

const (
	Standard CallingConvention = 0x1
	VarArgs  CallingConvention = 0x2
	HasThis  CallingConvention = 0x20
)

func (c CallingConvention) String() string {
	var parts []string
	if c&HasThis != 0 {
		parts = append(parts, "hasthis")
	}
	if c&VarArgs != 0 {
		parts = append(parts, "varargs")
	} else {
		parts = append(parts, "standard")
	}
	return strings.Join(parts, " ")
}
