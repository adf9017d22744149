package jsonio

import (
	"strings"

	"github.com/rawbytedev/jsonio/pkg/strview"
)

type color uint8

const (
	red color = iota
	green
	blue
)

var colors = EnumTable[color]{{red, "red"}, {green, "green"}, {blue, "blue"}}

func (color) JSONEnum() EnumMapper[color] { return colors }

type point struct {
	X, Y int32
}

func (p *point) MapJSON(m *Map) {
	Field(m, "x", &p.X)
	Field(m, "y", &p.Y)
}

const (
	permRead uint8 = 1 << iota
	permWrite
	permExec
)

var perms = FlagTable[uint8]{
	{Name: "READ", Mask: permRead},
	{Name: "WRITE", Mask: permWrite},
	{Name: "EXEC", Mask: permExec},
}

type shape struct {
	Name   string
	Color  color
	Points []point
	Tags   []string
	Perm   uint8
	A, B   bool
}

func (s *shape) MapJSON(m *Map) {
	Field(m, "name", &s.Name)
	Field(m, "color", &s.Color)
	Slice(m, "points", &s.Points)
	Slice(m, "tags", &s.Tags)
	FlagSet(m, "perm", &s.Perm, perms)
	BitFields(m, "bits", func(b Bits) {
		Flag(b, "a", &s.A)
		Flag(b, "b", &s.B)
	})
	Object(m, "empty", func(*Map) {})
}

// upper stores strings as written but encodes them upper-cased.
type upper struct{}

func (upper) ReadJSONText(s strview.View, v *string) error {
	*v = s.String()
	return nil
}

func (upper) AppendJSONText(dst []byte, v string) []byte {
	return append(dst, strings.ToUpper(v)...)
}
