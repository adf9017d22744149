// Package profile holds the tunnel profile records handled by the jsonio
// command and example.
package profile

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/rawbytedev/jsonio"
	"github.com/rawbytedev/jsonio/pkg/scan"
	"github.com/rawbytedev/jsonio/pkg/strview"
)

// Mode selects how a tunnel reaches its peers.
type Mode uint8

const (
	ModeDirect Mode = iota
	ModeRelay
	ModeMesh
)

var modes = jsonio.EnumTable[Mode]{
	{Value: ModeDirect, Name: "direct"},
	{Value: ModeRelay, Name: "relay"},
	{Value: ModeMesh, Name: "mesh"},
}

func (Mode) JSONEnum() jsonio.EnumMapper[Mode] { return modes }

func (m Mode) String() string {
	if name, ok := modes.Name(m); ok {
		return name
	}
	return "unknown"
}

// Perm is a set of access rights, written as a flag list.
type Perm uint8

const (
	PermRead Perm = 1 << iota
	PermWrite
	PermExec
)

var Perms = jsonio.FlagTable[Perm]{
	{Name: "READ", Mask: PermRead},
	{Name: "WRITE", Mask: PermWrite},
	{Name: "EXEC", Mask: PermExec},
}

// Port is a named integer type, mapped through the generic Uint codec.
type Port uint16

// Options are independent switches, written as an object of 0/1 members.
type Options struct {
	Compress  bool
	KeepAlive bool
	Verbose   bool
}

func (o *Options) mapBits(b jsonio.Bits) {
	jsonio.Flag(b, "compress", &o.Compress)
	jsonio.Flag(b, "keepalive", &o.KeepAlive)
	jsonio.Flag(b, "verbose", &o.Verbose)
}

// UUID carries a uuid.UUID as its canonical text form.
type UUID struct{}

func (UUID) ReadJSONText(s strview.View, v *uuid.UUID) error {
	id, err := uuid.ParseBytes(s.Bytes())
	if err != nil {
		return errors.Wrap(scan.Errorf(scan.ErrUnexpectedChar, s), err.Error())
	}
	*v = id
	return nil
}

func (UUID) AppendJSONText(dst []byte, v uuid.UUID) []byte {
	return append(dst, v.String()...)
}

type Peer struct {
	Host   string
	Port   Port
	Weight int8
	Tags   []string
}

func (p *Peer) MapJSON(m *jsonio.Map) {
	jsonio.Required(m, "host", &p.Host)
	jsonio.FieldWith(m, "port", &p.Port, jsonio.Uint[Port]{})
	jsonio.Field(m, "weight", &p.Weight)
	jsonio.Slice(m, "tags", &p.Tags)
}

// Limits has no methods of its own; LimitsMapper describes it.
type Limits struct {
	MaxConns uint32
	IdleSecs int32
}

type LimitsMapper struct{}

func (LimitsMapper) MapJSON(m *jsonio.Map, l *Limits) {
	jsonio.Field(m, "max_conns", &l.MaxConns)
	jsonio.Field(m, "idle_secs", &l.IdleSecs)
}

type Profile struct {
	ID         uuid.UUID
	Name       string
	Mode       Mode
	Port       Port
	Perm       Perm
	Options    Options
	SessionKey [16]byte
	Secret     []byte
	Limits     Limits
	Peers      []Peer
	Tags       []string
	// Comment borrows from the decoded document, escapes included.
	Comment strview.View
	Retries uint8
	Region  string
}

func (p *Profile) MapJSON(m *jsonio.Map) {
	jsonio.FieldWith(m, "id", &p.ID, UUID{})
	jsonio.Required(m, "name", &p.Name)
	jsonio.Field(m, "mode", &p.Mode)
	jsonio.FieldWith(m, "port", &p.Port, jsonio.Uint[Port]{})
	jsonio.FlagSet(m, "perm", &p.Perm, Perms)
	jsonio.BitFields(m, "options", p.Options.mapBits)
	jsonio.Bin(m, "session_key", p.SessionKey[:])
	jsonio.Blob(m, "secret", &p.Secret)
	jsonio.FieldWith(m, "limits", &p.Limits, LimitsMapper{})
	jsonio.Slice(m, "peers", &p.Peers)
	jsonio.Slice(m, "tags", &p.Tags)
	jsonio.Field(m, "comment", &p.Comment)
	jsonio.Object(m, "retry", func(m *jsonio.Map) {
		jsonio.Field(m, "count", &p.Retries)
		jsonio.Field(m, "region", &p.Region)
	})
	if m.Decoding() {
		if err := p.Validate(); err != nil {
			m.Fail(err)
		}
	}
}

var (
	ErrNoName       = errors.New("profile has no name")
	ErrPortRequired = errors.New("relay profile needs a port")
)

// Validate checks constraints that span fields.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return ErrNoName
	}
	if p.Mode == ModeRelay && p.Port == 0 {
		return errors.Wrapf(ErrPortRequired, "profile %q", p.Name)
	}
	return nil
}

// Decode parses a profile document, rejecting it if any part is malformed.
func Decode(doc []byte) (*Profile, error) {
	p := &Profile{}
	if err := jsonio.UnmarshalStrict(doc, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Encode writes p in canonical form.
func (p *Profile) Encode() ([]byte, error) {
	return jsonio.Marshal(p)
}
