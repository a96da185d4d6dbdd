package models

import (
	"errors"
	"fmt"
)

// Member is a student record. It is read-only once built: fields are
// unexported and only reachable through accessors. Build one with MemberBuilder.
type Member struct {
	id             int64
	stuNo          string // business key, expected unique but not enforced
	enterYear      string
	name           string
	birthMd        string
	sustCd         string // department code
	mjrCd          string // major code
	shysCd         string // grade code
	shtmCd         string // term code
	finSchregDivCd string // enrollment status code
	cptnShtmCnt    *int   // completed term count, nil when NULL
	email          string
	gender         Gender
	address        *Address
}

func (m *Member) ID() int64              { return m.id }
func (m *Member) StuNo() string          { return m.stuNo }
func (m *Member) EnterYear() string      { return m.enterYear }
func (m *Member) Name() string           { return m.name }
func (m *Member) BirthMd() string        { return m.birthMd }
func (m *Member) SustCd() string         { return m.sustCd }
func (m *Member) MjrCd() string          { return m.mjrCd }
func (m *Member) ShysCd() string         { return m.shysCd }
func (m *Member) ShtmCd() string         { return m.shtmCd }
func (m *Member) FinSchregDivCd() string { return m.finSchregDivCd }
func (m *Member) Email() string          { return m.email }
func (m *Member) Gender() Gender         { return m.gender }

// CptnShtmCnt returns a copy so callers cannot mutate the member.
func (m *Member) CptnShtmCnt() *int {
	if m.cptnShtmCnt == nil {
		return nil
	}
	v := *m.cptnShtmCnt
	return &v
}

// Address returns a copy of the embedded address, or nil when none is stored.
func (m *Member) Address() *Address {
	if m.address == nil {
		return nil
	}
	a := *m.address
	return &a
}

// ErrInvalidMember is returned by MemberBuilder.Build for members that could
// never have come out of the members table.
var ErrInvalidMember = errors.New("invalid member")

// MemberBuilder accumulates member fields. Setters return the builder so calls chain.
type MemberBuilder struct {
	m Member
}

// NewMemberBuilder starts an empty member.
func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{}
}

func (b *MemberBuilder) ID(id int64) *MemberBuilder { b.m.id = id; return b }

func (b *MemberBuilder) StuNo(v string) *MemberBuilder { b.m.stuNo = v; return b }

func (b *MemberBuilder) EnterYear(v string) *MemberBuilder { b.m.enterYear = v; return b }

func (b *MemberBuilder) Name(v string) *MemberBuilder { b.m.name = v; return b }

func (b *MemberBuilder) BirthMd(v string) *MemberBuilder { b.m.birthMd = v; return b }

func (b *MemberBuilder) SustCd(v string) *MemberBuilder { b.m.sustCd = v; return b }

func (b *MemberBuilder) MjrCd(v string) *MemberBuilder { b.m.mjrCd = v; return b }

func (b *MemberBuilder) ShysCd(v string) *MemberBuilder { b.m.shysCd = v; return b }

func (b *MemberBuilder) ShtmCd(v string) *MemberBuilder { b.m.shtmCd = v; return b }

func (b *MemberBuilder) FinSchregDivCd(v string) *MemberBuilder { b.m.finSchregDivCd = v; return b }

func (b *MemberBuilder) Email(v string) *MemberBuilder { b.m.email = v; return b }

func (b *MemberBuilder) Gender(g Gender) *MemberBuilder { b.m.gender = g; return b }

// CptnShtmCnt sets the completed term count; nil stores NULL.
func (b *MemberBuilder) CptnShtmCnt(n *int) *MemberBuilder {
	if n == nil {
		b.m.cptnShtmCnt = nil
		return b
	}
	v := *n
	b.m.cptnShtmCnt = &v
	return b
}

// Address embeds a copy of a; nil means the member has no address.
func (b *MemberBuilder) Address(a *Address) *MemberBuilder {
	if a == nil {
		b.m.address = nil
		return b
	}
	c := *a
	b.m.address = &c
	return b
}

// Build returns the member. The identifier must be assigned (> 0) and the
// gender must be one of the declared constants; no other field is checked.
func (b *MemberBuilder) Build() (*Member, error) {
	if b.m.id <= 0 {
		return nil, fmt.Errorf("%w: id %d is not a stored identifier", ErrInvalidMember, b.m.id)
	}
	if !b.m.gender.IsValid() {
		return nil, fmt.Errorf("%w: gender %q", ErrInvalidMember, b.m.gender)
	}

	m := b.m
	return &m, nil
}
