// SPDX-License-Identifier: MIT
// Package: construct/member
//
// builder.go — the shared Member record, the root Builder, and its facades.
//
// Contract (strict):
//   - Exactly one Member instance per construction session; every facade
//     obtained from a root builder writes through the same pointer.
//   - Each facade mutates a disjoint field subset (address vs. job).
//   - Single-threaded by design: one writer at a time, no locking.

package member

// Member is the record accumulated across all facades of one session.
type Member struct {
	// Address fields, owned by AddressBuilder.
	StreetAddress string
	Postcode      string
	City          string

	// Employment fields, owned by JobBuilder.
	CompanyName  string
	Position     string
	AnnualIncome int
}

// Builder is the root of a construction session. Facades embed it by value,
// which copies the *Member pointer, not the record.
type Builder struct {
	member *Member
}

// NewBuilder starts a session over a fresh Member.
func NewBuilder() *Builder {
	return &Builder{member: &Member{}}
}

// Lives returns the address facade over the shared record.
func (b *Builder) Lives() *AddressBuilder {
	return &AddressBuilder{*b}
}

// Works returns the employment facade over the shared record.
func (b *Builder) Works() *JobBuilder {
	return &JobBuilder{*b}
}

// Member returns the record as accumulated so far. Callable at any point
// in the chain; there is no separate terminal build step.
func (b *Builder) Member() Member {
	return *b.member
}

// AddressBuilder mutates the address subset of the shared record.
type AddressBuilder struct {
	Builder
}

// At sets the street address.
func (a *AddressBuilder) At(street string) *AddressBuilder {
	a.member.StreetAddress = street

	return a
}

// WithPostcode sets the postal code.
func (a *AddressBuilder) WithPostcode(code string) *AddressBuilder {
	a.member.Postcode = code

	return a
}

// In sets the city.
func (a *AddressBuilder) In(city string) *AddressBuilder {
	a.member.City = city

	return a
}

// JobBuilder mutates the employment subset of the shared record.
type JobBuilder struct {
	Builder
}

// For sets the company name.
func (j *JobBuilder) For(company string) *JobBuilder {
	j.member.CompanyName = company

	return j
}

// AsA sets the position.
func (j *JobBuilder) AsA(position string) *JobBuilder {
	j.member.Position = position

	return j
}

// Earning sets the annual income.
func (j *JobBuilder) Earning(income int) *JobBuilder {
	j.member.AnnualIncome = income

	return j
}
