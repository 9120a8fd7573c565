// Package member implements the faceted Builder: one mutable Member record
// shared by reference between a root builder and narrow facade builders,
// each mutating only its own field subset.
//
// Facades embed the root Builder value, so the handle returned by any facade
// method still exposes Lives, Works, and Member — switching facades
// mid-chain is legal and every facade writes through the same *Member:
//
//	m := member.NewBuilder().
//		Lives().At("22B Baker St").In("London").
//		Works().For("Acme").AsA("Engineer").Earning(120000).
//		Member()
//
// There is no terminal build step: Member() reads the shared record
// directly and may be called at any point in the chain.
package member
