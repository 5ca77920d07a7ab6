// Package fixtures provides test data factories for lmskit.
//
// # Factory Pattern
//
// Create a factory over a post store:
//
//	f := fixtures.New(store)
//
// # Creating Test Data
//
//	id := f.Membership.Create(t)                  // Default membership
//	ids := f.Membership.CreateMany(t, 3)          // Three distinct memberships
//	m := f.Membership.CreateAndGet(t)             // *model.Membership
//	m, err := f.Membership.GetObjectByID(ctx, id) // nil for unknown IDs
//
// # Customization
//
// Use override functions for customization:
//
//	id := f.Membership.Create(t, fixtures.WithTitle("Gold"), fixtures.WithStatus(model.PostStatusDraft))
//
// Overrides never touch the shared defaults, and an overridden field does
// not advance its sequence.
//
// # Sequenced Data
//
// Titles, content and excerpts are numbered per factory:
//
//	f.Membership.Create(t) // "Membership title 1"
//	f.Membership.Create(t) // "Membership title 2"
//
// Call Reset between tests to restart numbering.
package fixtures
