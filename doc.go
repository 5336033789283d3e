// Package counsel provides a small college admission allocation engine.
//
// The engine maps an applicant's exam rank to a college by scanning an
// ordered rank-interval table loaded from a flat file, and exposes the
// allocation rules as pluggable strategies behind a single capability:
//
//   - rankinterval – first matching rank interval wins
//   - fixed        – constant "not eligible" answers for later rounds
//
// Counsel is designed to be embedded in host applications.  End-users
// typically interact with the engine via the high-level Service façade
// exposed by the root package:
//
//	svc, _ := counsel.New(ctx, counsel.WithDatasetURL("colleges.txt"))
//	rt := svc.Runtime()
//	college, _ := rt.Allocate(ctx, rankinterval.Name, model.NewApplicant("Ada", 42))
//
// For more details see the individual sub-packages.
package counsel
