// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

/*
Package query implements the issue query and ranking engine.

The engine is a pure, synchronous transformation over a point-in-time
snapshot of the issue collection. A query flows through a fixed pipeline:

	filter -> (affinity narrowing) -> score -> sort -> paginate

Two entry points share that pipeline:

  - Issues: anonymous filtering and sorting
  - Recommended: personalized; narrows results toward a user's known
    languages and ranks by an additive recommendation score

# Design Principles

  - Deterministic: identical snapshot and filters produce identical
    results; every sort mode carries a stable tiebreak by issue ID
  - Total: the engine never fails for structurally valid input; missing
    users yield an empty result and out-of-range paging yields an empty
    page
  - Stateless: no caches and no shared state cross a query invocation;
    the caller owns snapshot isolation, making concurrent calls safe

Scores are computed once per issue before sorting, never inside the sort
comparator. Personalization is skipped whenever a search term is present:
an explicit search intent overrides language-affinity narrowing.
*/
package query
