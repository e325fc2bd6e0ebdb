// Package query owns the static GraphQL query text. Queries are
// parameterized through GraphQL variables, never string interpolation.
package query

// UserInfo fetches the authenticated learner plus the aggregate audit
// point totals. Only the two scalars reach the core; individual audits
// are never fetched.
const UserInfo = `query UserInfo {
  user {
    id
    login
    firstName
    lastName
    totalUp
    totalDown
  }
}`

// Transactions fetches XP movements of one kind, oldest first. The
// server-side ordering is advisory only: the aggregator re-sorts
// defensively.
const Transactions = `query Transactions($kind: String!) {
  transaction(where: {type: {_eq: $kind}}, order_by: {createdAt: asc}) {
    id
    type
    amount
    createdAt
    path
    object {
      id
      name
      type
    }
  }
}`

// Results fetches graded attempts, oldest first.
const Results = `query Results {
  result(order_by: {createdAt: asc}) {
    id
    grade
    createdAt
    path
    object {
      id
      name
      type
    }
  }
}`

// XPKind is the transaction type selecting experience points.
const XPKind = "xp"

// TransactionVariables builds the variable map for Transactions.
func TransactionVariables(kind string) map[string]any {
	return map[string]any{"kind": kind}
}
