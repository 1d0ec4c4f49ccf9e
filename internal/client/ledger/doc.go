// Package ledger reads and appends the transactions of one user.
//
// Records live as a JSON array under common.TransactionsKey(userID). The
// key space is disjoint from the session key; the ledger only reads the
// user id and never touches the session.
package ledger
