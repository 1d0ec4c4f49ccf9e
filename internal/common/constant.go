// Package common contains shared constants and sentinel errors used across
// GoFinances components.
package common

// SessionStorageKey is the single fixed key under which the signed-in user
// is persisted. Only the session manager writes it.
const SessionStorageKey = "@gofinances:user"

// TransactionsKeyPrefix namespaces per-user ledger records. The full key is
// the prefix followed by the user id.
const TransactionsKeyPrefix = "@gofinances:transactions_user:"

// TransactionsKey returns the ledger key for the given user id.
func TransactionsKey(userID string) string {
	return TransactionsKeyPrefix + userID
}
