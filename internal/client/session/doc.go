// Package session owns the signed-in user of the GoFinances client.
//
// A Manager is created once at startup. It restores the persisted user in
// the background, then serves sign-in and sign-out requests one at a time.
// Consumers read the current State or subscribe to changes; they never
// write it.
//
// The persisted record is the JSON form of models.User stored under
// common.SessionStorageKey. The Manager is the only writer of that key.
package session
