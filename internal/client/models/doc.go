// Package models defines client-side data models used by the GoFinances CLI.
package models
