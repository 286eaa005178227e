// Package user contains the User aggregate and the Role value object used by
// the authorization guards.
package user
