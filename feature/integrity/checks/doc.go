// Package checks implements the individual integrity checks and their fixes.
package checks
