//go:build strata_debug

package strata

const debugChecks = true
