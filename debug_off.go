//go:build !strata_debug

package strata

// debugChecks gates the duplicate-push check in Stack. Disabled by
// default so pushes stay O(1), build with -tags strata_debug to enable.
const debugChecks = false
