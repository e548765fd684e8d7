package main

import "github.com/pinfergo/pinfer/pinfererr"

// Exit codes per spec.md §6: 0 success, 2 invalid input, 3 inference
// failure.
const (
	exitSuccess        = 0
	exitInvalidInput   = 2
	exitInferenceError = 3
)

// exitCodeFor classifies an error returned from rootCmd.Execute into one
// of the three documented exit codes. Kinds raised while reading or
// validating input map to 2; kinds raised once the polytree engine has
// started reasoning over it map to 3. Anything that isn't a tagged
// pinfererr.Error (flag parsing, missing files) is treated as invalid
// input.
func exitCodeFor(err error) int {
	kind, ok := pinfererr.KindOf(err)
	if !ok {
		return exitInvalidInput
	}
	switch kind {
	case pinfererr.InvalidGeneTree, pinfererr.InvalidObservation:
		return exitInvalidInput
	case pinfererr.NotAPolytree, pinfererr.InvariantViolated, pinfererr.InconsistentEvidence, pinfererr.ConstructionFailure:
		return exitInferenceError
	default:
		return exitInvalidInput
	}
}
