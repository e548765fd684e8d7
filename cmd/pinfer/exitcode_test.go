package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/pinfergo/pinfer/pinfererr"
)

func TestExitCodeFor_InvalidInputKinds(t *testing.T) {
	assert.Equal(t, exitInvalidInput, exitCodeFor(pinfererr.New(pinfererr.InvalidGeneTree, "", "bad")))
	assert.Equal(t, exitInvalidInput, exitCodeFor(pinfererr.New(pinfererr.InvalidObservation, "", "bad")))
}

func TestExitCodeFor_InferenceFailureKinds(t *testing.T) {
	assert.Equal(t, exitInferenceError, exitCodeFor(pinfererr.New(pinfererr.NotAPolytree, "", "bad")))
	assert.Equal(t, exitInferenceError, exitCodeFor(pinfererr.New(pinfererr.InvariantViolated, "", "bad")))
	assert.Equal(t, exitInferenceError, exitCodeFor(pinfererr.New(pinfererr.InconsistentEvidence, "", "bad")))
	assert.Equal(t, exitInferenceError, exitCodeFor(pinfererr.New(pinfererr.ConstructionFailure, "", "bad")))
}

func TestExitCodeFor_UntaggedErrorIsInvalidInput(t *testing.T) {
	assert.Equal(t, exitInvalidInput, exitCodeFor(errors.New("plain error")))
}
