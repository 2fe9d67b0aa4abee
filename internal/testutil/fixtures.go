package testutil

import (
	"testing"

	"github.com/preston-bernstein/worldcup-dashboard/internal/dataset"
	"github.com/preston-bernstein/worldcup-dashboard/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-dashboard/internal/sources/fixture"
)

// SampleMatches returns the built-in fixture rows.
func SampleMatches() []matches.Match {
	return fixture.Matches()
}

// SampleDataset builds a dataset from the fixture rows.
func SampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New("fixture", SampleMatches())
	if err != nil {
		t.Fatalf("build sample dataset: %v", err)
	}
	return ds
}

// ReadyState wraps the sample dataset in a loaded state.
func ReadyState(t *testing.T) dataset.State {
	t.Helper()
	return dataset.State{Dataset: SampleDataset(t)}
}

// HaltedState is the state after a failed load.
func HaltedState(err error) dataset.State {
	return dataset.State{Err: err}
}
