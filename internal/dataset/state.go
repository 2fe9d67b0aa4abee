package dataset

// State is the outcome of the startup load. Exactly one of Dataset and Err is set.
type State struct {
	Dataset *Dataset
	Err     error
}

// Ready reports whether the dataset loaded and the dashboard can render.
func (s State) Ready() bool {
	return s.Err == nil && s.Dataset != nil
}

// HaltedMessage is the user-facing banner shown in place of every page when the load failed.
const HaltedMessage = "Data not found"

// LoadedMessage is shown above every page once the dataset is available.
const LoadedMessage = "Data loaded successfully"
