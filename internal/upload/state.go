package upload

// State is a step of the submission sequence.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateCreatingOrder
	StateUploading
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateCreatingOrder:
		return "creating_order"
	case StateUploading:
		return "uploading"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is a snapshot delivered to an Observer on every transition and
// after every file's outcome. Done is set once File has been accepted.
type Status struct {
	State    State
	OrderID  string
	File     string
	Index    int
	Total    int
	Progress int
	Done     bool
	Err      error
}

// Observer receives submission progress. It is called synchronously from
// the submitting goroutine.
type Observer func(Status)
