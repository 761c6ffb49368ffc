package navfakes

import "sync"

// Recorder is a Navigator that records every navigation.
type Recorder struct {
	mu     sync.Mutex
	Visits []string
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Navigate(route string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Visits = append(r.Visits, route)
	return nil
}

func (r *Recorder) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Visits) == 0 {
		return ""
	}
	return r.Visits[len(r.Visits)-1]
}
