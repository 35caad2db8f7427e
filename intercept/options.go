package intercept

// Option defines a functional option for configuring a Facade.
type Option func(*Facade) error

// WithObserver sets the observer notified of every intercepted operation.
// Without this option the facade still executes every default operation but
// notifies nobody. The presence check happens once here, not per operation.
func WithObserver(observer Observer) Option {
	return func(f *Facade) error {
		if observer == nil {
			return ErrNilObserver
		}

		f.observer = observer

		return nil
	}
}
