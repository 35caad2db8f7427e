// Package intercept wraps an object.Object so that every fundamental
// operation performed on it is observable through a single uniform hook while
// the operation's default semantics stay intact.
//
// The package has two parts:
//   - The operation dispatcher: one typed function per operation kind that
//     invokes the default reflective operation and derives the subject value
//     reported to the observer.
//   - The Facade returned by Wrap: it mirrors the thirteen operation kinds,
//     routes each one through the dispatcher, notifies the configured
//     Observer, and returns the dispatcher's result to the caller unchanged.
//
// The facade never short-circuits default behavior: for callers that ignore
// the observation side-channel it is functionally indistinguishable from the
// unwrapped target, except that a failing observer surfaces as an error
// joined with ErrObserverFailed.
//
// Common usage pattern:
//
//	facade, err := intercept.Wrap(target, "checkout-cart",
//		intercept.WithObserver(func(e intercept.OperationEvent) error {
//			log.Printf("[%s] %s %s", e.Label, e.Kind, e.Property)
//			return nil
//		}),
//	)
//	if err != nil {
//		// handle construction error
//	}
//
//	value, err := facade.Get(object.StringKey("total"))
package intercept
