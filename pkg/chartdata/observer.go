// Package chartdata provides the observable data models that chart widgets
// render from: immutable data points and series, observable containers with
// per-series visibility and point selection, heatmap matrices, and
// hierarchical data for drill-down navigation.
//
// The models are not goroutine safe. All mutation and observation is expected
// to happen on the UI goroutine; background producers must marshal their
// updates onto it before touching a model.
package chartdata

// Observer receives change notifications from an observable data model.
// Notifications are delivered synchronously, in attachment order.
type Observer interface {
	// OnNotify is called after a mutation. event carries optional event
	// data (often nil) describing the change.
	OnNotify(event any)
}

type observerFunc struct {
	fn func(event any)
}

func (o *observerFunc) OnNotify(event any) {
	o.fn(event)
}

// ObserveFunc adapts a function to the Observer interface. Each call returns
// a distinct observer, so the returned value must be kept to detach later.
func ObserveFunc(fn func(event any)) Observer {
	return &observerFunc{fn: fn}
}

// Observable implements the attach/detach/notify contract shared by all
// chart data models. The zero value is ready to use.
type Observable struct {
	observers []Observer
	batching  bool
}

// Attach registers an observer. Attaching the same observer twice is a no-op.
func (o *Observable) Attach(obs Observer) {
	for _, existing := range o.observers {
		if existing == obs {
			return
		}
	}
	o.observers = append(o.observers, obs)
}

// Detach removes a previously attached observer.
func (o *Observable) Detach(obs Observer) {
	for i, existing := range o.observers {
		if existing == obs {
			o.observers = append(o.observers[:i], o.observers[i+1:]...)
			return
		}
	}
}

// Notify delivers the event to every attached observer, in attachment order.
// Inside a BatchUpdate the call is suppressed.
func (o *Observable) Notify(event any) {
	if o.batching {
		return
	}
	for _, obs := range o.observers {
		obs.OnNotify(event)
	}
}

// BatchUpdate runs fn with notifications suppressed, then fires exactly one
// notification. The final notification fires even if fn panics.
func (o *Observable) BatchUpdate(fn func()) {
	o.batching = true
	defer func() {
		o.batching = false
		o.Notify(nil)
	}()
	fn()
}
