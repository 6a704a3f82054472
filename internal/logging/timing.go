package logging

import (
	"time"
)

// TimingContext is a running measurement returned by Start
type TimingContext struct {
	name  string
	start time.Time
}

// Start begins a measurement. Pass the result to End.
//
//	timing := logging.Start("list services")
//	defer logging.End(timing)
func Start(name string) TimingContext {
	return TimingContext{name: name, start: time.Now()}
}

// End logs the time elapsed since Start at debug level
func End(ctx TimingContext) {
	if !IsEnabled() {
		return
	}
	d := time.Since(ctx.start)
	Get().Debug(ctx.name, "duration", d.String(), "ms", d.Milliseconds())
}

// Time runs fn and logs how long it took
func Time(name string, fn func()) {
	defer End(Start(name))
	fn()
}

// TimeWithResult runs fn, logs how long it took and returns its result
//
//	rows := logging.TimeWithResult("build rows", func() []services.ServiceRow {
//	    return services.BuildRows(list)
//	})
func TimeWithResult[T any](name string, fn func() T) T {
	defer End(Start(name))
	return fn()
}
