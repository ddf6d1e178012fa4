/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"strings"
)

// sampleRate 1 means always send the metrics
const sampleRate = 1.0

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix. Tags passed to
// Setup are attached to every metric it sends.
func New(pkgName string) Service {
	ddTags := []string{
		// using host removes all tags associated with host
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
	}
	ddTags = append(ddTags, globalTags()...)

	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: ddTags,
		},
	}
}

// Metrics prefixes every key with the package name and never lets a
// metrics failure panic into the caller.
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

// bumpSumPanic counts panics raised while bumping, usually caused by
// inconsistent tagging.
func (mt *Metrics) bumpSumPanic(key string, tags []string) {
	mt.datadog.BumpSum("bump.panic", 1, sampleRate, "tag", mt.key(key)+"#"+strings.Join(tags, "#"))
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer func() {
		if err := recover(); err != nil {
			mt.bumpSumPanic(key, tags)
		}
	}()
	mt.datadog.BumpAvg(mt.key(key), val, sampleRate, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer func() {
		if err := recover(); err != nil {
			mt.bumpSumPanic(key, tags)
		}
	}()
	mt.datadog.BumpSum(mt.key(key), val, sampleRate, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer func() {
		if err := recover(); err != nil {
			mt.bumpSumPanic(key, tags)
		}
	}()
	mt.datadog.BumpHistogram(mt.key(key), val, sampleRate, tags...)
}

// BumpTime is a special version of BumpHistogram which is specialized for
// timers. Calling it starts the timer, and it returns a value on which End()
// can be called to indicate finishing the timer. A convenient way of
// recording the duration of a function is calling it like such at the top of
// the function:
//
//	defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) (e Ender) {
	defer func() {
		if err := recover(); err != nil {
			mt.bumpSumPanic(key, tags)
			e = fakeEnd{}
		}
	}()
	return &timeTracker{
		ddEnd: mt.datadog.BumpTime(mt.key(key), sampleRate, tags...),
		panicHandler: func() {
			mt.bumpSumPanic(key, tags)
		},
	}
}

type fakeEnd struct{}

func (fakeEnd) End() {}

type timeTracker struct {
	ddEnd        Ender
	panicHandler func()
}

func (t *timeTracker) End() {
	defer func() {
		if err := recover(); err != nil {
			t.panicHandler()
		}
	}()
	t.ddEnd.End()
}
