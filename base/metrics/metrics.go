/*Package metrics wraps datadog-go to facilitate metric recording.
Naming convention:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/mysterymart/goapi/base/env"
	"github.com/mysterymart/goapi/base/log"
)

const (
	// ddRate is the rate to pass metrics to the datadog agent. 1 means always
	ddRate = 1
	// buffer this many counters before flushing to statsd
	bufferMetrics = 10

	ddClientsSize    = 16 // needs to be 2^n
	ddClientsIdxMask = ddClientsSize - 1
)

var (
	initOnce sync.Once

	ddClientsIdx = int32(0)
	ddClients    []statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
}

// Ender finishes a timer started by BumpTime
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

func initDDClient() {
	host := viper.GetString("datadog_host")
	addr := fmt.Sprintf("%s:%d", host, 8125)
	ddClients = make([]statsCli, ddClientsSize)
	for i := 0; i < ddClientsSize; i++ {
		log.Log().WithFields(log.Fields{"addr": addr, "idx": i}).Info("connecting to datadog agent")
		client, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
		}
		ddClients[i] = client
	}
}

// New creates a metric service with package name as prefix
func New(pkgName string) Service {
	tags := []string{
		// using host removes all tags associated with host
		"host:",
		"pod:" + env.PodName(),
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}
	return &metricsImpl{pkgName: pkgName, tags: tags}
}

type metricsImpl struct {
	pkgName string
	tags    []string
}

func (mt *metricsImpl) client() statsCli {
	initOnce.Do(initDDClient)
	i := atomic.AddInt32(&ddClientsIdx, 1) & ddClientsIdxMask
	return ddClients[i]
}

// BumpAvg bumps the average for the given key.
func (mt *metricsImpl) BumpAvg(key string, val float64, tags ...string) {
	if err := mt.client().Gauge(mt.pkgName+"."+key, val, append(mt.tags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val}).Error("BumpAvg failed")
	}
}

// BumpSum bumps the sum for the given key.
func (mt *metricsImpl) BumpSum(key string, val float64, tags ...string) {
	if err := mt.client().Count(mt.pkgName+"."+key, int64(val), append(mt.tags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val}).Error("BumpSum failed")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *metricsImpl) BumpHistogram(key string, val float64, tags ...string) {
	if err := mt.client().Histogram(mt.pkgName+"."+key, val, append(mt.tags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val}).Error("BumpHistogram failed")
	}
}

// BumpTime starts a timer for the given key. Calling End() on the returned
// value records the elapsed time as a histogram:
//
//	defer met.BumpTime("my.function").End()
func (mt *metricsImpl) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		metrics: mt,
		start:   time.Now(),
		key:     key,
		tags:    tags,
	}
}

type timeTracker struct {
	metrics *metricsImpl
	start   time.Time
	key     string
	tags    []string
}

func (t *timeTracker) End() {
	elapsed := float64(time.Since(t.start) / time.Millisecond)
	t.metrics.BumpHistogram(t.key, elapsed, t.tags...)
}

// parseTag converts key/value pairs into datadog's "key:value" form
func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}
