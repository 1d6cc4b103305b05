// Package limiter provides token bucket rate limiting keyed by request path
// Package limiter 提供按请求路径区分的令牌桶限流
package limiter

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// Face is the limiter contract used by the middleware
type Face interface {
	Key(c *gin.Context) string
	GetBucket(key string) (*ratelimit.Bucket, bool)
	AddBuckets(rules ...BucketRule) Face
}

// Limiter holds one bucket per key
type Limiter struct {
	limiterBuckets map[string]*ratelimit.Bucket
}

// BucketRule 令牌桶规则
type BucketRule struct {
	Key          string        // 自定义键值对名称
	FillInterval time.Duration // 间隔多久放 N 个令牌
	Capacity     int64         // 令牌桶的容量
	Quantum      int64         // 每次到达间隔时间后所放的具体令牌数量
}

// MethodLimiter limits by "METHOD path" or by bare path.
// MethodLimiter 按 "方法 路径" 或单纯路径限流
type MethodLimiter struct {
	*Limiter
}

func NewMethodLimiter() Face {
	return MethodLimiter{
		Limiter: &Limiter{limiterBuckets: make(map[string]*ratelimit.Bucket)},
	}
}

// Key returns the request path without the query string, prefixed by the method.
func (l MethodLimiter) Key(c *gin.Context) string {
	uri := c.Request.RequestURI
	if index := strings.Index(uri, "?"); index != -1 {
		uri = uri[:index]
	}
	return c.Request.Method + " " + uri
}

// GetBucket matches "METHOD path" first, then the bare path.
func (l MethodLimiter) GetBucket(key string) (*ratelimit.Bucket, bool) {
	if bucket, ok := l.limiterBuckets[key]; ok {
		return bucket, true
	}
	if i := strings.Index(key, " "); i != -1 {
		bucket, ok := l.limiterBuckets[key[i+1:]]
		return bucket, ok
	}
	return nil, false
}

func (l MethodLimiter) AddBuckets(rules ...BucketRule) Face {
	for _, rule := range rules {
		if _, ok := l.limiterBuckets[rule.Key]; !ok {
			bucket := ratelimit.NewBucketWithQuantum(
				rule.FillInterval,
				rule.Capacity,
				rule.Quantum,
			)
			l.limiterBuckets[rule.Key] = bucket
		}
	}
	return l
}
