package limiter

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMethodLimiter_Key(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/links?lang=en", nil)

	l := NewMethodLimiter()
	assert.Equal(t, "POST /links", l.Key(c))
}

func TestMethodLimiter_GetBucket(t *testing.T) {
	l := NewMethodLimiter().AddBuckets(
		BucketRule{Key: "POST /links", FillInterval: time.Hour, Capacity: 2, Quantum: 2},
		BucketRule{Key: "/api/links", FillInterval: time.Hour, Capacity: 1, Quantum: 1},
	)

	bucket, ok := l.GetBucket("POST /links")
	assert.True(t, ok)
	assert.Equal(t, int64(2), bucket.TakeAvailable(5))
	assert.Equal(t, int64(0), bucket.TakeAvailable(1))

	_, ok = l.GetBucket("GET /api/links")
	assert.True(t, ok, "bare path rule applies to every method")

	_, ok = l.GetBucket("GET /")
	assert.False(t, ok)
}
