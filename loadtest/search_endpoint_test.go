// ABOUTME: Load tests for the /search endpoint
// ABOUTME: Runs the full ranking pipeline under concurrent load against in-memory feeds

package loadtest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"freelance-radar-api/api"
	"freelance-radar-api/api/handlers"
	"freelance-radar-api/core/feed"
	"freelance-radar-api/core/interfaces"
	"freelance-radar-api/core/ranking"
	"freelance-radar-api/core/sources"
)

var loadNow = time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)

// memoryClient serves the same RSS document for every source after a delay
type memoryClient struct {
	delay time.Duration
	body  string
}

func (c *memoryClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	select {
	case <-time.After(c.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return memoryResponse{body: c.body}, nil
}

type memoryResponse struct {
	body string
}

func (r memoryResponse) StatusCode() int          { return http.StatusOK }
func (r memoryResponse) Body() io.ReadCloser      { return io.NopCloser(strings.NewReader(r.body)) }
func (r memoryResponse) Header(key string) string { return "" }

func loadFeed(entries int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>Forum</title>`)
	for i := 0; i < entries; i++ {
		published := loadNow.Add(-time.Duration(i) * time.Hour).Format(time.RFC1123Z)
		fmt.Fprintf(&b, `<item><title>Comment trouver des clients freelance %d ?</title><link>https://example.fr/%d</link><description>Je cherche de l'aide pour ma prospection.</description><pubDate>%s</pubDate></item>`, i, i, published)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

// LoadTestMetrics tracks performance metrics
type LoadTestMetrics struct {
	TotalRequests  int64
	SuccessfulReqs int64
	FailedReqs     int64
	TotalDuration  time.Duration
	MinLatency     time.Duration
	MaxLatency     time.Duration
	AvgLatency     time.Duration
	P95Latency     time.Duration
	P99Latency     time.Duration
	RequestsPerSec float64
}

func newServer(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()

	deps := interfaces.Dependencies{
		HTTPClient: &memoryClient{delay: delay, body: loadFeed(20)},
		Logger:     interfaces.NopLogger{},
		Clock:      func() time.Time { return loadNow },
	}
	registry := sources.MustDefault()
	ranker := ranking.NewService(deps, registry, feed.NewFeedService(deps, feed.Config{}), ranking.Config{})

	apiInstance, router := api.NewAPI()
	handlers.NewSearchHandler(ranker, registry).RegisterRoutes(apiInstance)

	return httptest.NewServer(router)
}

// loadTestEnv opts into the load test, whose latency bound depends on the host
const loadTestEnv = "RADAR_LOADTEST"

func TestSearchEndpoint_100ConcurrentRequests(t *testing.T) {
	if testing.Short() || os.Getenv(loadTestEnv) == "" {
		t.Skipf("load test skipped; set %s=1 to run it", loadTestEnv)
	}

	server := newServer(t, 10*time.Millisecond)
	defer server.Close()

	concurrency := 100
	requestsPerWorker := 5
	totalRequests := concurrency * requestsPerWorker

	var (
		successCount int64
		failCount    int64
		latencies    []time.Duration
		mu           sync.Mutex
	)

	var wg sync.WaitGroup
	wg.Add(concurrency)

	startTime := time.Now()

	for i := 0; i < concurrency; i++ {
		go func(workerID int) {
			defer wg.Done()

			client := &http.Client{Timeout: 30 * time.Second}

			for j := 0; j < requestsPerWorker; j++ {
				reqStart := time.Now()
				resp, err := client.Get(server.URL + "/search?keyword=clients&location=Paris")
				latency := time.Since(reqStart)

				mu.Lock()
				latencies = append(latencies, latency)
				mu.Unlock()

				if err != nil {
					atomic.AddInt64(&failCount, 1)
					continue
				}

				body, _ := io.ReadAll(resp.Body)
				resp.Body.Close()

				if resp.StatusCode == http.StatusOK && strings.Contains(string(body), `"count":5`) {
					atomic.AddInt64(&successCount, 1)
				} else {
					atomic.AddInt64(&failCount, 1)
				}
			}
		}(i)
	}

	wg.Wait()
	totalDuration := time.Since(startTime)

	metrics := calculateMetrics(latencies, totalDuration, totalRequests)
	metrics.SuccessfulReqs = successCount
	metrics.FailedReqs = failCount

	t.Logf("Load Test Results - 100 Concurrent Searches")
	t.Logf("==========================================")
	t.Logf("Total Requests: %d", metrics.TotalRequests)
	t.Logf("Successful: %d", metrics.SuccessfulReqs)
	t.Logf("Failed: %d", metrics.FailedReqs)
	t.Logf("Total Duration: %v", metrics.TotalDuration)
	t.Logf("Requests/sec: %.2f", metrics.RequestsPerSec)
	t.Logf("Avg Latency: %v", metrics.AvgLatency)
	t.Logf("P95 Latency: %v", metrics.P95Latency)
	t.Logf("P99 Latency: %v", metrics.P99Latency)
	t.Logf("Max Latency: %v", metrics.MaxLatency)

	if metrics.FailedReqs > 0 {
		t.Errorf("Had %d failed requests", metrics.FailedReqs)
	}

	// Sources are fetched concurrently, so a search costs about one feed delay
	if metrics.P95Latency > 2*time.Second {
		t.Errorf("P95 latency too high: %v", metrics.P95Latency)
	}
}

// calculateMetrics computes performance metrics from latency data
func calculateMetrics(latencies []time.Duration, totalDuration time.Duration, totalRequests int) LoadTestMetrics {
	if len(latencies) == 0 {
		return LoadTestMetrics{}
	}

	sorted := slices.Clone(latencies)
	slices.Sort(sorted)

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	p95Index := int(float64(len(sorted)) * 0.95)
	p99Index := int(float64(len(sorted)) * 0.99)

	return LoadTestMetrics{
		TotalRequests:  int64(totalRequests),
		TotalDuration:  totalDuration,
		MinLatency:     sorted[0],
		MaxLatency:     sorted[len(sorted)-1],
		AvgLatency:     sum / time.Duration(len(latencies)),
		P95Latency:     sorted[p95Index],
		P99Latency:     sorted[p99Index],
		RequestsPerSec: float64(totalRequests) / totalDuration.Seconds(),
	}
}
