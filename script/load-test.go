package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"slices"
	"sync"
	"time"
)

// scenario is one request shape sent against the delta API
type scenario struct {
	Name       string
	Method     string
	Path       string
	Body       any
	WantStatus int
}

type result struct {
	Scenario string
	Latency  time.Duration
	Err      error
}

type stats struct {
	mu        sync.Mutex
	latencies []time.Duration
	failures  map[string]int
	perName   map[string]int
	ok        int
}

func (s *stats) add(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latencies = append(s.latencies, r.Latency)
	s.perName[r.Scenario]++
	if r.Err != nil {
		s.failures[r.Err.Error()]++
		return
	}
	s.ok++
}

func scenarios() []scenario {
	return []scenario{
		{Name: "construct", Method: http.MethodPost, Path: "/deltas", Body: map[string]int64{"hours": 25, "microseconds": -1}, WantStatus: http.StatusOK},
		{Name: "construct overflow", Method: http.MethodPost, Path: "/deltas", Body: map[string]int64{"days": 99_999_999, "hours": 24}, WantStatus: http.StatusUnprocessableEntity},
		{Name: "from ticks", Method: http.MethodGet, Path: "/deltas/-86400000001", WantStatus: http.StatusOK},
		{Name: "between", Method: http.MethodGet, Path: "/deltas/between?start=2000-01-01T00:00:00Z&end=2024-02-29T12:30:00.000001Z", WantStatus: http.StatusOK},
		{Name: "list intervals", Method: http.MethodGet, Path: "/intervals?limit=20", WantStatus: http.StatusOK},
	}
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	total := flag.Int("n", 200, "Total number of requests")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delay := flag.Duration("delay", 10*time.Millisecond, "Delay between requests of a worker")
	flag.Parse()

	all := scenarios()
	st := &stats{failures: map[string]int{}, perName: map[string]int{}}
	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Printf("Load testing %s with %d workers, %d requests, %v delay\n", *baseURL, *concurrency, *total, *delay)

	jobs := make(chan scenario)
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				if *delay > 0 {
					time.Sleep(*delay)
				}
				st.add(send(context.Background(), client, *baseURL, sc))
			}
		}()
	}

	start := time.Now()
	for i := 0; i < *total; i++ {
		jobs <- all[rand.Intn(len(all))]
	}
	close(jobs)
	wg.Wait()

	report(st, *total, time.Since(start))
}

func send(ctx context.Context, client *http.Client, baseURL string, sc scenario) result {
	var body io.Reader
	if sc.Body != nil {
		payload, err := json.Marshal(sc.Body)
		if err != nil {
			return result{Scenario: sc.Name, Err: err}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, sc.Method, baseURL+sc.Path, body)
	if err != nil {
		return result{Scenario: sc.Name, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	begin := time.Now()
	resp, err := client.Do(req)
	latency := time.Since(begin)
	if err != nil {
		return result{Scenario: sc.Name, Latency: latency, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != sc.WantStatus {
		err = fmt.Errorf("%s: HTTP %d, want %d", sc.Name, resp.StatusCode, sc.WantStatus)
	}
	return result{Scenario: sc.Name, Latency: latency, Err: err}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func report(st *stats, total int, elapsed time.Duration) {
	st.mu.Lock()
	defer st.mu.Unlock()

	latencies := slices.Clone(st.latencies)
	slices.Sort(latencies)

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}
	var avg time.Duration
	if len(latencies) > 0 {
		avg = sum / time.Duration(len(latencies))
	}

	fmt.Println("\n================= RESULTS =================")
	fmt.Printf("Requests:    %d\n", total)
	fmt.Printf("As expected: %d (%.1f%%)\n", st.ok, float64(st.ok)/float64(total)*100)
	fmt.Printf("Elapsed:     %.2fs\n", elapsed.Seconds())
	fmt.Printf("Throughput:  %.2f req/s\n", float64(total)/elapsed.Seconds())

	fmt.Println("\n--------------- LATENCY ---------------")
	fmt.Printf("Average: %v\n", avg)
	if len(latencies) > 0 {
		fmt.Printf("Min:     %v\n", latencies[0])
		fmt.Printf("Max:     %v\n", latencies[len(latencies)-1])
	}
	for _, p := range []int{50, 90, 95, 99} {
		fmt.Printf("P%d:     %v\n", p, percentile(latencies, p))
	}

	fmt.Println("\n--------------- SCENARIOS ---------------")
	for name, count := range st.perName {
		fmt.Printf("%-20s %d\n", name, count)
	}

	if len(st.failures) > 0 {
		fmt.Println("\n--------------- FAILURES ---------------")
		for msg, count := range st.failures {
			fmt.Printf("%-50s %d\n", msg, count)
		}
	}
}
