package imagecheck

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"courseboard/internal/concurrency"
	"courseboard/internal/domain"
)

// Result of probing one course's image URL.
type Result struct {
	CourseID string
	URL      string
	OK       bool
	Status   int
	Err      error
}

type Options struct {
	MaxWorkers int
	Timeout    time.Duration
}

// Check probes every course image with a HEAD request. A card with a
// broken image renders an empty media box, so the snapshot tool reports
// them before anyone notices on the board. Results keep catalog order.
func Check(ctx context.Context, courses []domain.Course, opts Options) []Result {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	results, _ := concurrency.ProcessParallel(ctx, courses,
		concurrency.ParallelOptions{MaxWorkers: opts.MaxWorkers},
		func(ctx context.Context, _ int, crs domain.Course) (Result, error) {
			return probe(ctx, client, crs), nil
		})
	return results
}

func probe(ctx context.Context, client *http.Client, crs domain.Course) Result {
	res := Result{CourseID: crs.ID, URL: crs.ImageURL}

	if strings.TrimSpace(crs.ImageURL) == "" {
		res.Err = errors.New("empty image url")
		return res
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, crs.ImageURL, nil)
	if err != nil {
		res.Err = err
		return res
	}

	resp, err := client.Do(req)
	if err != nil {
		res.Err = err
		return res
	}
	// drain so the connection can be reused across probes
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	res.Status = resp.StatusCode
	res.OK = resp.StatusCode >= 200 && resp.StatusCode < 300
	return res
}

// Broken filters the results down to the ones worth reporting.
func Broken(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.OK {
			out = append(out, r)
		}
	}
	return out
}
