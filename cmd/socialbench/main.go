package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/d60-Lab/orkud/config"
	"github.com/d60-Lab/orkud/internal/repository"
	"github.com/d60-Lab/orkud/internal/seed"
	"github.com/d60-Lab/orkud/internal/service"
	"github.com/d60-Lab/orkud/internal/store"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// recorder collects latencies from concurrent workers, in microseconds.
type recorder struct {
	mu sync.Mutex
	h  *hdrhistogram.Histogram
}

func newRecorder() *recorder {
	// 1µs .. 60s, 3 significant figures
	return &recorder{h: hdrhistogram.New(1, int64(time.Minute/time.Microsecond), 3)}
}

func (r *recorder) record(d time.Duration) {
	r.mu.Lock()
	_ = r.h.RecordValue(d.Microseconds())
	r.mu.Unlock()
}

func (r *recorder) print(name string, total time.Duration) {
	us := func(q float64) time.Duration { return time.Duration(r.h.ValueAtQuantile(q)) * time.Microsecond }
	n := r.h.TotalCount()
	var qps float64
	if total > 0 {
		qps = float64(n) / total.Seconds()
	}
	fmt.Printf("%-14s n=%-7d total=%-12v qps=%-9.0f p50=%-10v p95=%-10v p99=%-10v max=%v\n",
		name, n, total.Round(time.Millisecond), qps, us(50), us(95), us(99),
		time.Duration(r.h.Max())*time.Microsecond)
}

// run dispatches n calls of op across conc workers.
func run(name string, n, conc int, op func(i int) error) {
	rec := newRecorder()
	feed := make(chan int, n)
	for i := 0; i < n; i++ {
		feed <- i
	}
	close(feed)

	var (
		wg   sync.WaitGroup
		errs int64
		mu   sync.Mutex
	)
	t0 := time.Now()
	for w := 0; w < conc; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range feed {
				st := time.Now()
				if err := op(i); err != nil {
					mu.Lock()
					errs++
					mu.Unlock()
				}
				rec.record(time.Since(st))
			}
		}()
	}
	wg.Wait()
	rec.print(name, time.Since(t0))
	if errs > 0 {
		fmt.Printf("%-14s errors=%d\n", "", errs)
	}
}

// Env knobs: N operations per phase, CONC workers, ORKUD_PERSISTENCE_DRIVER
// picks the sink (memory by default so the numbers isolate the store).
func main() {
	if os.Getenv("ORKUD_PERSISTENCE_DRIVER") == "" {
		_ = os.Setenv("ORKUD_PERSISTENCE_DRIVER", config.SinkMemory)
	}
	cfg := must(config.Load())
	N := envInt("N", 2000)
	CONC := envInt("CONC", 8)

	ctx := context.Background()
	sink, closeSink, err := repository.OpenSink(ctx, cfg)
	if err != nil {
		panic(err)
	}
	defer closeSink()

	st := must(store.Open(ctx, sink))
	_ = must(seed.NewSeeder(st).Apply(ctx, must(seed.Demo())))

	posts := service.NewPostService(st)
	users := service.NewUserService(st)
	rels := service.NewRelationshipService(st)

	all := must(users.ListUsers(ctx))
	if len(all) < 2 {
		panic("need at least two users")
	}
	author := all[0].ID

	fmt.Printf("driver=%s N=%d CONC=%d users=%d\n", cfg.Persistence.Driver, N, CONC, len(all))

	ids := make([]string, N)
	run("createPost", N, CONC, func(i int) error {
		v, err := posts.CreatePost(ctx, service.CreatePostInput{
			Content: fmt.Sprintf("bench post %d", i),
			UserID:  all[i%len(all)].ID,
		})
		ids[i] = v.ID
		return err
	})
	run("toggleLike", N, CONC, func(i int) error {
		_, err := posts.ToggleLike(ctx, ids[i], all[(i+1)%len(all)].ID)
		return err
	})
	run("addComment", N, CONC, func(i int) error {
		_, err := posts.AddComment(ctx, service.AddCommentInput{
			PostID: ids[i], Content: "nice", UserID: author,
		})
		return err
	})
	run("toggleFollow", N, CONC, func(i int) error {
		a, b := all[i%len(all)].ID, all[(i+1)%len(all)].ID
		_, err := rels.ToggleFollow(ctx, a, b)
		return err
	})
	feedN := N / 10
	if feedN == 0 {
		feedN = 1
	}
	run("listPosts", feedN, CONC, func(int) error {
		_, err := posts.ListPosts(ctx, author)
		return err
	})
	run("getPost", N, CONC, func(i int) error {
		_, err := posts.GetPost(ctx, ids[i], author)
		return err
	})
	run("searchPosts", feedN, CONC, func(int) error {
		_, err := posts.SearchPosts(ctx, "bench")
		return err
	})
}
