package loadtest

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"flag"

	"github.com/grantradar/grantradar-go/lib/client"
	"github.com/grantradar/grantradar-go/lib/utils"
	"go.uber.org/zap"
)

func RunFromCLI(logger *zap.SugaredLogger, args []string) {
	host, writers, readers, duration, err := parseRunArgs(args)
	if err != nil {
		return
	}
	StartLoadTest(logger, host, writers, readers, duration)
}

func parseRunArgs(args []string) (string, int, int, int, error) {
	fs := flag.NewFlagSet("loadtest", flag.ContinueOnError)
	host := fs.String("host", "http://127.0.0.1:9002", "The host to test")
	writers := fs.Int("writers", 1, "Number of writers creating grants and moving applications")
	readers := fs.Int("readers", 0, "Number of readers polling the board and component library")
	duration := fs.Int("duration", 0, "Duration of the test in seconds")

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		*host = args[0]
		args = args[1:]
	}

	err := fs.Parse(args)
	return *host, *writers, *readers, *duration, err
}

type Metrics struct {
	GrantsCreated     int64
	ApplicationsMoved int64
	VersionsSaved     int64
	BoardReads        int64
	ErrorCount        int64
	StartTime         time.Time
}

var stats Metrics
var statsLock sync.Mutex

func updateMetricsUI(host string) {
	if os.Getenv("SILENT_METRICS") == "true" {
		return
	}
	statsLock.Lock()
	defer statsLock.Unlock()

	testDuration := time.Since(stats.StartTime)

	// Clear screen and move cursor to top-left
	fmt.Print("\033[2J\033[0;0H")
	fmt.Printf("Load Test Metrics -- Target %s\n\n", host)

	fmt.Printf("Grants created: %d\n", atomic.LoadInt64(&stats.GrantsCreated))
	fmt.Printf("Applications moved: %d\n", atomic.LoadInt64(&stats.ApplicationsMoved))
	fmt.Printf("Versions saved: %d\n", atomic.LoadInt64(&stats.VersionsSaved))
	fmt.Printf("Board reads: %d\n", atomic.LoadInt64(&stats.BoardReads))
	fmt.Printf("Errors: %d\n", atomic.LoadInt64(&stats.ErrorCount))
	fmt.Printf("Seconds test has been running for: %d\n", int(testDuration.Seconds()))
}

// newWriter drives the mutating endpoints: create a grant, open an
// application for it, walk the application across the board and
// snapshot a component.
func newWriter(host string, done <-chan struct{}, logger *zap.SugaredLogger) {
	apiClient := client.NewClient(host, "loadtest-"+utils.RandomString(6))

	ticker := time.NewTicker(400 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			createdGrant, err := apiClient.CreateGrant(client.CreateGrantRequest{
				Title:  "Load grant " + utils.RandomString(8),
				Funder: "Load funder " + utils.RandomString(4),
			})
			if err != nil {
				atomic.AddInt64(&stats.ErrorCount, 1)
				logger.Debugf("create grant failed: %v", err)
				continue
			}
			atomic.AddInt64(&stats.GrantsCreated, 1)

			application, err := apiClient.CreateApplication(client.CreateApplicationRequest{
				GrantID: createdGrant.ID,
				Title:   "Load application " + utils.RandomString(8),
			})
			if err != nil {
				atomic.AddInt64(&stats.ErrorCount, 1)
				continue
			}

			if _, err := apiClient.MoveApplication(application.ID, client.MoveApplicationRequest{
				Stage: "preparing",
			}); err != nil {
				atomic.AddInt64(&stats.ErrorCount, 1)
			} else {
				atomic.AddInt64(&stats.ApplicationsMoved, 1)
			}

			createdComponent, err := apiClient.CreateComponent(client.CreateComponentRequest{
				Title:   "Load component " + utils.RandomString(8),
				Content: utils.RandomString(64),
			})
			if err != nil {
				atomic.AddInt64(&stats.ErrorCount, 1)
				continue
			}
			if _, err := apiClient.SaveVersion(createdComponent.ID, client.SaveVersionRequest{}); err != nil {
				atomic.AddInt64(&stats.ErrorCount, 1)
			} else {
				atomic.AddInt64(&stats.VersionsSaved, 1)
			}

			updateMetricsUI(host)
		}
	}
}

// newReader polls the read endpoints the dashboard hits.
func newReader(host string, done <-chan struct{}, logger *zap.SugaredLogger) {
	apiClient := client.NewClient(host, "loadtest-"+utils.RandomString(6))

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			// Fresh board every tick, the cache would hide the load.
			apiClient.InvalidateAll()

			if _, err := apiClient.Board(); err != nil {
				atomic.AddInt64(&stats.ErrorCount, 1)
				logger.Debugf("board read failed: %v", err)
				continue
			}
			atomic.AddInt64(&stats.BoardReads, 1)

			if _, err := apiClient.ListComponents(); err != nil {
				atomic.AddInt64(&stats.ErrorCount, 1)
			}

			updateMetricsUI(host)
		}
	}
}

func StartLoadTest(logger *zap.SugaredLogger, host string, numWriters, numReaders, duration int) {
	stats = Metrics{StartTime: time.Now()}

	if host == "" {
		host = "http://127.0.0.1:9002"
	}
	host = strings.TrimSuffix(host, "/")

	done := make(chan struct{})

	for i := 0; i < numWriters; i++ {
		go newWriter(host, done, logger)
	}
	for i := 0; i < numReaders; i++ {
		go newReader(host, done, logger)
	}

	if duration > 0 {
		fmt.Printf("Creating load for %d seconds\n", duration)
		time.Sleep(time.Duration(duration) * time.Second)
		close(done)
		updateMetricsUI(host)
		return
	}

	fmt.Println("Creating load until interrupted")
	select {}
}
