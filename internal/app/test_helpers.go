package app

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/urlmap/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an App with debug logging captured in a SafeBuffer.
// stdin is optional. Set URLMAP_TEST_LOGS=true to dump logs after the test.
func SetupAppTest(t *testing.T, appConfig *Config, loader config.Loader, stdin string) (*App, *SafeBuffer, *SafeBuffer, error) {
	t.Helper()

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	testApp, err := NewApp(Streams{In: strings.NewReader(stdin), Out: out, Err: logBuffer}, appConfig, loader)

	t.Cleanup(func() {
		if os.Getenv("URLMAP_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer, err
}
