package net

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Browse must come back once the lookup window closes, with its entry
// drain stopped, whether or not multicast is available.
func TestBrowseReturns(t *testing.T) {
	done := make(chan error, 1)
	go func() {
		done <- Browse(func(string) {})
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Browse did not return")
	}
}

func TestDiscoverLinkWithoutSessions(t *testing.T) {
	// Nothing advertises _studyink._tcp here, so discovery must report an
	// error either way: lookup failure or an empty result.
	link, err := DiscoverLink()
	assert.Error(t, err)
	assert.Empty(t, link)
}
