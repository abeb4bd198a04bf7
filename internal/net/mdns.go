package net

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/mdns"
)

const serviceType = "_studyink._tcp"

// Advertise announces a hosted session on the local network so peers can
// discover it without typing a link. The caller shuts the server down when
// the session ends.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(
		host,
		serviceType,
		"", // domain, defaults to .local
		"", // hostname, defaults to the OS hostname
		port,
		nil, // IPs auto-detected
		[]string{"StudyInk session"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Browse looks for advertised sessions and reports each host:port found.
// Lookup does not close the entries channel itself, so Browse closes it
// once the query window ends and waits for the drain to finish before
// returning.
func Browse(found func(addr string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port))
		}
	}()
	err := mdns.Lookup(serviceType, entries)
	close(entries)
	<-done
	return err
}

// DiscoverLink browses the local network and returns a share link for the
// first advertised session, so peers can join without typing one.
func DiscoverLink() (string, error) {
	var addr string
	err := Browse(func(a string) {
		if addr == "" {
			addr = a
		}
	})
	if err != nil {
		return "", fmt.Errorf("session discovery failed: %w", err)
	}
	if addr == "" {
		return "", errors.New("no session found on the local network")
	}
	return LinkScheme + addr, nil
}
