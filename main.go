package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"StudyInk/internal/net"
	"StudyInk/internal/pdfdoc"
	"StudyInk/internal/ui"
)

const sessionPort = 8899

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-share] [-join | studyink://host:port] document.pdf\n", os.Args[0])
	os.Exit(2)
}

func main() {
	var (
		pdfPath  string
		joinLink string
		share    bool
		discover bool
	)
	for _, arg := range os.Args[1:] {
		switch {
		case strings.HasPrefix(arg, net.LinkScheme):
			joinLink = arg
		case arg == "-share" || arg == "--share":
			share = true
		case arg == "-join" || arg == "--join":
			discover = true
		case strings.HasPrefix(arg, "-"):
			usage()
		default:
			pdfPath = arg
		}
	}
	if pdfPath == "" {
		usage()
	}

	// -join without a link: find an advertised session on the LAN.
	if discover && joinLink == "" {
		link, err := net.DiscoverLink()
		if err != nil {
			log.Fatalf("Failed to discover a session: %v", err)
		}
		log.Printf("Discovered session %s", link)
		joinLink = link
	}

	doc, err := pdfdoc.Open(pdfPath)
	if err != nil {
		log.Fatalf("Failed to open document: %v", err)
	}
	viewer := ui.NewViewer(doc)

	switch {
	case joinLink != "":
		log.Println("Starting as session CLIENT")
		client, err := net.Join(joinLink, viewer.Ink, viewer.ApplyRemote)
		if err != nil {
			log.Fatalf("Failed to join session: %v", err)
		}
		defer client.Close()
		viewer.SendStroke = client.SendStroke
		viewer.SendClear = client.SendClear
		ui.RunApp(viewer, "")

	case share:
		log.Println("Starting as session HOST")
		host, err := net.StartHost(sessionPort, viewer.Ink, viewer.ApplyRemote)
		if err != nil {
			log.Fatalf("Failed to host session: %v", err)
		}
		defer host.Close()
		if mdnsServer, err := net.Advertise(sessionPort); err != nil {
			log.Printf("mDNS advertise failed (links still work): %v", err)
		} else {
			defer mdnsServer.Shutdown()
		}
		viewer.SendStroke = host.SendStroke
		viewer.SendClear = host.SendClear
		ui.RunApp(viewer, net.ShareLink(sessionPort))

	default:
		ui.RunApp(viewer, "")
	}
}
