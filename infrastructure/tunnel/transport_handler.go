package tunnel

import (
	"context"
	"io"
	"log"

	"whispertunnel/application"
	"whispertunnel/infrastructure/network/ip"
	"whispertunnel/infrastructure/settings"
)

// TransportHandler runs the network-to-outbound direction: framed stream
// read, open, TUN write. A failed open ends the session; on a byte stream
// a corrupted frame cannot be skipped without risking desynchronized
// framing, so there is no drop-and-continue.
type TransportHandler struct {
	ctx                 context.Context
	reader              io.Reader // abstraction over framed transport
	writer              io.Writer // abstraction over TUN device
	cryptographyService application.CryptographyService
	mtu                 int
	stats               *Stats
}

func NewTransportHandler(ctx context.Context,
	reader io.Reader,
	writer io.Writer,
	cryptographyService application.CryptographyService,
	mtu int,
	stats *Stats) application.TransportHandler {
	return &TransportHandler{
		ctx:                 ctx,
		reader:              reader,
		writer:              writer,
		cryptographyService: cryptographyService,
		mtu:                 mtu,
		stats:               stats,
	}
}

func (t *TransportHandler) HandleTransport() error {
	buffer := make([]byte, settings.MaxFrameSize(t.mtu))

	for {
		select {
		case <-t.ctx.Done():
			return nil
		default:
			n, err := t.reader.Read(buffer)
			if err != nil {
				if t.ctx.Err() != nil {
					return nil
				}
				log.Printf("read from transport failed: %v", err)
				return err
			}
			if n == 0 {
				// Zero-length frames are valid no-ops.
				continue
			}

			plaintext, decryptErr := t.cryptographyService.Decrypt(buffer[:n])
			if decryptErr != nil {
				log.Printf("failed to decrypt frame: %v", decryptErr)
				return decryptErr
			}

			// The frame authenticated, so the peer really sent it; packets
			// that are not valid IP are dropped rather than injected.
			if _, versionErr := ip.Version(plaintext); versionErr != nil {
				log.Printf("dropping non-IP payload from peer: %v", versionErr)
				continue
			}

			if _, writeErr := t.writer.Write(plaintext); writeErr != nil {
				if t.ctx.Err() != nil {
					return nil
				}
				log.Printf("failed to write to TUN: %v", writeErr)
				return writeErr
			}
			t.stats.addReceived(len(plaintext))
		}
	}
}
