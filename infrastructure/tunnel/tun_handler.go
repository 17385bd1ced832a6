package tunnel

import (
	"context"
	"fmt"
	"io"
	"log"

	"whispertunnel/application"
	"whispertunnel/domain/network/framelimit"
)

// TunHandler runs the inbound-to-network direction: TUN read, seal, frame,
// stream write. It is the sole reader of the TUN handle and the sole
// writer of the transport.
type TunHandler struct {
	ctx                 context.Context
	reader              io.Reader // abstraction over TUN device
	writer              io.Writer // abstraction over framed transport
	cryptographyService application.CryptographyService
	cap                 framelimit.Cap
	mtu                 int
	stats               *Stats
}

func NewTunHandler(ctx context.Context,
	reader io.Reader,
	writer io.Writer,
	cryptographyService application.CryptographyService,
	cap framelimit.Cap,
	mtu int,
	stats *Stats) application.TunHandler {
	return &TunHandler{
		ctx:                 ctx,
		reader:              reader,
		writer:              writer,
		cryptographyService: cryptographyService,
		cap:                 cap,
		mtu:                 mtu,
		stats:               stats,
	}
}

func (t *TunHandler) HandleTun() error {
	buffer := make([]byte, t.mtu)

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
				log.Printf("failed to read from TUN: %v", err)
				return err
			}
			if capErr := t.cap.ValidateLen(n); capErr != nil {
				log.Printf("packet from TUN violates frame cap: %v", capErr)
				return fmt.Errorf("tun packet of %d bytes: %w", n, capErr)
			}

			sealed, encryptErr := t.cryptographyService.Encrypt(buffer[:n])
			if encryptErr != nil {
				log.Printf("failed to encrypt packet: %v", encryptErr)
				return encryptErr
			}

			if _, writeErr := t.writer.Write(sealed); writeErr != nil {
				if t.ctx.Err() != nil {
					return nil
				}
				log.Printf("write to transport failed: %v", writeErr)
				return writeErr
			}
			t.stats.addSent(n)
		}
	}
}
