package session

/*------------------------------------------------------------------
 *
 * Purpose:	Announce a companion control-plane service (handshake /
 *		telemetry relay for this link) over mDNS/DNS-SD, so peers
 *		on the local network can find each other without manually
 *		exchanging IP addresses and ports.
 *
 *------------------------------------------------------------------*/

import (
	"context"
	"fmt"

	"github.com/brutella/dnssd"
)

const serviceType = "_opal-link._tcp"

// Announcer runs the DNS-SD responder goroutine for one advertised
// service instance.
type Announcer struct {
	responder *dnssd.Responder
	cancel    context.CancelFunc
}

// Announce registers name on port and starts responding to mDNS
// queries in the background. Call Stop to withdraw the service.
func Announce(name string, port int) (*Announcer, error) {
	if name == "" {
		name = "opal-vanguard"
	}

	var cfg = dnssd.Config{Name: name, Type: serviceType, Port: port} //nolint:exhaustruct

	var svc, svcErr = dnssd.NewService(cfg)
	if svcErr != nil {
		return nil, fmt.Errorf("session: creating DNS-SD service: %w", svcErr)
	}

	var responder, respErr = dnssd.NewResponder()
	if respErr != nil {
		return nil, fmt.Errorf("session: creating DNS-SD responder: %w", respErr)
	}

	if _, err := responder.Add(svc); err != nil {
		return nil, fmt.Errorf("session: adding service to responder: %w", err)
	}

	var ctx, cancel = context.WithCancel(context.Background())

	go func() {
		if err := responder.Respond(ctx); err != nil && ctx.Err() == nil {
			logger.Error("DNS-SD responder exited", "err", err)
		}
	}()

	return &Announcer{responder: responder, cancel: cancel}, nil
}

// Stop withdraws the announced service and stops responding.
func (a *Announcer) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
}
