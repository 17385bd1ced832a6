package tunnel

import (
	"whispertunnel/application"
)

// Worker pairs the two direction handlers of one session.
type Worker struct {
	tunHandler       application.TunHandler
	transportHandler application.TransportHandler
}

func NewWorker(
	tunHandler application.TunHandler,
	transportHandler application.TransportHandler,
) application.TunWorker {
	return &Worker{
		tunHandler:       tunHandler,
		transportHandler: transportHandler,
	}
}

func (w *Worker) HandleTun() error {
	return w.tunHandler.HandleTun()
}

func (w *Worker) HandleTransport() error {
	return w.transportHandler.HandleTransport()
}
