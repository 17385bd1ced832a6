package application

import "context"

// TrafficRouter is an interface for routing traffic between the two
// forwarding directions of an established session
type TrafficRouter interface {
	RouteTraffic(ctx context.Context) error
}
