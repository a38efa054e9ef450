package transport

// Bus is the narrow interface Ingress and Egress depend on. It is the
// only seam between the matching core's pipeline and the outside
// world, so the core never has to know whether messages travel over
// AMQP, an in-process channel, or anything else.
type Bus interface {
	// Publish sends payload to topic. A publish failure is treated as
	// fatal by Egress.
	Publish(topic string, payload []byte) error

	// Consume returns a channel of raw message bodies for topic. The
	// channel is closed when the underlying connection is lost —
	// Ingress treats a closed channel as a fatal disconnect.
	Consume(topic string) (<-chan []byte, error)
}
