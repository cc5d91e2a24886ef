package services

// EventPublisher is the part of the message-broker client the services
// use. Passing nil disables event publication.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}
