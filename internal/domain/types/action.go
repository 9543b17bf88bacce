package types

const (
	ActionRabbitMQConnected       = "rabbitmq_connected"
	ActionRabbitConnectionClosed  = "rabbitmq_connection_closed"
	ActionRabbitConnectionClosing = "rabbitmq_connection_closing"
	ActionRabbitReconnected       = "rabbitmq_reconnection_success"

	ActionTripEventPublishFailed    = "trip_event_publish_failed"
	ActionLoginThrottled            = "login_throttled"
	ActionDatabaseTransactionFailed = "database_transaction_failed"
)
