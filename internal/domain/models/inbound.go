package models

// InboundMessage is the webhook payload posted by the messaging
// provider. An empty body is treated as an instant-picks request.
type InboundMessage struct {
	From string `form:"From" query:"From" validate:"required"`
	Body string `form:"Body" query:"Body" default:"picks"`
}
