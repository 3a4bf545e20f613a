package dto

// InboundEvent is one user interaction delivered by the chat transport.
// Exactly one of Token, Text or Contact is meaningful; Action is set for
// plain commands such as "start".
type InboundEvent struct {
	ChatID    int64    `json:"chat_id" validate:"required"`
	Action    string   `json:"action,omitempty"`
	Token     string   `json:"token,omitempty"`
	Text      string   `json:"text,omitempty"`
	Contact   *Contact `json:"contact,omitempty"`
	Username  *string  `json:"username,omitempty"`
	FirstName *string  `json:"first_name,omitempty"`
	LastName  *string  `json:"last_name,omitempty"`
}

// Contact is the transport's phone share payload.
type Contact struct {
	Phone string `json:"phone" validate:"required"`
}

// Control is one tappable element attached to an outbound message. Token is
// round-tripped verbatim on tap.
type Control struct {
	Label string `json:"label"`
	Token string `json:"token"`
}

// Outbound is the reply rendered for an inbound event. RequestContact asks
// the transport to show its native phone-share affordance.
type Outbound struct {
	Text           string    `json:"text"`
	ImageURL       *string   `json:"image_url,omitempty"`
	Controls       []Control `json:"controls,omitempty"`
	RequestContact bool      `json:"request_contact,omitempty"`
}
